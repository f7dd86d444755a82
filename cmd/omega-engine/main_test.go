package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// runAsLauncher makes the test binary behave as omega-engine when re-executed.
const runAsLauncher = "OMEGA_TEST_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runAsLauncher) == "1" {
		main()
		return
	}
	os.Exit(m.Run())
}

func launch(t *testing.T, env ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), runAsLauncher+"=1", "OMEGA_LOG_LEVEL=", "OMEGA_NOTIFY=")
	cmd.Env = append(cmd.Env, env...)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		code = 0
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		t.Fatalf("failed to run launcher: %v", err)
	}
	return out.String(), errOut.String(), code
}

func TestLauncher_UnresolvableRunnerExitsOne(t *testing.T) {
	_, stderr, code := launch(t,
		"OMEGA_RUNNER=omega-no-such-runner-7f3a",
		"OMEGA_HOME="+t.TempDir(),
		"OMEGA_SHELL=never",
	)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "Failed to start Omega Engine:") {
		t.Errorf("expected failure prefix, got %q", stderr)
	}
	if !strings.Contains(stderr, "omega-no-such-runner-7f3a") {
		t.Errorf("expected underlying error text, got %q", stderr)
	}
}

func TestLauncher_EngineExitZeroIsSilent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake runner is a POSIX shell script")
	}

	runner := filepath.Join(t.TempDir(), "uv")
	script := "#!/bin/sh\n[ \"$1 $2\" = \"run python\" ] || exit 9\necho ready\nexit 0\n"
	if err := os.WriteFile(runner, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := launch(t,
		"OMEGA_RUNNER="+runner,
		"OMEGA_HOME="+t.TempDir(),
		"OMEGA_SHELL=auto",
	)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d (stderr %q)", code, stderr)
	}
	if strings.Contains(stderr, "Failed to start") {
		t.Errorf("unexpected failure diagnostic: %q", stderr)
	}
	if strings.TrimSpace(stdout) != "ready" {
		t.Errorf("expected engine stdout passed through, got %q", stdout)
	}
}
