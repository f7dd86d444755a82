//go:build !windows

package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"mvdan.cc/sh/v3/syntax"
)

func envKeyEqual(a, b string) bool {
	return a == b
}

// resolveInShell asks sh whether runner names something it can execute,
// using env as the shell's environment.
func resolveInShell(runner string, env []string) error {
	sh, err := exec.LookPath("sh")
	if err != nil {
		return err
	}

	check := exec.Command(sh, "-c", `command -v "$1" >/dev/null 2>&1`, "sh", runner)
	check.Env = env
	if err := check.Run(); err != nil {
		if _, exited := exitCodeOf(err); exited {
			return fmt.Errorf("%s: command not found", runner)
		}
		return err
	}
	return nil
}

// shellCommand wraps runner and args into a single "sh -c" command line.
// Every word is quoted so the shell sees them literally, and exec hands the
// shell's process over to the runner.
func shellCommand(runner string, args []string) (*exec.Cmd, error) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(args)+2)
	words = append(words, "exec")
	for _, w := range append([]string{runner}, args...) {
		q, err := syntax.Quote(w, syntax.LangPOSIX)
		if err != nil {
			return nil, err
		}
		words = append(words, q)
	}

	return exec.Command(sh, "-c", strings.Join(words, " ")), nil
}

// exitCodeOf extracts the child's exit status from a Wait error.
// A child killed by a signal reports 128+signal, as shells do.
func exitCodeOf(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal()), true
	}
	return exitErr.ExitCode(), true
}
