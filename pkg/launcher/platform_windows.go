//go:build windows

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

// Windows environment names are case-insensitive.
func envKeyEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

// resolveInShell checks that runner names a file cmd.exe can start,
// searching the PATH in env when runner is a bare name.
func resolveInShell(runner string, env []string) error {
	if filepath.Base(runner) != runner {
		if _, err := os.Stat(runner); err != nil {
			return err
		}
		return nil
	}

	where, err := exec.LookPath("where")
	if err != nil {
		return err
	}
	check := exec.Command(where, "/Q", runner)
	check.Env = env
	if err := check.Run(); err != nil {
		if _, exited := exitCodeOf(err); exited {
			return fmt.Errorf("%s: command not found", runner)
		}
		return err
	}
	return nil
}

// shellCommand runs the runner through cmd.exe so PATHEXT and
// shell-level resolution apply. The command line is built by hand since
// os/exec quoting does not protect against cmd.exe metacharacters.
func shellCommand(runner string, args []string) (*exec.Cmd, error) {
	cmdExe, err := exec.LookPath("cmd")
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(cmdExe)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: cmdLine(cmdExe, append([]string{runner}, args...)),
	}
	return cmd, nil
}

func exitCodeOf(err error) (int, bool) {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	return exitErr.ExitCode(), true
}
