// Package launcher builds and runs the Omega Engine child process
package launcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

const (
	// DefaultRunner is the executable that resolves and runs the Python toolchain
	DefaultRunner = "uv"

	// RunSubcommand and InterpreterSelector form "<runner> run python <target>"
	RunSubcommand       = "run"
	InterpreterSelector = "python"

	// ModuleSearchPathVar is the variable pointing the child at its sources
	ModuleSearchPathVar = "PYTHONPATH"
)

// sourceDir is the source root relative to the installation directory.
var sourceDir = "src"

// entryPoint is the engine script relative to the source root.
var entryPoint = []string{"arch_ops_server", "omega_engine.py"}

// ShellMode selects how the runner is invoked
type ShellMode string

const (
	// ShellAuto executes the runner directly when it resolves on PATH
	// and falls back to the platform shell otherwise
	ShellAuto ShellMode = "auto"
	// ShellAlways always goes through the platform shell
	ShellAlways ShellMode = "always"
	// ShellNever always executes the runner directly
	ShellNever ShellMode = "never"
)

// ParseShellMode validates a shell mode string. Empty means ShellAuto.
func ParseShellMode(s string) (ShellMode, error) {
	switch ShellMode(s) {
	case "", ShellAuto:
		return ShellAuto, nil
	case ShellAlways, ShellNever:
		return ShellMode(s), nil
	default:
		return "", fmt.Errorf("invalid shell mode %q (want auto, always or never)", s)
	}
}

// LaunchSpec describes one invocation of the engine.
// It is built once by NewLaunchSpec and consumed once by Launcher.Launch.
type LaunchSpec struct {
	Runner     string
	TargetPath string
	Args       []string
	Env        map[string]string
	Shell      ShellMode

	// Standard streams handed to the child. *os.File values are passed
	// as descriptors, so nothing is copied through the launcher.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ResolveTargetPath joins the installation directory with the engine entry point.
// No existence check is made; the spawn attempt is the check.
func ResolveTargetPath(installDir string) string {
	parts := append([]string{installDir, sourceDir}, entryPoint...)
	return filepath.Join(parts...)
}

// SourceRoot returns the directory exported as the module search path.
func SourceRoot(installDir string) string {
	return filepath.Join(installDir, sourceDir)
}

// InstallDir returns the directory holding the running launcher binary,
// with symlinks resolved so a linked binary still finds its sources.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// NewLaunchSpec assembles the invocation for the given installation directory.
// parentEnv is read only; the returned spec owns a fresh environment map.
func NewLaunchSpec(runner, installDir string, parentEnv []string, shell ShellMode) *LaunchSpec {
	if runner == "" {
		runner = DefaultRunner
	}
	if shell == "" {
		shell = ShellAuto
	}

	target := ResolveTargetPath(installDir)

	return &LaunchSpec{
		Runner:     runner,
		TargetPath: target,
		Args:       []string{RunSubcommand, InterpreterSelector, target},
		Env:        BuildEnv(parentEnv, SourceRoot(installDir)),
		Shell:      shell,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

// Environ renders Env as sorted KEY=VALUE pairs for exec.Cmd.
func (s *LaunchSpec) Environ() []string {
	return EnvToSlice(s.Env)
}

// CommandLine renders the invocation for logging.
func (s *LaunchSpec) CommandLine() string {
	line := s.Runner
	for _, a := range s.Args {
		line += " " + a
	}
	return line
}

// EnvToSlice converts an environment map to KEY=VALUE pairs in key order.
func EnvToSlice(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+env[k])
	}
	return out
}
