package launcher

import (
	"context"
	"os/exec"

	"github.com/arch-ops/omega-launcher/pkg/launchctx"
	"github.com/arch-ops/omega-launcher/pkg/logger"
	"github.com/arch-ops/omega-launcher/pkg/process"
)

// Launcher starts the engine described by a LaunchSpec
type Launcher struct {
	logger     logger.Logger
	supervisor *process.Supervisor
	lookPath   func(string) (string, error)
}

// New creates a launcher logging through log
func New(log logger.Logger) *Launcher {
	log = log.WithComponent("launcher")
	return &Launcher{
		logger:     log,
		supervisor: process.NewSupervisor(log),
		lookPath:   exec.LookPath,
	}
}

// Launch starts the child described by spec and waits for it to exit.
//
// A non-nil error is always a *SpawnError: the child never ran. Otherwise
// the returned code is the child's own exit status.
func (l *Launcher) Launch(ctx context.Context, spec *LaunchSpec) (int, error) {
	ctx = launchctx.Enrich(ctx)
	log := logger.WithContext(ctx, l.logger)

	cmd, viaShell, err := l.command(spec)
	if err != nil {
		return 1, &SpawnError{Runner: spec.Runner, Err: err}
	}

	cmd.Env = spec.Environ()
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	log.Debug("Starting engine",
		logger.WithField("command", spec.CommandLine()),
		logger.WithField("shell", viaShell),
		logger.WithField(ModuleSearchPathVar, spec.Env[ModuleSearchPathVar]))

	relay := l.supervisor.Watch()
	if err := cmd.Start(); err != nil {
		relay.Stop()
		return 1, &SpawnError{Runner: spec.Runner, Err: err}
	}

	log.Debug("Engine started", logger.WithField("pid", cmd.Process.Pid))

	waitErr := relay.Wait(ctx, cmd)
	code, exited := exitCodeOf(waitErr)
	if waitErr != nil && !exited {
		log.Warn("Engine wait failed", logger.WithField("error", waitErr))
		if cmd.ProcessState == nil {
			return 1, nil
		}
		code = cmd.ProcessState.ExitCode()
	}

	log.Debug("Engine exited", logger.WithField("exit_code", code))
	return code, nil
}

// command picks direct or shell-mediated execution for spec.
// On the shell path the runner must resolve inside the shell before the
// child is started.
func (l *Launcher) command(spec *LaunchSpec) (cmd *exec.Cmd, viaShell bool, err error) {
	switch spec.Shell {
	case ShellNever:
		return exec.Command(spec.Runner, spec.Args...), false, nil

	case ShellAlways:
		if err = resolveInShell(spec.Runner, spec.Environ()); err != nil {
			return nil, true, err
		}
		cmd, err = shellCommand(spec.Runner, spec.Args)
		return cmd, true, err
	}

	path, lookErr := l.lookPath(spec.Runner)
	if lookErr == nil {
		return exec.Command(path, spec.Args...), false, nil
	}

	l.logger.Debug("Runner not on PATH, falling back to shell",
		logger.WithField("runner", spec.Runner),
		logger.WithField("error", lookErr))

	// The direct lookup failure is the more useful message.
	if err = resolveInShell(spec.Runner, spec.Environ()); err != nil {
		l.logger.Debug("Runner not resolvable by the shell either",
			logger.WithField("error", err))
		return nil, true, lookErr
	}
	if cmd, err = shellCommand(spec.Runner, spec.Args); err != nil {
		return nil, true, lookErr
	}
	return cmd, true, nil
}
