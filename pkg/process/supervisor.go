// Package process supervises the running engine child
package process

import (
	"context"
	"os"
	"os/exec"
	"os/signal"

	"github.com/arch-ops/omega-launcher/internal/safegroup"
	"github.com/arch-ops/omega-launcher/pkg/logger"
)

// Supervisor waits for a started child and relays termination signals to it.
type Supervisor struct {
	logger   logger.Logger
	relayed  []os.Signal
	captured []os.Signal
}

// NewSupervisor creates a supervisor using the platform signal set
func NewSupervisor(log logger.Logger) *Supervisor {
	return &Supervisor{
		logger:   log,
		relayed:  relayedSignals(),
		captured: capturedSignals(),
	}
}

// Relayed returns the signals forwarded to the child
func (s *Supervisor) Relayed() []os.Signal {
	return append([]os.Signal(nil), s.relayed...)
}

// Relay holds the signal registration for one child. Signals arriving
// between Watch and Wait are buffered and relayed once Wait runs.
type Relay struct {
	supervisor *Supervisor
	sigChan    chan os.Signal
}

// Watch registers for the relayed and captured signals. Call it before the
// child is started so no signal falls through to the default handler.
func (s *Supervisor) Watch() *Relay {
	r := &Relay{supervisor: s, sigChan: make(chan os.Signal, 1)}
	if watched := append(s.Relayed(), s.captured...); len(watched) > 0 {
		signal.Notify(r.sigChan, watched...)
	}
	return r
}

// Stop releases the signal registration. It is safe to call more than once.
func (r *Relay) Stop() {
	signal.Stop(r.sigChan)
}

// Wait blocks until cmd exits and returns cmd.Wait's error.
// cmd must already be started. Relayed signals received meanwhile are sent
// to the child; captured ones are swallowed so the launcher outlives
// a terminal interrupt that the child also receives.
func (r *Relay) Wait(ctx context.Context, cmd *exec.Cmd) error {
	defer r.Stop()
	s := r.supervisor

	g, gctx := safegroup.New(ctx, s.logger)
	exited := make(chan struct{})

	var waitErr error
	g.Go(func() error {
		defer close(exited)
		waitErr = cmd.Wait()
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-exited:
				return nil
			case <-gctx.Done():
				return nil
			case sig := <-r.sigChan:
				s.handleSignal(cmd, sig)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return waitErr
}

// Wait registers for signals and waits for an already started cmd.
func (s *Supervisor) Wait(ctx context.Context, cmd *exec.Cmd) error {
	return s.Watch().Wait(ctx, cmd)
}

func (s *Supervisor) handleSignal(cmd *exec.Cmd, sig os.Signal) {
	if !s.isRelayed(sig) {
		s.logger.Debug("Signal left to the child's process group", logger.WithField("signal", sig))
		return
	}

	s.logger.Debug("Relaying signal to engine", logger.WithField("signal", sig))
	if err := cmd.Process.Signal(sig); err != nil {
		s.logger.Warn("Failed to relay signal",
			logger.WithField("signal", sig),
			logger.WithField("error", err))
	}
}

func (s *Supervisor) isRelayed(sig os.Signal) bool {
	for _, r := range s.relayed {
		if r == sig {
			return true
		}
	}
	return false
}
