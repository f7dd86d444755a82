//go:build !windows

package process

import (
	"os"
	"syscall"
)

func relayedSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
}

// SIGINT from a terminal already reaches the whole foreground group.
func capturedSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
