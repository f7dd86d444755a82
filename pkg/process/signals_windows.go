//go:build windows

package process

import "os"

// Process.Signal only supports Kill on Windows, so nothing is relayed.
func relayedSignals() []os.Signal {
	return nil
}

func capturedSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
