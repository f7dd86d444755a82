// Package notifier raises a desktop notification when the engine fails to start
package notifier

import (
	"fmt"

	"github.com/arch-ops/omega-launcher/pkg/logger"
	"github.com/gen2brain/beeep"
)

// Notifier is told about launch failures
type Notifier interface {
	NotifySpawnFailure(runner string, err error)
}

// Config represents notification configuration
type Config struct {
	Enabled bool
	Sound   bool
}

// DesktopNotifier sends notifications through the platform notification service
type DesktopNotifier struct {
	enabled bool
	sound   bool
	logger  logger.Logger

	send func(title, message, icon string) error
	beep func(freq float64, duration int) error
}

// New creates a desktop notifier
func New(config Config, log logger.Logger) *DesktopNotifier {
	return &DesktopNotifier{
		enabled: config.Enabled,
		sound:   config.Sound,
		logger:  log,
		send:    beeep.Notify,
		beep:    beeep.Beep,
	}
}

// NotifySpawnFailure reports that runner could not be started.
// Delivery failures are only logged: a headless host has no notification daemon.
func (n *DesktopNotifier) NotifySpawnFailure(runner string, err error) {
	if !n.enabled {
		return
	}

	title := "Ω Omega Engine failed to start"
	message := fmt.Sprintf("%s: %v", runner, err)

	if sendErr := n.send(title, message, ""); sendErr != nil {
		n.logger.Debug("Failed to send notification", logger.WithField("error", sendErr))
	}

	if n.sound {
		if beepErr := n.beep(beeep.DefaultFreq, beeep.DefaultDuration); beepErr != nil {
			n.logger.Debug("Failed to play sound", logger.WithField("error", beepErr))
		}
	}
}
