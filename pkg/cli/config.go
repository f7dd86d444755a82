package cli

import (
	"os"

	"github.com/arch-ops/omega-launcher/pkg/launcher"
)

// Config holds what the CLI reads from its host process,
// so tests can run several launches in one process.
type Config struct {
	Version string

	// Environ returns the parent environment handed to the engine
	Environ func() []string

	// InstallDir locates the installation directory when OMEGA_HOME is unset
	InstallDir func() (string, error)
}

// NewConfig creates a CLI configuration bound to the current process
func NewConfig() *Config {
	return &Config{
		Version:    "dev",
		Environ:    os.Environ,
		InstallDir: launcher.InstallDir,
	}
}
