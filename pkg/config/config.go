// Package config loads launcher settings from OMEGA_* environment variables
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arch-ops/omega-launcher/pkg/launcher"
	"github.com/arch-ops/omega-launcher/pkg/logger"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every launcher variable
const EnvPrefix = "OMEGA"

// Keys understood by Load; OMEGA_<KEY> in the environment
const (
	KeyRunner   = "runner"
	KeyHome     = "home"
	KeyShell    = "shell"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
	KeyNotify   = "notify"

	KeyNotifySound = "notify_sound"
)

// Config holds the resolved launcher settings
type Config struct {
	Runner     string
	InstallDir string
	Shell      launcher.ShellMode
	LogLevel   string
	LogFile    string
	Notify     bool
	// NotifySound beeps along with the notification
	NotifySound bool
}

// Load reads the process environment into a Config.
// installDir supplies the default installation directory when OMEGA_HOME is unset;
// it is only called in that case.
func Load(installDir func() (string, error)) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRunner, launcher.DefaultRunner)
	v.SetDefault(KeyShell, string(launcher.ShellAuto))
	v.SetDefault(KeyLogLevel, logger.DefaultLevel)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyNotify, false)
	v.SetDefault(KeyNotifySound, false)

	shell, err := launcher.ParseShellMode(strings.ToLower(strings.TrimSpace(v.GetString(KeyShell))))
	if err != nil {
		return nil, fmt.Errorf("%s_SHELL: %w", EnvPrefix, err)
	}

	home := v.GetString(KeyHome)
	if home == "" {
		if installDir == nil {
			installDir = launcher.InstallDir
		}
		home, err = installDir()
		if err != nil {
			return nil, err
		}
	}
	if abs, err := filepath.Abs(home); err == nil {
		home = abs
	}

	runner := strings.TrimSpace(v.GetString(KeyRunner))
	if runner == "" {
		runner = launcher.DefaultRunner
	}

	return &Config{
		Runner:     runner,
		InstallDir: home,
		Shell:      shell,
		LogLevel:   v.GetString(KeyLogLevel),
		LogFile:    v.GetString(KeyLogFile),
		Notify:     v.GetBool(KeyNotify),

		NotifySound: v.GetBool(KeyNotifySound),
	}, nil
}

// EnvVar returns the environment variable name for key
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
