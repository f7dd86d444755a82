package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arch-ops/omega-launcher/pkg/config"
	"github.com/arch-ops/omega-launcher/pkg/launcher"
)

// clearEnv blanks every launcher variable; viper treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.KeyRunner, config.KeyHome, config.KeyShell,
		config.KeyLogLevel, config.KeyLogFile, config.KeyNotify,
		config.KeyNotifySound,
	} {
		t.Setenv(config.EnvVar(key), "")
	}
}

func fixedDir(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg, err := config.Load(fixedDir(home))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Runner != launcher.DefaultRunner {
		t.Errorf("expected runner %s, got %s", launcher.DefaultRunner, cfg.Runner)
	}
	if cfg.InstallDir != home {
		t.Errorf("expected install dir %s, got %s", home, cfg.InstallDir)
	}
	if cfg.Shell != launcher.ShellAuto {
		t.Errorf("expected shell mode auto, got %s", cfg.Shell)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected no log file, got %s", cfg.LogFile)
	}
	if cfg.Notify {
		t.Error("expected notifications disabled by default")
	}
	if cfg.NotifySound {
		t.Error("expected notification sound disabled by default")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	logFile := filepath.Join(home, "omega.log")

	t.Setenv("OMEGA_RUNNER", "/opt/uv/bin/uv")
	t.Setenv("OMEGA_HOME", home)
	t.Setenv("OMEGA_SHELL", "Always")
	t.Setenv("OMEGA_LOG_LEVEL", "debug")
	t.Setenv("OMEGA_LOG_FILE", logFile)
	t.Setenv("OMEGA_NOTIFY", "true")

	called := false
	cfg, err := config.Load(func() (string, error) {
		called = true
		return "/unused", nil
	})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if called {
		t.Error("install dir lookup should be skipped when OMEGA_HOME is set")
	}
	if cfg.Runner != "/opt/uv/bin/uv" {
		t.Errorf("unexpected runner %s", cfg.Runner)
	}
	if cfg.InstallDir != home {
		t.Errorf("unexpected install dir %s", cfg.InstallDir)
	}
	if cfg.Shell != launcher.ShellAlways {
		t.Errorf("unexpected shell mode %s", cfg.Shell)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected log level %s", cfg.LogLevel)
	}
	if cfg.LogFile != logFile {
		t.Errorf("unexpected log file %s", cfg.LogFile)
	}
	if !cfg.Notify {
		t.Error("expected notifications enabled")
	}
}

func TestLoad_RelativeHomeMadeAbsolute(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMEGA_HOME", "relative/dir")

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !filepath.IsAbs(cfg.InstallDir) {
		t.Errorf("expected absolute install dir, got %s", cfg.InstallDir)
	}
}

func TestLoad_InvalidShellMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMEGA_SHELL", "sometimes")

	_, err := config.Load(fixedDir(t.TempDir()))
	if err == nil {
		t.Fatal("expected error for invalid shell mode")
	}
}

func TestLoad_InstallDirError(t *testing.T) {
	clearEnv(t)
	want := errors.New("no executable")

	_, err := config.Load(func() (string, error) { return "", want })
	if !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestLoad_RepeatedLoadsIndependent(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMEGA_RUNNER", "first")
	first, err := config.Load(fixedDir(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("OMEGA_RUNNER", "second")
	second, err := config.Load(fixedDir(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}

	if first.Runner != "first" || second.Runner != "second" {
		t.Errorf("expected independent loads, got %s and %s", first.Runner, second.Runner)
	}
}

func TestLoad_NotifySound(t *testing.T) {
	clearEnv(t)
	t.Setenv("OMEGA_NOTIFY", "true")
	t.Setenv("OMEGA_NOTIFY_SOUND", "1")

	cfg, err := config.Load(fixedDir(t.TempDir()))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Notify || !cfg.NotifySound {
		t.Errorf("expected notify and sound enabled, got notify=%v sound=%v", cfg.Notify, cfg.NotifySound)
	}
	if got := config.EnvVar(config.KeyNotifySound); got != "OMEGA_NOTIFY_SOUND" {
		t.Errorf("expected OMEGA_NOTIFY_SOUND, got %s", got)
	}
}
