// Package cli provides the omega-engine command
package cli

import (
	"context"
	"io"
	"os"

	"github.com/arch-ops/omega-launcher/pkg/config"
	"github.com/arch-ops/omega-launcher/pkg/launcher"
	"github.com/arch-ops/omega-launcher/pkg/logger"
	"github.com/arch-ops/omega-launcher/pkg/notifier"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CLI wires configuration, logging and the launcher behind one cobra command
type CLI struct {
	config   *Config
	rootCmd  *cobra.Command
	logger   logger.Logger
	notifier notifier.Notifier

	input    io.Reader
	output   io.Writer
	errorOut io.Writer

	exitCode int
}

// NewCLI creates a CLI attached to the process's standard streams
func NewCLI(cfg *Config) *CLI {
	if cfg == nil {
		cfg = NewConfig()
	}

	c := &CLI{
		config:   cfg,
		input:    os.Stdin,
		output:   os.Stdout,
		errorOut: os.Stderr,
	}
	c.setupCommands()
	return c
}

// NewCLIWithIO creates a CLI with custom streams (for testing)
func NewCLIWithIO(cfg *Config, input io.Reader, output, errorOut io.Writer) *CLI {
	c := NewCLI(cfg)
	c.input = input
	c.output = output
	c.errorOut = errorOut
	return c
}

// SetNotifier replaces the notifier built from OMEGA_NOTIFY
func (c *CLI) SetNotifier(n notifier.Notifier) {
	c.notifier = n
}

// Execute runs the CLI with the given arguments
func (c *CLI) Execute(args []string) error {
	return c.ExecuteContext(context.Background(), args)
}

// ExecuteContext runs the CLI with context support
func (c *CLI) ExecuteContext(ctx context.Context, args []string) error {
	c.exitCode = 0
	c.rootCmd.SetArgs(args)
	return c.rootCmd.ExecuteContext(ctx)
}

// ExitCode is the status the process should exit with after Execute
func (c *CLI) ExitCode() int {
	return c.exitCode
}

func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:   "omega-engine",
		Short: "Start the Omega Engine",
		Long: `Ω omega-engine - launches the Omega Engine with its runtime

Runs "uv run python src/arch_ops_server/omega_engine.py" from the installation
directory with PYTHONPATH pointing at src/. Standard streams are handed to the
engine untouched. Arguments are ignored; settings come from OMEGA_* variables.`,
		Version: c.config.Version,

		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context())
		},
	}
}

func (c *CLI) run(ctx context.Context) error {
	settings, err := config.Load(c.config.InstallDir)
	if err != nil {
		return c.fail(err)
	}

	log := c.createLogger(settings)
	defer func() { _ = log.Close() }()
	c.logger = log

	if c.notifier == nil {
		c.notifier = notifier.New(notifierConfig(settings), c.logger.WithComponent("notifier"))
	}

	c.logger.Debug("Configuration loaded",
		logger.WithField("version", c.config.Version),
		logger.WithField("runner", settings.Runner),
		logger.WithField("home", settings.InstallDir),
		logger.WithField("shell", settings.Shell))

	spec := launcher.NewLaunchSpec(settings.Runner, settings.InstallDir, c.config.Environ(), settings.Shell)
	spec.Stdin = c.input
	spec.Stdout = c.output
	spec.Stderr = c.errorOut

	code, err := launcher.New(c.logger).Launch(ctx, spec)
	if err != nil {
		c.notifier.NotifySpawnFailure(spec.Runner, err)
		return c.fail(err)
	}

	c.exitCode = code
	return nil
}

// fail prints the launch diagnostic and sets exit code 1
func (c *CLI) fail(err error) error {
	c.exitCode = 1
	logger.NewColor(c.errorOut, color.FgRed).Fprintln(c.errorOut, launcher.FormatFailure(err))
	return err
}

func notifierConfig(settings *config.Config) notifier.Config {
	return notifier.Config{
		Enabled: settings.Notify,
		Sound:   settings.NotifySound,
	}
}

func (c *CLI) createLogger(settings *config.Config) *logger.ComponentLogger {
	if c.errorOut == os.Stderr {
		return logger.CreateLogger(settings.LogFile, settings.LogLevel)
	}
	return logger.CreateLoggerWithOutput(settings.LogFile, settings.LogLevel, c.errorOut)
}

// Main runs the launcher for args and returns the process exit code
func Main(version string, args []string) int {
	cfg := NewConfig()
	cfg.Version = version

	c := NewCLI(cfg)
	if err := c.Execute(args); err != nil && c.ExitCode() == 0 {
		return 1
	}
	return c.ExitCode()
}
