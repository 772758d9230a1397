// Package cmd provides the CLI commands for swiftfs.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/swiftfs/swiftfs/internal/config"
	"github.com/swiftfs/swiftfs/internal/logging"
	"github.com/swiftfs/swiftfs/internal/queryfs"
	"github.com/swiftfs/swiftfs/internal/telemetry"
	"github.com/swiftfs/swiftfs/pkg/version"
)

var (
	cfgFile        string
	debugMode      bool
	verifyMode     bool
	engineBinary   string
	loggingCleanup func()

	// cfg is the effective configuration, loaded in the pre-run hook.
	cfg *config.Config
)

// NewRootCmd creates the root command for the swiftfs CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swiftfs",
		Short: "Accelerated filesystem metadata queries",
		Long: `swiftfs answers filesystem metadata queries (existence, listings,
creation times) through an external index engine, falling back to the
direct filesystem whenever the engine is unavailable.

Answers are identical either way; only the speed differs.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("swiftfs version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/swiftfs/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.swiftfs/logs/")
	cmd.PersistentFlags().BoolVar(&verifyMode, "verify", false, "Cross-check every index answer against the filesystem")
	cmd.PersistentFlags().StringVar(&engineBinary, "engine", "", "Index engine binary (overrides config)")

	cmd.PersistentPreRunE = setupConfigAndLogging
	cmd.PersistentPostRunE = teardownLogging

	cmd.AddCommand(newExistsCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newCtimeCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupConfigAndLogging loads configuration and starts debug logging if
// the flag is set. Flags override config values.
func setupConfigAndLogging(c *cobra.Command, _ []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if c.Flags().Changed("verify") {
		cfg.Verify.Enabled = verifyMode
	}
	if engineBinary != "" {
		cfg.Engine.Binary = engineBinary
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.WriteToStderr = cfg.Logging.Stderr
	if debugMode {
		// Debug level plus a stderr mirror, regardless of config.
		logCfg = logging.DebugConfig()
	}
	if cfg.Logging.FilePath != "" {
		logCfg.FilePath = cfg.Logging.FilePath
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	if debugMode {
		slog.Info("debug logging enabled",
			slog.String("log_file", logCfg.FilePath),
			slog.String("version", version.Version))
	}

	return nil
}

// teardownLogging flushes and closes the debug log.
func teardownLogging(_ *cobra.Command, _ []string) error {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
	return nil
}

// newClient builds the query client plus its telemetry recorder. Telemetry
// is attached only when enabled in config.
func newClient() (*queryfs.Client, *telemetry.Metrics) {
	var metrics *telemetry.Metrics
	opts := []queryfs.Option{}
	if cfg.Telemetry.Enabled {
		metrics = telemetry.NewMetrics(slog.Default())
		opts = append(opts, queryfs.WithRecorder(metrics))
	}
	return queryfs.New(cfg, opts...), metrics
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		// A clean "false" from exists is an answer, not a failure.
		if !errors.Is(err, errNotExists) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return err
	}
	return nil
}
