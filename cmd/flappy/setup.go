package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the game config using --config and the default search
// order.
func loadGameConfig(logger *log.Logger) (config.FlappyConfig, error) {
	cfg, src, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, fmt.Errorf("%s config: %w", src, err)
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}

// runtimeConfig merges the game config with the global flags.
func runtimeConfig(cfg config.FlappyConfig, screenW, screenH int) core.RuntimeConfig {
	rt := cfg.Runtime(screenW, screenH, flagSeed)
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return rt
}

// runShell starts the shell registered under id and blocks until it returns.
// SIGINT and SIGTERM cancel the shell's context.
func runShell(cmd *cobra.Command, id string, logOut io.Writer, screenW, screenH int) error {
	if !registry.Exists(id) {
		return fmt.Errorf("shell %q is not available in this build", id)
	}

	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	cfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	shell, err := registry.Create(id)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = shell.Run(ctx, registry.RunOptions{
		Game:    cfg,
		Runtime: runtimeConfig(cfg, screenW, screenH),
		Logger:  logger,
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("%s shell: %w", id, err)
	}
	return nil
}

// commandContext returns cmd's context, or Background outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
