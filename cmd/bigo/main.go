// Command bigo estimates the time complexity of built-in workloads from
// execution-time measurements, or re-fits previously recorded samples.
//
//	bigo list
//	bigo estimate --workload quicksort --measures 20 --timings 5
//	bigo fit samples.yaml --format json
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexshd/bigo/internal/config"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("bigo failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigo",
		Short:         "Estimate time complexity from execution-time measurements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("format", "text", "output format (text, yaml, json)")

	root.AddCommand(newEstimateCmd(), newFitCmd(), newListCmd())
	return root
}

// loadConfig resolves configuration for cmd and installs the run logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cfg.Log.Level).With("run", uuid.NewString())
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newLogger(level string) *slog.Logger {
	return slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: "15:04:05",
		}),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
