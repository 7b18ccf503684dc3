// Command scheduler runs the review scheduler service and its maintenance
// tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/review-scheduler/internal/app"
	"github.com/heartmarshall/review-scheduler/internal/config"
)

var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scheduler: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scheduler",
		Short:         "Spaced-repetition review scheduler",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (defaults to $CONFIG_PATH, then ./config.yaml)")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newReconcileCommand(),
		newDueCommand(),
	)
	return root
}

// loadConfig loads the configuration and installs the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
