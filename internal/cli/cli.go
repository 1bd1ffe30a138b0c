package cli

import (
	"fmt"
	"os"

	"github.com/jmcpheron/ccc-schedule-collector/internal/config"
	"github.com/jmcpheron/ccc-schedule-collector/internal/logger"
	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/jmcpheron/ccc-schedule-collector/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ccc-schedule",
		Short: "Collect and inspect community college schedule snapshots",
		Long: `Collects the public course-schedule listing of a community college
registration system and archives it as structured JSON snapshots.
Reporting subcommands inspect, validate, and export archived snapshots.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (defaults apply without one)")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Override the snapshot data directory")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newCollectCmd())
	cmd.AddCommand(newInfoCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newFiltersCmd())

	return cmd
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.Storage.DataDir = flagDataDir
	}
	return cfg, nil
}

func openStorage(cfg *config.Config) (*storage.Storage, error) {
	return storage.New(cfg.Storage.DataDir, cfg.Storage.Compression)
}

// loadSnapshotArg resolves a snapshot argument: a file path, or the
// literal "latest" for the newest archived snapshot.
func loadSnapshotArg(arg string) (*schedule.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	if arg == "latest" {
		return store.LatestSnapshot("")
	}
	return store.LoadSnapshot(arg)
}
