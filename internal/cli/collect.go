package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/collector"
	"github.com/jmcpheron/ccc-schedule-collector/internal/storage"
	"github.com/spf13/cobra"
)

func newCollectCmd() *cobra.Command {
	var (
		flagTerm     string
		flagDryRun   bool
		flagCompress bool
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch the schedule listing and archive a snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if flagCompress {
				cfg.Storage.Compression = "gzip"
			}
			store, err := openStorage(cfg)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}

			start := time.Now().UTC()
			snap, result, err := collector.New(cfg).Collect(cmd.Context(), flagTerm)
			end := time.Now().UTC()

			meta := storage.RunMetadata{
				StartTime:       start,
				EndTime:         end,
				DurationSeconds: end.Sub(start).Seconds(),
				TermCode:        flagTerm,
				Success:         err == nil,
			}
			if err != nil {
				meta.Error = err.Error()
				if !flagDryRun {
					// The failed run still lands in the metadata log.
					_ = store.AppendRunMetadata(meta)
				}
				return err
			}
			meta.TermCode = snap.TermCode
			meta.Sections = len(snap.Sections)
			meta.Diagnostics = len(result.Diagnostics)

			if flagDryRun {
				fmt.Fprintf(os.Stdout, "Dry run: would save %d sections for %s (%d diagnostics)\n",
					len(snap.Sections), snap.TermCode, len(result.Diagnostics))
				return nil
			}

			path, err := store.SaveSnapshot(snap)
			if err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			if err := store.AppendRunMetadata(meta); err != nil {
				return fmt.Errorf("recording run metadata: %w", err)
			}
			if err := store.Cleanup(cfg.Storage.KeepCount); err != nil {
				return fmt.Errorf("cleaning up old snapshots: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Saved %d sections for %s to %s (%d diagnostics)\n",
				len(snap.Sections), snap.TermCode, path, len(result.Diagnostics))
			return nil
		},
	}

	cmd.Flags().StringVar(&flagTerm, "term", "", "Term code to collect (default: configured current term)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Fetch and parse without writing anything")
	cmd.Flags().BoolVar(&flagCompress, "compress", false, "Gzip the saved snapshot regardless of config")

	return cmd
}
