package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "diff <old-snapshot> <new-snapshot|latest>",
		Short: "Compare two archived snapshots of the same term",
		Long: `Compares two snapshots section by section. Reports sections that were
added or removed between collections, and field-level changes (status,
enrollment, instructor, meeting times) for sections present in both.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			previous, err := loadSnapshotArg(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			current, err := loadSnapshotArg(args[1])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[1], err)
			}

			report := schedule.Diff(previous, current)

			if flagFormat == string(FormatJSON) {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeDiffReport(report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text or json")
	return cmd
}

func writeDiffReport(report *schedule.DiffReport) {
	if report.Empty() {
		fmt.Println("No differences.")
		return
	}

	if len(report.Added) > 0 {
		fmt.Printf("Added (%d):\n", len(report.Added))
		for i := range report.Added {
			s := &report.Added[i]
			fmt.Printf("  + %s %s - %s\n", s.CRN, s.Course(), s.Title)
		}
	}
	if len(report.Removed) > 0 {
		fmt.Printf("Removed (%d):\n", len(report.Removed))
		for i := range report.Removed {
			s := &report.Removed[i]
			fmt.Printf("  - %s %s - %s\n", s.CRN, s.Course(), s.Title)
		}
	}
	if len(report.Changes) > 0 {
		fmt.Printf("Changed (%d):\n", len(report.Changes))
		for _, c := range report.Changes {
			fmt.Printf("  ~ %s %s %s: %q -> %q\n", c.CRN, c.Course, c.ChangeType, c.OldValue, c.NewValue)
		}
	}
}
