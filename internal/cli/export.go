package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmcpheron/ccc-schedule-collector/internal/calendar"
	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

func newExportCmd() *cobra.Command {
	var (
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "export <snapshot-file|latest>",
		Short: "Export an archived snapshot as csv, json, ics, or xlsx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshotArg(args[0])
			if err != nil {
				return err
			}

			format := strings.ToLower(flagFormat)
			if format == "xlsx" && flagOut == "" {
				return fmt.Errorf("xlsx export requires --out")
			}

			var w io.Writer = os.Stdout
			if flagOut != "" {
				f, err := os.Create(flagOut)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				return writeSectionsCSV(w, snap.Sections)
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			case "ics":
				_, err := io.WriteString(w, calendar.Snapshot(snap))
				return err
			case "xlsx":
				return writeXLSX(w, snap)
			default:
				return fmt.Errorf("invalid format: %s (must be csv, json, ics, or xlsx)", flagFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Export format: csv, json, ics, or xlsx")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout; required for xlsx)")

	return cmd
}

// writeXLSX renders the snapshot as a single-sheet workbook with the same
// columns as the CSV export.
func writeXLSX(w io.Writer, snap *schedule.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i := range snap.Sections {
		s := &snap.Sections[i]
		row := []interface{}{
			s.CRN,
			s.Subject,
			s.CourseNumber,
			s.Title,
			s.Units.String(),
			strings.Join(s.Instructors, "; "),
			meetingSummary(s.Meetings),
			s.Location,
			countCell(s.Enrollment.Capacity),
			countCell(s.Enrollment.Actual),
			countCell(s.Enrollment.Remaining),
			s.ZeroTextbookCost,
			string(s.Delivery),
			s.StartDate,
			s.EndDate,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// countCell keeps numeric seat counts numeric in the workbook; non-numeric
// ("N/A") counts come through as empty cells.
func countCell(n *int) interface{} {
	if n == nil {
		return nil
	}
	return *n
}
