package cli

import (
	"fmt"
	"os"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <snapshot-file>...",
		Short: "Check archived snapshots for data-quality problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, arg := range args {
				snap, err := loadSnapshotArg(arg)
				if err != nil {
					fmt.Fprintf(os.Stdout, "%s: FAILED to load: %v\n", arg, err)
					failed = true
					continue
				}
				problems := ValidateSnapshot(snap)
				if len(problems) == 0 {
					fmt.Fprintf(os.Stdout, "%s: OK (%d sections)\n", arg, len(snap.Sections))
					continue
				}
				failed = true
				fmt.Fprintf(os.Stdout, "%s: %d problems\n", arg, len(problems))
				for _, p := range problems {
					fmt.Fprintf(os.Stdout, "  %s\n", p)
				}
			}
			if failed {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}
	return cmd
}

// ValidateSnapshot checks the structural invariants every archived
// snapshot should satisfy. Seat-count arithmetic that disagrees with the
// source's published remaining value is NOT a problem: the source value is
// authoritative and preserved as-is.
func ValidateSnapshot(snap *schedule.Snapshot) []string {
	var problems []string
	seen := make(map[string]bool)

	for i := range snap.Sections {
		s := &snap.Sections[i]
		ref := fmt.Sprintf("section %d (CRN %s)", i, s.CRN)

		if s.CRN == "" {
			problems = append(problems, fmt.Sprintf("section %d: missing CRN", i))
		} else if seen[s.CRN] {
			problems = append(problems, ref+": duplicate CRN")
		}
		seen[s.CRN] = true

		if s.Subject == "" {
			problems = append(problems, ref+": missing subject")
		}
		if s.CourseNumber == "" {
			problems = append(problems, ref+": missing course number")
		}
		if len(s.Meetings) == 0 {
			problems = append(problems, ref+": no meeting patterns")
		}
		if s.Delivery == "" {
			problems = append(problems, ref+": missing delivery mode")
		}
	}

	if snap.TotalSections != len(snap.Sections) {
		problems = append(problems, fmt.Sprintf("total_courses %d does not match section count %d",
			snap.TotalSections, len(snap.Sections)))
	}
	return problems
}
