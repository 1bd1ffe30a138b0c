package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/spf13/cobra"
)

// Stats aggregates one snapshot for reporting.
type Stats struct {
	Term          string                    `json:"term"`
	TermCode      string                    `json:"term_code"`
	TotalSections int                       `json:"total_sections"`
	BySubject     map[string]int            `json:"by_subject"`
	ByDelivery    map[schedule.Delivery]int `json:"by_delivery"`
	ZeroTextbook  int                       `json:"zero_textbook_cost"`
	TotalCapacity int                       `json:"total_capacity"`
	TotalEnrolled int                       `json:"total_enrolled"`
	FillRate      float64                   `json:"fill_rate"`
}

// ComputeStats builds the aggregate view of a snapshot. Sections with
// non-numeric seat counts contribute to section totals but not to the
// capacity/enrollment sums.
func ComputeStats(snap *schedule.Snapshot) *Stats {
	st := &Stats{
		Term:          snap.Term,
		TermCode:      snap.TermCode,
		TotalSections: len(snap.Sections),
		BySubject:     make(map[string]int),
		ByDelivery:    make(map[schedule.Delivery]int),
	}
	for i := range snap.Sections {
		s := &snap.Sections[i]
		st.BySubject[s.Subject]++
		st.ByDelivery[s.Delivery]++
		if s.ZeroTextbookCost {
			st.ZeroTextbook++
		}
		if s.Enrollment.Capacity != nil {
			st.TotalCapacity += *s.Enrollment.Capacity
		}
		if s.Enrollment.Actual != nil {
			st.TotalEnrolled += *s.Enrollment.Actual
		}
	}
	if st.TotalCapacity > 0 {
		st.FillRate = float64(st.TotalEnrolled) / float64(st.TotalCapacity)
	}
	return st
}

func newStatsCmd() *cobra.Command {
	var flagFormat string

	cmd := &cobra.Command{
		Use:   "stats <snapshot-file|latest>",
		Short: "Summarize an archived snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshotArg(args[0])
			if err != nil {
				return err
			}
			st := ComputeStats(snap)

			if flagFormat == string(FormatJSON) {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}

			fmt.Printf("Schedule: %s (%s)\n", st.Term, st.TermCode)
			fmt.Printf("Sections: %d across %d subjects\n", st.TotalSections, len(st.BySubject))
			fmt.Printf("Enrollment: %d/%d seats (%.1f%% full)\n", st.TotalEnrolled, st.TotalCapacity, st.FillRate*100)
			fmt.Printf("Zero textbook cost: %d sections\n\n", st.ZeroTextbook)

			fmt.Println("By delivery mode:")
			for _, mode := range []schedule.Delivery{schedule.DeliveryInPerson, schedule.DeliveryHybrid, schedule.DeliveryOnline} {
				fmt.Printf("  %-10s %d\n", mode, st.ByDelivery[mode])
			}

			fmt.Println("\nBy subject:")
			subjects := make([]string, 0, len(st.BySubject))
			for subj := range st.BySubject {
				subjects = append(subjects, subj)
			}
			sort.Strings(subjects)
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, subj := range subjects {
				fmt.Fprintf(tw, "  %s\t%d\n", subj, st.BySubject[subj])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text or json")
	return cmd
}
