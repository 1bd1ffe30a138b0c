package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// OutputFormat specifies how sections are rendered.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatCSV   OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(s)) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be table, json, or csv)", s)
	}
}

func writeSections(w io.Writer, sections []schedule.Section, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sections)
	case FormatCSV:
		return writeSectionsCSV(w, sections)
	default:
		return writeSectionsTable(w, sections)
	}
}

func writeSectionsTable(w io.Writer, sections []schedule.Section) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CRN\tCOURSE\tTITLE\tINSTRUCTOR\tTIME\tLOCATION\tENROLLED\tMODE")
	for i := range sections {
		s := &sections[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.CRN,
			s.Course(),
			truncate(s.Title, 30),
			truncate(strings.Join(s.Instructors, "; "), 24),
			meetingSummary(s.Meetings),
			s.Location,
			enrollmentSummary(s.Enrollment),
			string(s.Delivery),
		)
	}
	return tw.Flush()
}

var csvHeader = []string{
	"crn", "subject", "course_number", "title", "units", "instructors",
	"meetings", "location", "capacity", "actual", "remaining",
	"zero_textbook_cost", "delivery", "start_date", "end_date",
}

func writeSectionsCSV(w io.Writer, sections []schedule.Section) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range sections {
		s := &sections[i]
		record := []string{
			s.CRN,
			s.Subject,
			s.CourseNumber,
			s.Title,
			s.Units.String(),
			strings.Join(s.Instructors, "; "),
			meetingSummary(s.Meetings),
			s.Location,
			countString(s.Enrollment.Capacity),
			countString(s.Enrollment.Actual),
			countString(s.Enrollment.Remaining),
			strconv.FormatBool(s.ZeroTextbookCost),
			string(s.Delivery),
			s.StartDate,
			s.EndDate,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func meetingSummary(meetings []schedule.Meeting) string {
	parts := make([]string, 0, len(meetings))
	for _, m := range meetings {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, ", ")
}

func enrollmentSummary(e schedule.Enrollment) string {
	return countString(e.Actual) + "/" + countString(e.Capacity)
}

// countString renders a seat count, keeping "N/A" distinct from zero.
func countString(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
