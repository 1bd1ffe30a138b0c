// Package filter narrows a snapshot's section list by search criteria.
//
// Filters combine subject, status, meeting-day, time-of-day, delivery-mode,
// and zero-textbook-cost criteria; a section must satisfy every active
// criterion to pass. Filters can be saved as named presets and reused
// across invocations.
package filter

import (
	"strings"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// Filter holds section search criteria. Zero-valued criteria are inactive;
// an empty filter matches every section.
type Filter struct {
	// Subjects matches the section's subject code exactly, case-insensitive.
	Subjects []string `json:"subjects,omitempty"`

	// TitleQuery is a case-insensitive substring match on the course title.
	TitleQuery string `json:"title_query,omitempty"`

	// Instructor is a case-insensitive substring match on any instructor.
	Instructor string `json:"instructor,omitempty"`

	// Days requires at least one scheduled meeting to fall entirely within
	// the given weekdays.
	Days []time.Weekday `json:"days,omitempty"`

	// StartAfter/StartBefore bound the start of scheduled meetings, in
	// minutes since midnight. Zero means unbounded.
	StartAfter  int `json:"start_after,omitempty"`
	StartBefore int `json:"start_before,omitempty"`

	// Deliveries restricts the delivery mode.
	Deliveries []schedule.Delivery `json:"deliveries,omitempty"`

	// OpenOnly keeps only sections whose status reads Open.
	OpenOnly bool `json:"open_only,omitempty"`

	// ZeroTextbookOnly keeps only sections with the zero-textbook-cost
	// marker.
	ZeroTextbookOnly bool `json:"zero_textbook_only,omitempty"`

	// MaxUnits drops sections whose minimum credit value exceeds it. Zero
	// means unbounded.
	MaxUnits float64 `json:"max_units,omitempty"`
}

// New returns an empty filter that matches everything.
func New() *Filter {
	return &Filter{}
}

// Active reports whether any criterion is set.
func (f *Filter) Active() bool {
	return len(f.Subjects) > 0 || f.TitleQuery != "" || f.Instructor != "" ||
		len(f.Days) > 0 || f.StartAfter > 0 || f.StartBefore > 0 ||
		len(f.Deliveries) > 0 || f.OpenOnly || f.ZeroTextbookOnly || f.MaxUnits > 0
}

// Apply returns the sections that satisfy every active criterion, in their
// original order.
func (f *Filter) Apply(sections []schedule.Section) []schedule.Section {
	var out []schedule.Section
	for i := range sections {
		if f.Matches(&sections[i]) {
			out = append(out, sections[i])
		}
	}
	return out
}

// Matches reports whether one section satisfies the filter.
func (f *Filter) Matches(s *schedule.Section) bool {
	if len(f.Subjects) > 0 && !containsFold(f.Subjects, s.Subject) {
		return false
	}
	if f.TitleQuery != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(f.TitleQuery)) {
		return false
	}
	if f.Instructor != "" && !anyContainsFold(s.Instructors, f.Instructor) {
		return false
	}
	if f.OpenOnly && !strings.EqualFold(s.Status, "Open") {
		return false
	}
	if f.ZeroTextbookOnly && !s.ZeroTextbookCost {
		return false
	}
	if f.MaxUnits > 0 && s.Units.Min > f.MaxUnits {
		return false
	}
	if len(f.Deliveries) > 0 && !deliveryIn(f.Deliveries, s.Delivery) {
		return false
	}
	if len(f.Days) > 0 || f.StartAfter > 0 || f.StartBefore > 0 {
		if !f.anyMeetingMatches(s.Meetings) {
			return false
		}
	}
	return true
}

// anyMeetingMatches checks the day/time criteria against each scheduled
// meeting; one qualifying meeting is enough. Arranged meetings have no time
// block and never qualify.
func (f *Filter) anyMeetingMatches(meetings []schedule.Meeting) bool {
	for _, m := range meetings {
		if !m.Scheduled() {
			continue
		}
		if len(f.Days) > 0 && !daysWithin(m.Days, f.Days) {
			continue
		}
		if f.StartAfter > 0 && m.StartMin < f.StartAfter {
			continue
		}
		if f.StartBefore > 0 && m.StartMin >= f.StartBefore {
			continue
		}
		return true
	}
	return false
}

// daysWithin reports whether every meeting day is among the wanted days.
func daysWithin(days, wanted []time.Weekday) bool {
	for _, d := range days {
		found := false
		for _, w := range wanted {
			if d == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(days) > 0
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func anyContainsFold(haystack []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func deliveryIn(deliveries []schedule.Delivery, d schedule.Delivery) bool {
	for _, want := range deliveries {
		if want == d {
			return true
		}
	}
	return false
}
