package filter

import (
	"testing"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

func intp(v int) *int { return &v }

func testSections() []schedule.Section {
	return []schedule.Section{
		{
			CRN:          "75001",
			Subject:      "MATH",
			CourseNumber: "130",
			Title:        "Introduction to Statistics",
			Units:        schedule.Units{Min: 4, Max: 4},
			Status:       "Open",
			Instructors:  []string{"Chen, L"},
			Meetings: []schedule.Meeting{
				{Days: []time.Weekday{time.Tuesday, time.Thursday}, StartMin: 11*60 + 10, EndMin: 12*60 + 35},
			},
			Enrollment:       schedule.Enrollment{Capacity: intp(35), Actual: intp(30), Remaining: intp(5)},
			ZeroTextbookCost: true,
			Delivery:         schedule.DeliveryInPerson,
		},
		{
			CRN:          "75002",
			Subject:      "MATH",
			CourseNumber: "140",
			Title:        "Calculus I",
			Units:        schedule.Units{Min: 5, Max: 5},
			Status:       "Closed",
			Instructors:  []string{"Rivera, A"},
			Meetings: []schedule.Meeting{
				{Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}, StartMin: 18 * 60, EndMin: 19*60 + 50},
			},
			Delivery: schedule.DeliveryInPerson,
		},
		{
			CRN:          "75003",
			Subject:      "ENGL",
			CourseNumber: "101",
			Title:        "Composition and Rhetoric",
			Units:        schedule.Units{Min: 3, Max: 3},
			Status:       "Open",
			Instructors:  []string{"Staff"},
			Meetings:     []schedule.Meeting{schedule.ArrangedMeeting()},
			Delivery:     schedule.DeliveryOnline,
		},
	}
}

func crns(sections []schedule.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.CRN)
	}
	return out
}

func TestFilterActive(t *testing.T) {
	if New().Active() {
		t.Error("empty filter should be inactive")
	}
	f := New()
	f.OpenOnly = true
	if !f.Active() {
		t.Error("filter with a criterion should be active")
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Filter)
		want  []string
	}{
		{
			name:  "empty filter matches all",
			setup: func(f *Filter) {},
			want:  []string{"75001", "75002", "75003"},
		},
		{
			name:  "subject case-insensitive",
			setup: func(f *Filter) { f.Subjects = []string{"math"} },
			want:  []string{"75001", "75002"},
		},
		{
			name:  "open only",
			setup: func(f *Filter) { f.OpenOnly = true },
			want:  []string{"75001", "75003"},
		},
		{
			name:  "zero textbook only",
			setup: func(f *Filter) { f.ZeroTextbookOnly = true },
			want:  []string{"75001"},
		},
		{
			name:  "title substring",
			setup: func(f *Filter) { f.TitleQuery = "statistics" },
			want:  []string{"75001"},
		},
		{
			name:  "instructor substring",
			setup: func(f *Filter) { f.Instructor = "rivera" },
			want:  []string{"75002"},
		},
		{
			name:  "delivery mode",
			setup: func(f *Filter) { f.Deliveries = []schedule.Delivery{schedule.DeliveryOnline} },
			want:  []string{"75003"},
		},
		{
			name:  "max units",
			setup: func(f *Filter) { f.MaxUnits = 4 },
			want:  []string{"75001", "75003"},
		},
		{
			name: "evening classes",
			setup: func(f *Filter) {
				f.StartAfter = 17 * 60
			},
			want: []string{"75002"},
		},
		{
			name: "morning bound excludes arranged",
			setup: func(f *Filter) {
				f.StartBefore = 12 * 60
			},
			want: []string{"75001"},
		},
		{
			name: "days must cover every meeting day",
			setup: func(f *Filter) {
				f.Days = []time.Weekday{time.Tuesday, time.Thursday}
			},
			want: []string{"75001"},
		},
		{
			name: "combined criteria",
			setup: func(f *Filter) {
				f.Subjects = []string{"MATH"}
				f.OpenOnly = true
			},
			want: []string{"75001"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			tt.setup(f)
			got := crns(f.Apply(testSections()))
			if len(got) != len(tt.want) {
				t.Fatalf("matched %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("matched %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterDayTimeNeedsScheduledMeeting(t *testing.T) {
	f := New()
	f.Days = []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	arranged := testSections()[2]
	if f.Matches(&arranged) {
		t.Error("arranged-only section should not satisfy day criteria")
	}
}
