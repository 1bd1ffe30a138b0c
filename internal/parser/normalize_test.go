package parser

import (
	"testing"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		token string
		want  []time.Weekday
	}{
		{"M", []time.Weekday{time.Monday}},
		{"MWF", []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		// T is always Tuesday, R always Thursday: a fixed pairing, not
		// an inference.
		{"TR", []time.Weekday{time.Tuesday, time.Thursday}},
		{"SU", []time.Weekday{time.Saturday, time.Sunday}},
		{"MTWRF", []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{"XY", nil},
		{"", nil},
		{"Th", nil}, // lowercase h is not a day letter
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got := ParseDays(tt.token)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseDays(%q) = %v, want %v", tt.token, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseDays(%q)[%d] = %v, want %v", tt.token, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	layout := DefaultLayout()

	tests := []struct {
		in        string
		want      int
		ok        bool
		ambiguous bool
	}{
		{"0900", 9 * 60, true, false},
		{"1310", 13*60 + 10, true, false},
		{"11:10am", 11*60 + 10, true, false},
		{"12:35pm", 12*60 + 35, true, false},
		{"12:05am", 5, true, false},
		{"12:00pm", 12 * 60, true, false},
		{"9:00 PM", 21 * 60, true, false},
		{"13:10", 13*60 + 10, true, false}, // hour > 12 is unambiguous 24h
		{"9:00", schedule.TimeTBA, true, true},
		{"2560", schedule.TimeTBA, false, false},
		{"9:75", schedule.TimeTBA, false, false},
		{"noon", schedule.TimeTBA, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, ambiguous := ParseClock(tt.in, layout)
			if got != tt.want || ok != tt.ok || ambiguous != tt.ambiguous {
				t.Errorf("ParseClock(%q) = (%d, %v, %v), want (%d, %v, %v)",
					tt.in, got, ok, ambiguous, tt.want, tt.ok, tt.ambiguous)
			}
		})
	}
}

func TestParseClockConfiguredDefault(t *testing.T) {
	layout := DefaultLayout()
	layout.AssumePMBelowHour = 7 // bare 1:00-6:59 are afternoon classes

	tests := []struct {
		in   string
		want int
	}{
		{"2:30", 14*60 + 30}, // below threshold: PM
		{"9:00", 9 * 60},     // at/above threshold: AM
	}
	for _, tt := range tests {
		got, ok, ambiguous := ParseClock(tt.in, layout)
		if !ok || ambiguous {
			t.Fatalf("ParseClock(%q) unexpectedly not ok (ok=%v ambiguous=%v)", tt.in, ok, ambiguous)
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMeetingsCompact(t *testing.T) {
	layout := DefaultLayout()
	f := RawFields{MeetingCells: []string{"MWF 0900-0950"}, Wide: true}

	meetings, ambiguous := NormalizeMeetings(f, layout)
	if ambiguous {
		t.Error("unexpected ambiguity")
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}
	m := meetings[0]
	if m.DayString() != "MWF" {
		t.Errorf("days = %s, want MWF", m.DayString())
	}
	if m.StartMin != 9*60 || m.EndMin != 9*60+50 {
		t.Errorf("times = %d-%d, want 540-590", m.StartMin, m.EndMin)
	}
}

func TestNormalizeMeetingsSpread(t *testing.T) {
	layout := DefaultLayout()
	// Day letters and the time range spread over the meeting block's
	// columns, as the source renders them.
	f := RawFields{MeetingCells: []string{"", "T", "", "R", "", "", "", "11:10am - 12:35pm"}}

	meetings, ambiguous := NormalizeMeetings(f, layout)
	if ambiguous {
		t.Error("unexpected ambiguity")
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}
	m := meetings[0]
	if m.DayString() != "TR" {
		t.Errorf("days = %s, want TR", m.DayString())
	}
	if m.StartMin != 11*60+10 || m.EndMin != 12*60+35 {
		t.Errorf("times = %d-%d, want 670-755", m.StartMin, m.EndMin)
	}
}

func TestNormalizeMeetingsArranged(t *testing.T) {
	layout := DefaultLayout()
	for _, cells := range [][]string{
		{"", "", "", "", "", "", "", "Arr"},
		{"3.5 hrs arr in addition"},
		{"TBA"},
	} {
		meetings, _ := NormalizeMeetings(RawFields{MeetingCells: cells}, layout)
		if len(meetings) != 1 || !meetings[0].Arranged {
			t.Errorf("NormalizeMeetings(%v) = %v, want single arranged sentinel", cells, meetings)
		}
	}
}

func TestNormalizeMeetingsAmbiguousTime(t *testing.T) {
	layout := DefaultLayout()
	f := RawFields{MeetingCells: []string{"", "M", "", "W", "", "", "", "9:00 - 10:50"}}

	meetings, ambiguous := NormalizeMeetings(f, layout)
	if !ambiguous {
		t.Error("expected ambiguity for 12-hour time without marker")
	}
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}
	if meetings[0].StartMin != schedule.TimeTBA || meetings[0].EndMin != schedule.TimeTBA {
		t.Errorf("expected TBA times, got %d-%d", meetings[0].StartMin, meetings[0].EndMin)
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		in       string
		min, max float64
	}{
		{"3.00", 3, 3},
		{"4", 4, 4},
		{"1.00-4.00", 1, 4},
		{"1.5 - 4", 1.5, 4},
		{"", 0, 0},
		{"units", 0, 0},
	}
	for _, tt := range tests {
		got := ParseUnits(tt.in)
		if got.Min != tt.min || got.Max != tt.max {
			t.Errorf("ParseUnits(%q) = %v-%v, want %v-%v", tt.in, got.Min, got.Max, tt.min, tt.max)
		}
	}
}

func TestParseCountNullVsZero(t *testing.T) {
	if got := ParseCount("N/A"); got != nil {
		t.Errorf(`ParseCount("N/A") = %v, want nil`, *got)
	}
	if got := ParseCount(""); got != nil {
		t.Errorf(`ParseCount("") = %v, want nil`, *got)
	}
	if got := ParseCount("0"); got == nil || *got != 0 {
		t.Errorf(`ParseCount("0") = %v, want 0`, got)
	}
	if got := ParseCount("35"); got == nil || *got != 35 {
		t.Errorf(`ParseCount("35") = %v, want 35`, got)
	}
	// Overrides can drive remaining seats negative; the sign survives.
	if got := ParseCount("-3"); got == nil || *got != -3 {
		t.Errorf(`ParseCount("-3") = %v, want -3`, got)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end := ParseDateRange("01/13 - 05/23")
	if start != "01/13" || end != "05/23" {
		t.Errorf("ParseDateRange = %q, %q", start, end)
	}
	start, end = ParseDateRange("16 weeks")
	if start != "" || end != "" {
		t.Errorf("expected empty range, got %q, %q", start, end)
	}
}

func TestParseInstructors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Rivera, A", []string{"Rivera, A"}},
		{"Rivera, A; Chen, B", []string{"Rivera, A", "Chen, B"}},
		{"", []string{"Staff"}},
		{"  ", []string{"Staff"}},
	}
	for _, tt := range tests {
		got := ParseInstructors(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("ParseInstructors(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseInstructors(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestZeroTextbookCost(t *testing.T) {
	layout := DefaultLayout()
	if !ZeroTextbookCost(RawFields{ZTCImgSrc: "/images/ZeroCostTextbook.png"}, layout) {
		t.Error("marker image should set the flag")
	}
	// Absence of the marker is a meaningful false.
	if ZeroTextbookCost(RawFields{}, layout) {
		t.Error("missing marker should read as false")
	}
	if ZeroTextbookCost(RawFields{ZTCImgSrc: "/images/lowcost.png"}, layout) {
		t.Error("unrelated image should read as false")
	}
}

// TestInferDeliveryTable exercises every combination of the three signals.
func TestInferDeliveryTable(t *testing.T) {
	layout := DefaultLayout()

	scheduled := schedule.Meeting{
		Days:     []time.Weekday{time.Monday},
		StartMin: 540,
		EndMin:   590,
	}
	arranged := schedule.ArrangedMeeting()

	tests := []struct {
		name     string
		meetings []schedule.Meeting
		location string
		want     schedule.Delivery
	}{
		{"no signals", []schedule.Meeting{arranged}, "", schedule.DeliveryInPerson},
		{"online only", []schedule.Meeting{arranged}, "Online ASYNC", schedule.DeliveryOnline},
		{"room only, arranged", []schedule.Meeting{arranged}, "A207", schedule.DeliveryInPerson},
		{"room and online, arranged", []schedule.Meeting{arranged}, "Online / A207", schedule.DeliveryOnline},
		{"scheduled only", []schedule.Meeting{scheduled}, "", schedule.DeliveryInPerson},
		{"scheduled and online", []schedule.Meeting{scheduled}, "Online SYNC", schedule.DeliveryHybrid},
		{"scheduled and room", []schedule.Meeting{scheduled}, "A207", schedule.DeliveryInPerson},
		{"all signals", []schedule.Meeting{scheduled, arranged}, "Online / A207", schedule.DeliveryHybrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferDelivery(tt.meetings, tt.location, layout); got != tt.want {
				t.Errorf("InferDelivery(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}
