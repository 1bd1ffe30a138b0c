package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

func testSnapshot() *schedule.Snapshot {
	sections := []schedule.Section{
		{
			CRN:          "75001",
			Subject:      "MATH",
			CourseNumber: "130",
			Title:        "Introduction to Statistics",
			Instructors:  []string{"Chen, L"},
			Location:     "MB118",
			Meetings: []schedule.Meeting{
				{
					Days:     []time.Weekday{time.Tuesday, time.Thursday},
					StartMin: 11*60 + 10,
					EndMin:   12*60 + 35,
				},
			},
			StartDate: "01/13",
			EndDate:   "05/23",
		},
		{
			CRN:          "75002",
			Subject:      "CS",
			CourseNumber: "101",
			Title:        "Intro to Programming",
			Instructors:  []string{"Staff"},
			Location:     "Online ASYNC",
			Meetings:     []schedule.Meeting{schedule.ArrangedMeeting()},
			Delivery:     schedule.DeliveryOnline,
		},
	}
	return schedule.NewSnapshot("rio-hondo", "Spring 2025", "202510", "https://example.edu", time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), sections)
}

func TestSnapshotCalendar(t *testing.T) {
	out := Snapshot(testSnapshot())

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("output is not a calendar")
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Fatalf("expected 1 event (arranged meeting skipped), got %d", got)
	}
	if !strings.Contains(out, "MATH 130 - Introduction to Statistics") {
		t.Error("missing event summary")
	}
	if !strings.Contains(out, "FREQ=WEEKLY;BYDAY=TU,TH") {
		t.Error("missing weekly recurrence rule")
	}
	if !strings.Contains(out, "UNTIL=20250523") {
		t.Error("recurrence should end at the session end date")
	}
	if !strings.Contains(out, "75001-0@ccc-schedule-collector") {
		t.Error("missing stable event UID")
	}
	if !strings.Contains(out, "LOCATION:MB118") {
		t.Error("missing event location")
	}
	// 01/13/2025 is a Monday; the first Tuesday after it is the 14th.
	if !strings.Contains(out, "20250114T111000") {
		t.Error("event should start at the first matching weekday on or after the session start")
	}
}

func TestSnapshotCalendarNoScheduledMeetings(t *testing.T) {
	snap := testSnapshot()
	snap.Sections = snap.Sections[1:]

	out := Snapshot(snap)
	if strings.Contains(out, "BEGIN:VEVENT") {
		t.Error("arranged-only snapshot should produce no events")
	}
}

func TestFirstOccurrence(t *testing.T) {
	// 01/13/2025 is itself a Monday.
	day, ok := firstOccurrence("01/13", 2025, []time.Weekday{time.Monday})
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if day.Day() != 13 {
		t.Errorf("Monday session should anchor on its own start date, got %v", day)
	}

	day, ok = firstOccurrence("01/13", 2025, []time.Weekday{time.Friday})
	if !ok {
		t.Fatal("expected an occurrence")
	}
	if day.Day() != 17 {
		t.Errorf("first Friday after 01/13 is the 17th, got %v", day)
	}

	if _, ok := firstOccurrence("not a date", 2025, []time.Weekday{time.Monday}); ok {
		t.Error("unparseable date should report no occurrence")
	}
}

func TestTermYear(t *testing.T) {
	if got := termYear("202570", time.Time{}); got != 2025 {
		t.Errorf("termYear(202570) = %d", got)
	}
	fallback := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := termYear("bad", fallback); got != 2024 {
		t.Errorf("fallback year = %d", got)
	}
}
