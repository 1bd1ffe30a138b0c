// Package calendar exports schedule snapshots as iCalendar files.
//
// Each scheduled meeting block becomes a weekly recurring VEVENT anchored
// at the first occurrence on or after the section's start date. Arranged
// and online-asynchronous meetings have no fixed time and are skipped.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

var byDay = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// Snapshot renders the snapshot's scheduled meetings as an iCalendar
// document. Sections with only arranged meetings contribute no events.
func Snapshot(snap *schedule.Snapshot) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ccc-schedule-collector//" + snap.CollegeID + "//EN")
	cal.SetXWRCalName(fmt.Sprintf("%s %s", snap.CollegeID, snap.Term))

	termYear := termYear(snap.TermCode, snap.CollectedAt)

	for i := range snap.Sections {
		sec := &snap.Sections[i]
		for j, m := range sec.Meetings {
			if !m.Scheduled() {
				continue
			}
			addMeeting(cal, sec, m, j, termYear)
		}
	}
	return cal.Serialize()
}

func addMeeting(cal *ics.Calendar, sec *schedule.Section, m schedule.Meeting, idx, year int) {
	startDate := m.StartDate
	endDate := m.EndDate
	if startDate == "" {
		startDate = sec.StartDate
		endDate = sec.EndDate
	}
	anchor, ok := firstOccurrence(startDate, year, m.Days)
	if !ok {
		return
	}

	start := anchor.Add(time.Duration(m.StartMin) * time.Minute)
	end := anchor.Add(time.Duration(m.EndMin) * time.Minute)
	if !end.After(start) {
		end = start.Add(time.Hour)
	}

	ev := cal.AddEvent(fmt.Sprintf("%s-%d@%s", sec.CRN, idx, "ccc-schedule-collector"))
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetStartAt(start)
	ev.SetEndAt(end)
	ev.SetSummary(fmt.Sprintf("%s %s - %s", sec.Subject, sec.CourseNumber, sec.Title))
	if sec.Location != "" {
		ev.SetLocation(sec.Location)
	}
	ev.SetDescription(fmt.Sprintf("CRN %s, %s", sec.CRN, strings.Join(sec.Instructors, "; ")))

	days := make([]string, 0, len(m.Days))
	for _, d := range m.Days {
		days = append(days, byDay[d])
	}
	rrule := "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")
	if until, ok := parseTermDate(endDate, year); ok {
		rrule += ";UNTIL=" + until.Format("20060102T150405Z")
	}
	ev.AddRrule(rrule)
}

// firstOccurrence finds the first calendar date on or after the session
// start that falls on one of the meeting's weekdays.
func firstOccurrence(startDate string, year int, days []time.Weekday) (time.Time, bool) {
	start, ok := parseTermDate(startDate, year)
	if !ok {
		return time.Time{}, false
	}
	wanted := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		wanted[d] = true
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		if wanted[day.Weekday()] {
			return day, true
		}
	}
	return time.Time{}, false
}

// parseTermDate parses the source's "01/13" month/day form against the
// term year.
func parseTermDate(s string, year int) (time.Time, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// termYear recovers the calendar year from a Banner term code ("202570");
// the collection timestamp is the fallback.
func termYear(termCode string, collectedAt time.Time) int {
	if len(termCode) >= 4 {
		if y, err := strconv.Atoi(termCode[:4]); err == nil && y > 1900 {
			return y
		}
	}
	if !collectedAt.IsZero() {
		return collectedAt.Year()
	}
	return time.Now().Year()
}
