package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// Day letters as used by Banner schedule listings. The pairing is fixed by
// the source encoding: T is always Tuesday and R always Thursday, S Saturday
// and U Sunday. Never inferred from context.
var dayByLetter = map[byte]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

// ParseDays maps a day-letter token ("MWF", "TR") to weekdays in the order
// written. Returns nil if any character is not a day letter.
func ParseDays(token string) []time.Weekday {
	if token == "" {
		return nil
	}
	days := make([]time.Weekday, 0, len(token))
	for i := 0; i < len(token); i++ {
		d, ok := dayByLetter[token[i]]
		if !ok {
			return nil
		}
		days = append(days, d)
	}
	return days
}

var (
	arrangedRe = regexp.MustCompile(`(?i)\b(arr|tba|async)\b`)
	// "MWF 0900-0950", "TR 8:00am-9:15am" in a single cell
	compactMeetingRe = regexp.MustCompile(`^([MTWRFSU]+)\s+(\S+)\s*-\s*(\S+)$`)
	clockRe          = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm|AM|PM)?$`)
	compactClockRe   = regexp.MustCompile(`^(\d{3,4})$`)
	unitsRangeRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)`)
	unitsRe          = regexp.MustCompile(`\d+(?:\.\d+)?`)
	dateRangeRe      = regexp.MustCompile(`(\d{2}/\d{2})\s*-\s*(\d{2}/\d{2})`)
	countRe          = regexp.MustCompile(`^-?\d+$`)
)

// ParseClock converts one clock token to minutes since midnight. The second
// return is false when the token is not a clock at all; ambiguous is true
// when the token is a 12-hour time with no am/pm marker that the layout
// declines to guess, in which case the minute value is TimeTBA.
func ParseClock(s string, layout Layout) (min int, ok bool, ambiguous bool) {
	s = strings.TrimSpace(s)

	// Compact 24-hour form: "0900", "1310".
	if m := compactClockRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		h, mm := v/100, v%100
		if h > 23 || mm > 59 {
			return schedule.TimeTBA, false, false
		}
		return h*60 + mm, true, false
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return schedule.TimeTBA, false, false
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if mm > 59 || h > 23 {
		return schedule.TimeTBA, false, false
	}
	marker := strings.ToLower(m[3])

	switch marker {
	case "am":
		if h == 12 {
			h = 0
		}
	case "pm":
		if h != 12 {
			h += 12
		}
	default:
		// No marker. Hours 0 and 13-23 are unambiguous 24-hour values;
		// 1-12 need the configured default or normalize to TBA.
		if h >= 1 && h <= 12 {
			if layout.AssumePMBelowHour == 0 {
				return schedule.TimeTBA, true, true
			}
			if h < layout.AssumePMBelowHour && h != 12 {
				h += 12
			}
		}
	}
	return h*60 + mm, true, false
}

// parseTimeRange parses "11:10am - 12:35pm" or "0900-0950".
func parseTimeRange(s string, layout Layout) (start, end int, ok, ambiguous bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return schedule.TimeTBA, schedule.TimeTBA, false, false
	}
	var aAmb, bAmb bool
	start, ok, aAmb = ParseClock(parts[0], layout)
	if !ok {
		return schedule.TimeTBA, schedule.TimeTBA, false, false
	}
	end, ok, bAmb = ParseClock(parts[1], layout)
	if !ok {
		return schedule.TimeTBA, schedule.TimeTBA, false, false
	}
	return start, end, true, aAmb || bAmb
}

// NormalizeMeetings turns the raw meeting block of one row into meeting
// patterns. It is total: unparseable content yields either the arranged
// sentinel or no meetings at all, never an error. ambiguous reports that a
// clock time degraded to TBA for lack of an am/pm marker.
func NormalizeMeetings(f RawFields, layout Layout) (meetings []schedule.Meeting, ambiguous bool) {
	joined := strings.TrimSpace(strings.Join(nonEmpty(f.MeetingCells), " "))
	if joined == "" {
		return nil, false
	}
	if arrangedRe.MatchString(joined) {
		return []schedule.Meeting{schedule.ArrangedMeeting()}, false
	}

	// Single-cell compact form, as produced by spanning cells:
	// "MWF 0900-0950".
	for _, cell := range f.MeetingCells {
		cell = strings.TrimSpace(cell)
		m := compactMeetingRe.FindStringSubmatch(cell)
		if m == nil {
			continue
		}
		days := ParseDays(m[1])
		if days == nil {
			continue
		}
		start, end, ok, amb := parseTimeRange(m[2]+"-"+m[3], layout)
		if !ok {
			continue
		}
		meetings = append(meetings, schedule.Meeting{
			Days:     days,
			StartMin: start,
			EndMin:   end,
		})
		ambiguous = ambiguous || amb
	}
	if len(meetings) > 0 {
		return meetings, ambiguous
	}

	// Spread form: day letters and the time range live in separate cells
	// of the meeting block ("", "T", "", "R", "", "", "", "11:10am - 12:35pm").
	var days []time.Weekday
	var rangeCell string
	for _, cell := range f.MeetingCells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if d := ParseDays(cell); d != nil {
			days = append(days, d...)
			continue
		}
		if strings.Contains(cell, "-") {
			rangeCell = cell
		}
	}
	if len(days) == 0 || rangeCell == "" {
		return nil, false
	}
	start, end, ok, amb := parseTimeRange(rangeCell, layout)
	if !ok {
		return nil, false
	}
	return []schedule.Meeting{{Days: days, StartMin: start, EndMin: end}}, amb
}

func nonEmpty(cells []string) []string {
	var out []string
	for _, c := range cells {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ParseUnits parses a credit value, fixed ("3.00") or ranged ("1.00-4.00").
func ParseUnits(s string) schedule.Units {
	if m := unitsRangeRe.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return schedule.Units{Min: lo, Max: hi}
	}
	if m := unitsRe.FindString(s); m != "" {
		v, _ := strconv.ParseFloat(m, 64)
		return schedule.Units{Min: v, Max: v}
	}
	return schedule.Units{}
}

// ParseCount parses a seat count. Non-numeric text ("N/A") returns nil,
// which the model keeps distinct from an explicit zero.
func ParseCount(s string) *int {
	s = strings.TrimSpace(s)
	if !countRe.MatchString(s) {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ParseEnrollment maps the three adjacent count cells. Remaining is kept as
// published even when it disagrees with Capacity-Actual.
func ParseEnrollment(f RawFields) schedule.Enrollment {
	return schedule.Enrollment{
		Capacity:  ParseCount(f.Capacity),
		Actual:    ParseCount(f.Actual),
		Remaining: ParseCount(f.Remaining),
	}
}

// ParseDateRange parses a term sub-session span like "01/13 - 05/23".
func ParseDateRange(s string) (start, end string) {
	if m := dateRangeRe.FindStringSubmatch(s); m != nil {
		return m[1], m[2]
	}
	return "", ""
}

// ParseInstructors splits the instructor cell. An empty cell means the
// section is unassigned and reads as Staff.
func ParseInstructors(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{"Staff"}
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"Staff"}
	}
	return out
}

// ZeroTextbookCost reports whether the ZTC marker is present. An absent
// marker is a meaningful false, not missing data.
func ZeroTextbookCost(f RawFields, layout Layout) bool {
	return f.ZTCImgSrc != "" && layout.ZTCMarker != nil && layout.ZTCMarker.MatchString(f.ZTCImgSrc)
}

// InferDelivery derives the delivery mode from the complete meeting list
// and the location text. The decision is a total table over three signals:
// whether any meeting has a concrete day/time block, whether the location
// names a physical room, and whether it carries the online marker. Every
// combination is enumerated; in-person is the default where the evidence is
// insufficient, because it is by far the common case in the source.
func InferDelivery(meetings []schedule.Meeting, location string, layout Layout) schedule.Delivery {
	scheduled := false
	for _, m := range meetings {
		if m.Scheduled() {
			scheduled = true
			break
		}
	}
	online := layout.OnlineLocation != nil && layout.OnlineLocation.MatchString(location)
	physical := layout.RoomLocation != nil && layout.RoomLocation.MatchString(location)

	switch {
	case !scheduled && !physical && !online:
		return schedule.DeliveryInPerson // no evidence either way
	case !scheduled && !physical && online:
		return schedule.DeliveryOnline
	case !scheduled && physical && !online:
		return schedule.DeliveryInPerson // arranged hours in a room
	case !scheduled && physical && online:
		return schedule.DeliveryOnline // no fixed block; online governs
	case scheduled && !physical && !online:
		return schedule.DeliveryInPerson
	case scheduled && !physical && online:
		return schedule.DeliveryHybrid
	case scheduled && physical && !online:
		return schedule.DeliveryInPerson
	default: // scheduled && physical && online
		return schedule.DeliveryHybrid
	}
}
