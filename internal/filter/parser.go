package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

var dayByLetter = map[byte]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

// ParseDays parses a day-letter token like "MWF" or "TR" into weekdays.
// The letters follow the schedule listing's encoding: T is Tuesday, R is
// Thursday, S Saturday, U Sunday.
func ParseDays(input string) ([]time.Weekday, error) {
	input = strings.TrimSpace(strings.ToUpper(input))
	if input == "" {
		return nil, fmt.Errorf("day token cannot be empty")
	}
	days := make([]time.Weekday, 0, len(input))
	for i := 0; i < len(input); i++ {
		d, ok := dayByLetter[input[i]]
		if !ok {
			return nil, fmt.Errorf("invalid day letter %q (use M T W R F S U)", string(input[i]))
		}
		days = append(days, d)
	}
	return days, nil
}

var clockInputRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)

// ParseTime parses a time-of-day filter bound into minutes since midnight.
//
// Supported forms:
//   - "5pm", "9am" - hour with meridiem
//   - "5:30pm", "10:15am" - hour and minute with meridiem
//   - "17:00", "17" - 24-hour clock
func ParseTime(input string) (int, error) {
	m := clockInputRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return 0, fmt.Errorf("invalid time %q (use forms like 5pm, 5:30pm, or 17:00)", input)
	}

	h, err := strconv.Atoi(m[1])
	if err != nil || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", input)
	}
	min := 0
	if m[2] != "" {
		min, err = strconv.Atoi(m[2])
		if err != nil || min > 59 {
			return 0, fmt.Errorf("invalid minute in %q", input)
		}
	}

	switch strings.ToLower(m[3]) {
	case "am":
		if h > 12 {
			return 0, fmt.Errorf("invalid hour in %q", input)
		}
		if h == 12 {
			h = 0
		}
	case "pm":
		if h > 12 {
			return 0, fmt.Errorf("invalid hour in %q", input)
		}
		if h != 12 {
			h += 12
		}
	}
	return h*60 + min, nil
}

// ParseDeliveries parses a comma-separated delivery-mode list like
// "online,hybrid".
func ParseDeliveries(input string) ([]schedule.Delivery, error) {
	var out []schedule.Delivery
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		switch schedule.Delivery(part) {
		case schedule.DeliveryInPerson, schedule.DeliveryHybrid, schedule.DeliveryOnline:
			out = append(out, schedule.Delivery(part))
		default:
			return nil, fmt.Errorf("invalid delivery mode %q (use in-person, hybrid, or online)", part)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("delivery list cannot be empty")
	}
	return out, nil
}
