package schedule

import (
	"fmt"
	"strings"
	"time"
)

// TimeTBA is the sentinel minute value for meetings without a fixed clock time
// (arranged hours, online asynchronous, or a time the source left ambiguous).
const TimeTBA = -1

// Delivery identifies how a section is taught.
type Delivery string

const (
	DeliveryInPerson Delivery = "in-person"
	DeliveryHybrid   Delivery = "hybrid"
	DeliveryOnline   Delivery = "online"
)

// Meeting represents one weekly meeting block for a section. A lecture/lab
// pair is two Meetings. Days preserves the order the source listed them;
// equality of two Meetings ignores day order.
type Meeting struct {
	Days      []time.Weekday `json:"days"`
	StartMin  int            `json:"start_min"`
	EndMin    int            `json:"end_min"`
	Arranged  bool           `json:"arranged"`
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
}

// ArrangedMeeting returns the sentinel meeting used for sections with no
// fixed day/time schedule.
func ArrangedMeeting() Meeting {
	return Meeting{StartMin: TimeTBA, EndMin: TimeTBA, Arranged: true}
}

// Scheduled reports whether the meeting has a concrete day/time block.
func (m Meeting) Scheduled() bool {
	return !m.Arranged && len(m.Days) > 0 && m.StartMin != TimeTBA
}

// DayString renders the days in the source's letter encoding (R=Thursday,
// U=Sunday).
func (m Meeting) DayString() string {
	if m.Arranged {
		return "ARR"
	}
	var b strings.Builder
	for _, d := range m.Days {
		b.WriteByte(dayLetters[d])
	}
	return b.String()
}

var dayLetters = map[time.Weekday]byte{
	time.Monday:    'M',
	time.Tuesday:   'T',
	time.Wednesday: 'W',
	time.Thursday:  'R',
	time.Friday:    'F',
	time.Saturday:  'S',
	time.Sunday:    'U',
}

// ClockString renders a minutes-since-midnight value as "15:04", or "TBA"
// for the sentinel.
func ClockString(min int) string {
	if min == TimeTBA {
		return "TBA"
	}
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// String renders the meeting for table output, e.g. "TR 11:10-12:35".
func (m Meeting) String() string {
	if !m.Scheduled() {
		return "ARR"
	}
	return fmt.Sprintf("%s %s-%s", m.DayString(), ClockString(m.StartMin), ClockString(m.EndMin))
}

// Units is a credit value. Fixed-credit courses have Min == Max;
// variable-credit courses carry the advertised range.
type Units struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (u Units) String() string {
	if u.Min == u.Max {
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", u.Min), "0"), ".")
	}
	return fmt.Sprintf("%g-%g", u.Min, u.Max)
}

// Enrollment is the seat-count snapshot for one section. Nil values mean the
// source reported a non-numeric count ("N/A"), which is distinct from zero.
// Remaining is recorded exactly as published; the source's own arithmetic is
// sometimes inconsistent with Capacity-Actual (registration overrides) and is
// preserved, not recomputed.
type Enrollment struct {
	Capacity  *int `json:"capacity"`
	Actual    *int `json:"actual"`
	Remaining *int `json:"remaining"`
}

// Section is one course section as published in the schedule listing,
// identified by its CRN (course reference number) within a term.
type Section struct {
	CRN             string     `json:"crn"`
	Subject         string     `json:"subject"`
	CourseNumber    string     `json:"course_number"`
	Title           string     `json:"title"`
	Units           Units      `json:"units"`
	Status          string     `json:"status,omitempty"`
	SectionType     string     `json:"section_type,omitempty"`
	Instructors     []string   `json:"instructors"`
	InstructorEmail string     `json:"instructor_email,omitempty"`
	Meetings        []Meeting  `json:"meetings"`
	Location        string     `json:"location"`
	Enrollment      Enrollment `json:"enrollment"`
	ZeroTextbookCost bool      `json:"zero_textbook_cost"`
	Delivery        Delivery   `json:"delivery"`
	Weeks           int        `json:"weeks,omitempty"`
	StartDate       string     `json:"start_date,omitempty"`
	EndDate         string     `json:"end_date,omitempty"`
	BookLink        string     `json:"book_link,omitempty"`
}

// Course returns the "SUBJ 101" display form.
func (s *Section) Course() string {
	return s.Subject + " " + s.CourseNumber
}
