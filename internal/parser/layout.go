package parser

import "regexp"

// Field names a semantic column of the schedule table.
type Field int

const (
	FieldStatus Field = iota
	FieldSectionType
	FieldCRN
	FieldBook
	FieldZTC
	FieldUnits
	FieldLocation
	FieldCapacity
	FieldActual
	FieldRemaining
	FieldInstructor
	FieldEmail
	FieldDates
	FieldWeeks
)

// Layout maps the source's column order and marker conventions onto
// semantic fields. It is supplied by the caller so a column reshuffle in
// the source is a configuration change, not a code change.
type Layout struct {
	// Cells maps each semantic field to its expanded column index.
	Cells map[Field]int
	// MeetingStart/MeetingEnd bound the half-open span of columns holding
	// the meeting day/time block.
	MeetingStart int
	MeetingEnd   int
	// MinPopulated is the least number of populated cells a data row needs
	// before it is worth interpreting; shorter rows are structural errors.
	MinPopulated int

	// SubjectHeaderClass and CourseHeaderClass match the CSS classes the
	// source puts on its two header-row flavors.
	SubjectHeaderClass *regexp.Regexp
	CourseHeaderClass  *regexp.Regexp
	// OnlineLocation matches location text meaning "taught online".
	OnlineLocation *regexp.Regexp
	// RoomLocation matches location text naming a physical room.
	RoomLocation *regexp.Regexp
	// ZTCMarker matches the marker image identifying zero-textbook-cost
	// sections.
	ZTCMarker *regexp.Regexp

	// AssumePMBelowHour resolves bare 12-hour clock values with no am/pm
	// marker: hours in [1, AssumePMBelowHour) are taken as PM, the rest as
	// AM. Zero disables guessing and such times normalize to TBA.
	AssumePMBelowHour int
}

// IsHeader reports whether the row carries either header marker.
func (l Layout) IsHeader(row RawRow) bool {
	if row.HeaderClass == "" {
		return false
	}
	if l.SubjectHeaderClass != nil && l.SubjectHeaderClass.MatchString(row.HeaderClass) {
		return true
	}
	return l.CourseHeaderClass != nil && l.CourseHeaderClass.MatchString(row.HeaderClass)
}

// isSubjectHeader distinguishes the subject flavor from the course flavor.
func (l Layout) isSubjectHeader(row RawRow) bool {
	return l.SubjectHeaderClass != nil && l.SubjectHeaderClass.MatchString(row.HeaderClass)
}

// DefaultLayout returns the layout of the Rio Hondo Banner 8 schedule
// listing: status, type, CRN, bookstore link, ZTC marker, units, an
// eight-column meeting block, then location, enrollment counts, instructor,
// email, session dates, and week count.
func DefaultLayout() Layout {
	return Layout{
		Cells: map[Field]int{
			FieldStatus:      0,
			FieldSectionType: 1,
			FieldCRN:         2,
			FieldBook:        3,
			FieldZTC:         4,
			FieldUnits:       5,
			FieldLocation:    14,
			FieldCapacity:    15,
			FieldActual:      16,
			FieldRemaining:   17,
			FieldInstructor:  18,
			FieldEmail:       19,
			FieldDates:       20,
			FieldWeeks:       21,
		},
		MeetingStart: 6,
		MeetingEnd:   14,
		MinPopulated: 3,

		SubjectHeaderClass: regexp.MustCompile(`subject_header`),
		CourseHeaderClass:  regexp.MustCompile(`crn_header`),
		OnlineLocation:     regexp.MustCompile(`(?i)online`),
		RoomLocation:       regexp.MustCompile(`\b[A-Z]{1,4}\s?-?\d{1,4}\b`),
		ZTCMarker:          regexp.MustCompile(`ZeroCostTextbook`),
	}
}
