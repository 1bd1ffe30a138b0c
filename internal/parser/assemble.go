package parser

import (
	"fmt"

	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
)

// Result is the outcome of one document parse: every section that could be
// recovered, plus a diagnostic per skipped or degraded row. A parse never
// fails; a badly mangled document simply yields fewer sections and more
// diagnostics.
type Result struct {
	Sections    []schedule.Section
	Diagnostics []Diagnostic
}

// Parse makes one forward pass over the row sequence and assembles section
// records. A section opens at a primary row and closes at the next primary
// row or the end of the stream; continuation rows in between contribute
// extra meeting blocks. Context (subject, course, active CRN) flows strictly
// forward, so the input order must be the document order.
//
// Parse is pure: it owns its context for the duration of the call and holds
// nothing afterwards, so concurrent calls on different documents need no
// synchronization.
func Parse(rows []RawRow, layout Layout) *Result {
	res := &Result{}
	var ctx Context
	var current *schedule.Section

	flush := func() {
		if current == nil {
			return
		}
		if len(current.Meetings) == 0 {
			// Every section carries at least one pattern, arranged when
			// the source supplied none.
			current.Meetings = append(current.Meetings, schedule.ArrangedMeeting())
		}
		current.Delivery = InferDelivery(current.Meetings, current.Location, layout)
		res.Sections = append(res.Sections, *current)
		current = nil
	}

	for i, row := range rows {
		kind, underflow := Classify(row, ctx, layout)
		if underflow {
			res.diag(i, DiagContextUnderflow, "continuation row with no active section")
			continue
		}
		ctx = ctx.Update(kind, row, layout)

		switch kind {
		case KindIgnorable, KindSubjectHeader:
			// Headers already updated the context; neither kind touches
			// the record in progress.

		case KindPrimary:
			// A primary row closes the record in progress whether or not
			// the new row itself turns out usable.
			flush()
			fields, err := Extract(row, layout)
			if err != nil {
				res.diag(i, DiagStructural, err.Error())
				continue
			}
			sec, ok := newSection(fields, ctx, layout, i, res)
			if !ok {
				continue
			}
			current = sec

		case KindContinuation:
			if current == nil {
				// The primary row this would attach to was dropped.
				res.diag(i, DiagContextUnderflow, "continuation row after a dropped section row")
				continue
			}
			fields, err := Extract(row, layout)
			if err != nil {
				res.diag(i, DiagStructural, err.Error())
				continue
			}
			meetings, ambiguous := NormalizeMeetings(fields, layout)
			if ambiguous {
				res.diag(i, DiagAmbiguousField, "meeting time without am/pm marker normalized to TBA")
			}
			stampDates(meetings, fields.Dates)
			current.Meetings = append(current.Meetings, meetings...)
		}
	}
	flush()
	return res
}

// newSection builds a section from a primary row's fields plus the carried
// context. Rows that cannot establish a subject and course number are
// dropped rather than fabricated.
func newSection(f RawFields, ctx Context, layout Layout, rowIdx int, res *Result) (*schedule.Section, bool) {
	subject := ctx.SubjectCode
	number := ctx.CourseNumber
	if subject == "" || number == "" {
		res.diag(rowIdx, DiagStructural, fmt.Sprintf("section %s has no subject/course context", f.CRN))
		return nil, false
	}

	meetings, ambiguous := NormalizeMeetings(f, layout)
	if ambiguous {
		res.diag(rowIdx, DiagAmbiguousField, "meeting time without am/pm marker normalized to TBA")
	}
	start, end := ParseDateRange(f.Dates)
	stampDates(meetings, f.Dates)

	weeks := 0
	if w := ParseCount(f.Weeks); w != nil {
		weeks = *w
	}

	return &schedule.Section{
		CRN:              f.CRN,
		Subject:          subject,
		CourseNumber:     number,
		Title:            ctx.CourseTitle,
		Units:            ParseUnits(f.Units),
		Status:           f.Status,
		SectionType:      f.SectionType,
		Instructors:      ParseInstructors(f.Instructor),
		InstructorEmail:  f.Email,
		Meetings:         meetings,
		Location:         f.Location,
		Enrollment:       ParseEnrollment(f),
		ZeroTextbookCost: ZeroTextbookCost(f, layout),
		Weeks:            weeks,
		StartDate:        start,
		EndDate:          end,
		BookLink:         f.BookLink,
	}, true
}

// stampDates applies a row's sub-session date range to the meetings that
// row produced.
func stampDates(meetings []schedule.Meeting, dates string) {
	start, end := ParseDateRange(dates)
	if start == "" {
		return
	}
	for i := range meetings {
		meetings[i].StartDate = start
		meetings[i].EndDate = end
	}
}

func (r *Result) diag(row int, kind DiagKind, msg string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Row: row, Kind: kind, Message: msg})
}
