package parser

import (
	"regexp"
	"strings"
)

// Context is the row-to-row carryover state for one document parse. The
// source only states the subject and course once, in a header row, and
// implies them for every row that follows; Context holds the last-seen
// values until a new header replaces them. It is a value type owned by one
// Parse call, so concurrent parses of different documents cannot interfere.
type Context struct {
	SubjectCode  string
	SubjectName  string
	CourseNumber string
	CourseTitle  string
	// ActiveCRN identifies the section continuation rows attach to. Set by
	// every primary row, replaced by the next one.
	ActiveCRN string
}

var (
	// "ACCT - Accounting"
	subjectHeaderRe = regexp.MustCompile(`^(\w+)\s*-\s*(.*)$`)
	// "ACCT 101 - Financial Accounting"
	courseHeaderRe = regexp.MustCompile(`^(\w+)\s+(\w+)\s*-\s*(.*)$`)
)

// Update returns the context as it stands after the given row. It is a pure
// function of its inputs: header rows replace subject/course fields,
// primary rows replace the active CRN, continuation and ignorable rows
// change nothing.
func (c Context) Update(kind RowKind, row RawRow, layout Layout) Context {
	switch kind {
	case KindSubjectHeader:
		text := headerText(row)
		if layout.isSubjectHeader(row) {
			if m := subjectHeaderRe.FindStringSubmatch(text); m != nil {
				c.SubjectCode = m[1]
				c.SubjectName = strings.TrimSpace(m[2])
			}
			return c
		}
		if m := courseHeaderRe.FindStringSubmatch(text); m != nil {
			c.SubjectCode = m[1]
			c.CourseNumber = m[2]
			c.CourseTitle = strings.TrimSpace(m[3])
		}
		return c
	case KindPrimary:
		c.ActiveCRN = row.Text(layout.Cells[FieldCRN])
		return c
	default:
		// Continuation rows read context, never write it.
		return c
	}
}

func headerText(row RawRow) string {
	for i := range row.Cells {
		if t := row.Text(i); t != "" {
			return t
		}
	}
	return ""
}
