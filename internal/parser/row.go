package parser

import "strings"

// Cell is one table cell as extracted from the source markup. Href and
// ImgSrc carry the attributes the normalizer needs (bookstore links,
// mailto: addresses, the zero-textbook-cost marker image); both are empty
// for plain text cells.
type Cell struct {
	Text   string
	Href   string
	ImgSrc string
}

// RawRow is one table row. Cells are positioned by expanded column index:
// the extractor pads colspan cells so that every row addresses the same
// positional layout. Wide is set when the row contained a spanning cell,
// HeaderClass carries the CSS class that marks header rows.
type RawRow struct {
	Cells       []Cell
	Wide        bool
	HeaderClass string
}

// Text returns the trimmed text of the cell at index i, or "" when the row
// is shorter than that.
func (r RawRow) Text(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[i].Text)
}

// Populated counts cells with non-empty trimmed text.
func (r RawRow) Populated() int {
	n := 0
	for i := range r.Cells {
		if r.Text(i) != "" {
			n++
		}
	}
	return n
}

// RowKind tags a classified row. The four kinds are exhaustive: every row
// handler switches over all of them.
type RowKind int

const (
	// KindIgnorable is a spacer/formatting row with nothing to interpret.
	KindIgnorable RowKind = iota
	// KindSubjectHeader is a spanning header row introducing a subject
	// ("ACCT - Accounting") or a course ("ACCT 101 - Financial Accounting").
	KindSubjectHeader
	// KindPrimary starts a new section and carries its identifying fields.
	KindPrimary
	// KindContinuation adds a meeting block to the section above it.
	KindContinuation
)

func (k RowKind) String() string {
	switch k {
	case KindSubjectHeader:
		return "subject-header"
	case KindPrimary:
		return "primary-section"
	case KindContinuation:
		return "continuation"
	default:
		return "ignorable"
	}
}

// Classify tags a row. Header detection rests on the structural header
// marker alone, never on text content. A row whose section-identifier cell
// is blank is a continuation of the active section; when no section is
// active the row cannot be attached anywhere and underflow is reported so
// the caller can record a diagnostic.
func Classify(row RawRow, ctx Context, layout Layout) (kind RowKind, underflow bool) {
	if layout.IsHeader(row) {
		return KindSubjectHeader, false
	}
	if row.Populated() == 0 {
		return KindIgnorable, false
	}
	if row.Text(layout.Cells[FieldCRN]) == "" {
		if ctx.ActiveCRN == "" {
			return KindIgnorable, true
		}
		return KindContinuation, false
	}
	return KindPrimary, false
}
