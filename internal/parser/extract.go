package parser

import "fmt"

// RawFields holds the untyped text of every semantic field pulled from one
// row. Cells that were absent or blank come through as empty strings; the
// normalizer decides what emptiness means per field.
type RawFields struct {
	Status      string
	SectionType string
	CRN         string
	Units       string
	Location    string
	Capacity    string
	Actual      string
	Remaining   string
	Instructor  string
	Email       string
	Dates       string
	Weeks       string

	// MeetingCells is the raw meeting block, one entry per layout column.
	MeetingCells []string
	// Wide marks rows whose meeting block was collapsed into one spanning
	// cell (arranged-hours and online sections).
	Wide bool

	BookLink  string
	ZTCImgSrc string
}

// StructuralError reports a row too sparse to interpret; the row is
// skipped, never partially parsed.
type StructuralError struct {
	Populated int
	Min       int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("row has %d populated cells, need at least %d", e.Populated, e.Min)
}

// Extract pulls the raw field texts from a classified data row using the
// layout's positional map. Cells beyond the row's length read as empty; the
// only failure is a row with too few populated cells to be worth keeping.
func Extract(row RawRow, layout Layout) (RawFields, error) {
	if n := row.Populated(); n < layout.MinPopulated {
		return RawFields{}, &StructuralError{Populated: n, Min: layout.MinPopulated}
	}

	f := RawFields{
		Status:      row.Text(layout.Cells[FieldStatus]),
		SectionType: row.Text(layout.Cells[FieldSectionType]),
		CRN:         row.Text(layout.Cells[FieldCRN]),
		Units:       row.Text(layout.Cells[FieldUnits]),
		Location:    row.Text(layout.Cells[FieldLocation]),
		Capacity:    row.Text(layout.Cells[FieldCapacity]),
		Actual:      row.Text(layout.Cells[FieldActual]),
		Remaining:   row.Text(layout.Cells[FieldRemaining]),
		Instructor:  row.Text(layout.Cells[FieldInstructor]),
		Dates:       row.Text(layout.Cells[FieldDates]),
		Weeks:       row.Text(layout.Cells[FieldWeeks]),
		Wide:        row.Wide,
	}

	for i := layout.MeetingStart; i < layout.MeetingEnd; i++ {
		f.MeetingCells = append(f.MeetingCells, row.Text(i))
	}

	if i, ok := layout.Cells[FieldBook]; ok && i < len(row.Cells) {
		f.BookLink = row.Cells[i].Href
	}
	if i, ok := layout.Cells[FieldZTC]; ok && i < len(row.Cells) {
		f.ZTCImgSrc = row.Cells[i].ImgSrc
	}
	if i, ok := layout.Cells[FieldEmail]; ok && i < len(row.Cells) {
		f.Email = stripMailto(row.Cells[i].Href)
	}
	return f, nil
}

func stripMailto(href string) string {
	const prefix = "mailto:"
	if len(href) > len(prefix) && href[:len(prefix)] == prefix {
		return href[len(prefix):]
	}
	return ""
}
