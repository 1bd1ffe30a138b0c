// Package parser reconstructs course sections from the rows of a schedule
// listing table.
//
// Banner-style schedule pages interleave subject/course header rows, full
// section rows, and sparse continuation rows that carry extra meeting blocks
// (labs, second weekly patterns) for the section above them. The parser makes
// a single forward pass over the row sequence, classifying each row, carrying
// subject and section context across rows, and assembling one Section record
// per registration reference number. Malformed rows are skipped and reported
// as diagnostics; a parse never fails outright, because partially broken
// markup is the steady state for registration systems.
//
// The parser performs no I/O and no markup traversal: callers hand it an
// already-extracted []RawRow (see the collector package) together with a
// Layout describing the column order and marker patterns of the source.
package parser
