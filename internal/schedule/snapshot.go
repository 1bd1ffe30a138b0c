package schedule

import (
	"sort"
	"time"
)

// Snapshot is the complete result of one collection run for one term.
type Snapshot struct {
	CollegeID   string    `json:"college_id"`
	Term        string    `json:"term"`
	TermCode    string    `json:"term_code"`
	CollectedAt time.Time `json:"collection_timestamp"`
	SourceURL   string    `json:"source_url"`
	Sections    []Section `json:"courses"`
	// Derived at build time, stored for consumers that read the JSON
	// without loading the whole section list.
	TotalSections int      `json:"total_courses"`
	Departments   []string `json:"departments"`
}

// NewSnapshot builds a snapshot from parsed sections, filling the derived
// totals and the sorted unique department list.
func NewSnapshot(collegeID, term, termCode, sourceURL string, collectedAt time.Time, sections []Section) *Snapshot {
	return &Snapshot{
		CollegeID:     collegeID,
		Term:          term,
		TermCode:      termCode,
		CollectedAt:   collectedAt,
		SourceURL:     sourceURL,
		Sections:      sections,
		TotalSections: len(sections),
		Departments:   departments(sections),
	}
}

func departments(sections []Section) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range sections {
		if subj := sections[i].Subject; !seen[subj] {
			seen[subj] = true
			out = append(out, subj)
		}
	}
	sort.Strings(out)
	return out
}

// FindCRN returns the section with the given CRN, or nil.
func (s *Snapshot) FindCRN(crn string) *Section {
	for i := range s.Sections {
		if s.Sections[i].CRN == crn {
			return &s.Sections[i]
		}
	}
	return nil
}
