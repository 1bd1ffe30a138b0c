package schedule

import (
	"fmt"
	"sort"
)

// SectionChange records one field-level difference between two collections
// of the same section, identified by CRN.
type SectionChange struct {
	CRN        string `json:"crn"`
	Course     string `json:"course"`
	ChangeType string `json:"change_type"` // "status", "enrollment", "instructor", "meetings", "title"
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
}

// DiffReport is the outcome of comparing two snapshots of the same term.
type DiffReport struct {
	Added   []Section       `json:"added"`
	Removed []Section       `json:"removed"`
	Changes []SectionChange `json:"changes"`
}

// Empty reports whether the two snapshots were identical in every compared
// aspect.
func (r *DiffReport) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changes) == 0
}

// Diff compares two snapshots section by section. Sections are matched by
// CRN; a CRN present only in the newer snapshot is an addition, one present
// only in the older is a removal, and matched pairs are compared field by
// field. Output ordering is deterministic: sorted by CRN throughout.
func Diff(previous, current *Snapshot) *DiffReport {
	report := &DiffReport{}

	prevByCRN := make(map[string]*Section, len(previous.Sections))
	for i := range previous.Sections {
		prevByCRN[previous.Sections[i].CRN] = &previous.Sections[i]
	}
	currByCRN := make(map[string]*Section, len(current.Sections))
	for i := range current.Sections {
		currByCRN[current.Sections[i].CRN] = &current.Sections[i]
	}

	for i := range current.Sections {
		sec := &current.Sections[i]
		prev, ok := prevByCRN[sec.CRN]
		if !ok {
			report.Added = append(report.Added, *sec)
			continue
		}
		report.Changes = append(report.Changes, compareSections(prev, sec)...)
	}
	for i := range previous.Sections {
		sec := &previous.Sections[i]
		if _, ok := currByCRN[sec.CRN]; !ok {
			report.Removed = append(report.Removed, *sec)
		}
	}

	sort.Slice(report.Added, func(i, j int) bool { return report.Added[i].CRN < report.Added[j].CRN })
	sort.Slice(report.Removed, func(i, j int) bool { return report.Removed[i].CRN < report.Removed[j].CRN })
	sort.Slice(report.Changes, func(i, j int) bool {
		if report.Changes[i].CRN != report.Changes[j].CRN {
			return report.Changes[i].CRN < report.Changes[j].CRN
		}
		return report.Changes[i].ChangeType < report.Changes[j].ChangeType
	})
	return report
}

func compareSections(prev, curr *Section) []SectionChange {
	var changes []SectionChange
	add := func(changeType, oldV, newV string) {
		if oldV == newV {
			return
		}
		changes = append(changes, SectionChange{
			CRN:        curr.CRN,
			Course:     curr.Course(),
			ChangeType: changeType,
			OldValue:   oldV,
			NewValue:   newV,
		})
	}

	add("status", prev.Status, curr.Status)
	add("title", prev.Title, curr.Title)
	add("instructor", joinNames(prev.Instructors), joinNames(curr.Instructors))
	add("meetings", meetingsLabel(prev.Meetings), meetingsLabel(curr.Meetings))
	add("enrollment", enrollmentLabel(prev.Enrollment), enrollmentLabel(curr.Enrollment))
	return changes
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "; "
		}
		out += n
	}
	return out
}

func meetingsLabel(meetings []Meeting) string {
	out := ""
	for i, m := range meetings {
		if i > 0 {
			out += ", "
		}
		out += m.String()
	}
	return out
}

func enrollmentLabel(e Enrollment) string {
	return fmt.Sprintf("%s/%s (%s remaining)", countLabel(e.Actual), countLabel(e.Capacity), countLabel(e.Remaining))
}

func countLabel(n *int) string {
	if n == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *n)
}
