package components

import (
	"time"

	"github.com/caseflow/caseflow/internal/model"
)

// CaseEntry represents a single test case for rendering.
type CaseEntry struct {
	ID       string
	Name     string
	Status   model.TestStatus
	Running  bool
	Duration time.Duration
	Error    string
}

// Label returns the display name for the entry.
func (e CaseEntry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID
}

// CaseList renders a list of cases with their current status.
type CaseList struct {
	entries []CaseEntry
}

// NewCaseList constructs a case list component in first-seen order.
func NewCaseList(order []string, cases map[string]CaseEntry) CaseList {
	entries := make([]CaseEntry, 0, len(order))
	for _, id := range order {
		entries = append(entries, cases[id])
	}
	return CaseList{entries: entries}
}

// Entries returns the ordered case entries.
func (l CaseList) Entries() []CaseEntry {
	clone := make([]CaseEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}
