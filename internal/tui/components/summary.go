package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates run counters for rendering summaries.
type SummaryData struct {
	Total     int
	Passed    int
	Failed    int
	Skipped   int
	Finished  bool
	Cancelled bool
	Error     string
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Cases: %d passed, %d failed, %d skipped of %d",
			s.data.Passed, s.data.Failed, s.data.Skipped, s.data.Total))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Run cancelled")
	case s.data.Finished && s.data.Failed > 0:
		lines = append(lines, "Run finished with failures")
	case s.data.Finished && s.data.Total > 0:
		lines = append(lines, "Run finished successfully")
	}

	if strings.TrimSpace(s.data.Error) != "" {
		lines = append(lines, fmt.Sprintf("Error: %s", s.data.Error))
	}

	return strings.Join(lines, "\n")
}
