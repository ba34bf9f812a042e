package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/caseflow/caseflow/internal/model"
	"github.com/caseflow/caseflow/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("Caseflow • %s", m.title()))
	if m.paused {
		title = lipgloss.JoinHorizontal(lipgloss.Left, title, " ", pausedStyle.Render("[paused]"))
	} else if !m.finished {
		title = lipgloss.JoinHorizontal(lipgloss.Left, title, " ", m.spinner.View())
	}
	sections = append(sections, title)

	if m.counts.Total > 0 {
		bar := components.NewProgress(m.counts.Total).View(m.completedCases())
		sections = append(sections, sectionStyle.Render("Progress"), bar)
	}

	list := components.NewCaseList(m.order, m.cases)
	entries := list.Entries()
	if len(entries) > 0 {
		sections = append(sections, sectionStyle.Render("Cases"))
		sections = append(sections, renderCaseEntries(entries))
	}

	summary := components.NewSummary(components.SummaryData{
		Total:     m.counts.Total,
		Passed:    m.counts.Passed,
		Failed:    m.counts.Failed,
		Skipped:   m.counts.Skipped,
		Finished:  m.finished,
		Cancelled: m.cancelled,
		Error:     m.runError,
	}).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCaseEntries(entries []components.CaseEntry) string {
	var lines []string
	for _, entry := range entries {
		line := fmt.Sprintf(" %s %s", caseIcon(entry), entry.Label())
		if strings.TrimSpace(entry.Error) != "" {
			line = fmt.Sprintf("%s: %s", line, entry.Error)
		}
		if entry.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, entry.Duration.Truncate(10*time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) title() string {
	if strings.TrimSpace(m.suiteName) != "" {
		return m.suiteName
	}
	return "Run"
}

func caseIcon(entry components.CaseEntry) string {
	if entry.Running {
		return runningStyle.Render("⏳")
	}
	switch entry.Status {
	case model.TestPassed:
		return passedStyle.Render("✓")
	case model.TestFailed:
		return failedStyle.Render("✗")
	case model.TestSkipped:
		return skippedStyle.Render("⊘")
	default:
		return pendingStyle.Render("…")
	}
}
