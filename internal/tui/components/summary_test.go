package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryViewCounts(t *testing.T) {
	out := NewSummary(SummaryData{Total: 4, Passed: 2, Failed: 1, Skipped: 1, Finished: true}).View()
	require.Contains(t, out, "2 passed, 1 failed, 1 skipped of 4")
	require.Contains(t, out, "Run finished with failures")
}

func TestSummaryViewSuccess(t *testing.T) {
	out := NewSummary(SummaryData{Total: 2, Passed: 2, Finished: true}).View()
	require.Contains(t, out, "Run finished successfully")
}

func TestSummaryViewCancelled(t *testing.T) {
	out := NewSummary(SummaryData{Total: 2, Skipped: 2, Finished: true, Cancelled: true}).View()
	require.Contains(t, out, "Run cancelled")
}

func TestSummaryViewError(t *testing.T) {
	out := NewSummary(SummaryData{Total: 1, Finished: true, Error: "mode not supported"}).View()
	require.Contains(t, out, "Error: mode not supported")
}

func TestSummaryViewEmpty(t *testing.T) {
	require.Empty(t, NewSummary(SummaryData{}).View())
}
