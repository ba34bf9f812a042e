package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxRenderedLen = 2000

// Mismatch renders a compact expected-vs-actual comparison for a failed
// verification. Returns empty string when the values are equal.
func Mismatch(expected, actual string) string {
	if expected == actual {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "expected: %q\nactual:   %q", truncate(expected), truncate(actual))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if marked := markup(diffs); marked != "" {
		b.WriteString("\ndiff:     ")
		b.WriteString(marked)
	}
	return b.String()
}

func markup(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s]", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "[+%s]", d.Text)
		default:
			b.WriteString(d.Text)
		}
	}
	return truncate(b.String())
}

func truncate(s string) string {
	if len(s) <= maxRenderedLen {
		return s
	}
	return s[:maxRenderedLen] + "... (truncated)"
}
