package diff

import (
	"strings"
	"testing"
)

func TestMismatch_EqualValues(t *testing.T) {
	if got := Mismatch("Login successful", "Login successful"); got != "" {
		t.Errorf("expected empty mismatch for equal values, got: %s", got)
	}
}

func TestMismatch_DifferentValues(t *testing.T) {
	got := Mismatch("Login successful", "Login failed")
	if got == "" {
		t.Fatal("expected non-empty mismatch for different values")
	}
	if !strings.Contains(got, "expected:") || !strings.Contains(got, "actual:") {
		t.Errorf("mismatch should label both sides, got: %s", got)
	}
	if !strings.Contains(got, "[-") || !strings.Contains(got, "[+") {
		t.Errorf("mismatch should mark deletions and insertions, got: %s", got)
	}
}

func TestMismatch_TruncatesLongValues(t *testing.T) {
	long := strings.Repeat("a", maxRenderedLen+100)
	got := Mismatch(long, "short")
	if !strings.Contains(got, "(truncated)") {
		t.Error("expected long values to be truncated")
	}
}
