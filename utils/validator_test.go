package utils

import (
	"strings"
	"testing"
)

func TestValidateHandlingNotes(t *testing.T) {
	if err := ValidateHandlingNotes(""); err == nil {
		t.Error("expected error for empty notes")
	}
	if err := ValidateHandlingNotes("   \t  "); err == nil {
		t.Error("expected error for whitespace-only notes")
	}

	exactly100 := strings.TrimSpace(strings.Repeat("word ", 100))
	if err := ValidateHandlingNotes(exactly100); err != nil {
		t.Errorf("expected 100 words to pass, got %v", err)
	}

	over := strings.TrimSpace(strings.Repeat("word ", 101))
	if err := ValidateHandlingNotes(over); err == nil {
		t.Error("expected error for 101 words")
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced\tout \n words  ", 3},
	}
	for _, c := range cases {
		if got := CountWords(c.in); got != c.want {
			t.Errorf("CountWords(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeSeverity(t *testing.T) {
	for _, raw := range []string{"low", "LOW", " Low "} {
		got, ok := NormalizeSeverity(raw)
		if !ok || got != "low" {
			t.Errorf("NormalizeSeverity(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := NormalizeSeverity("catastrophic"); ok {
		t.Error("expected catastrophic to be rejected")
	}
	if _, ok := NormalizeSeverity(""); ok {
		t.Error("expected empty severity to be rejected")
	}
}

func TestNormalizeIncidentStatus(t *testing.T) {
	got, ok := NormalizeIncidentStatus("Under_Investigation")
	if !ok || got != "under_investigation" {
		t.Errorf("got %q, %v", got, ok)
	}
	if _, ok := NormalizeIncidentStatus("open"); ok {
		t.Error("expected unknown status to be rejected")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeInput = %q", got)
	}
}
