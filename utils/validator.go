// utils/validator.go - Input validation
package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxHandlingNotesWords caps the acknowledgment notes recorded on an
// incident.
const MaxHandlingNotesWords = 100

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}

// CountWords counts whitespace-delimited tokens.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ValidateHandlingNotes enforces the acknowledgment notes contract:
// non-empty, at most MaxHandlingNotesWords words.
func ValidateHandlingNotes(notes string) error {
	trimmed := SanitizeInput(notes)
	if trimmed == "" {
		return errors.New("handling notes are required")
	}
	if words := CountWords(trimmed); words > MaxHandlingNotesWords {
		return fmt.Errorf("handling notes must not exceed %d words (got %d)", MaxHandlingNotesWords, words)
	}
	return nil
}

// Severity and status values arrive inconsistently cased from older
// clients; normalize once at the boundary.

var severities = map[string]bool{
	"low":      true,
	"medium":   true,
	"high":     true,
	"critical": true,
}

var incidentStatuses = map[string]bool{
	"reported":            true,
	"under_investigation": true,
	"resolved":            true,
	"dismissed":           true,
}

// NormalizeSeverity lowercases the input and reports whether it is one of
// the four canonical levels.
func NormalizeSeverity(s string) (string, bool) {
	canonical := strings.ToLower(SanitizeInput(s))
	return canonical, severities[canonical]
}

// NormalizeIncidentStatus lowercases the input and reports whether it is a
// known incident status.
func NormalizeIncidentStatus(s string) (string, bool) {
	canonical := strings.ToLower(SanitizeInput(s))
	return canonical, incidentStatuses[canonical]
}
