// Package redact masks personal data (names, birth dates, contact details)
// and other sensitive fragments before they are logged or returned in error
// responses. A numerology request consists almost entirely of personal data,
// so nothing from a request body is logged without passing through here.
package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder    = "[REDACTED]"
	RedactedDatePlaceholder = "[REDACTED_DATE]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

// Precompiled regex patterns, applied in order
var (
	// Dates in every spelling the API accepts
	isoDateRegex    = regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`)
	dmyDateRegex    = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-]\d{4}\b`)
	packedDateRegex = regexp.MustCompile(`\b\d{8}\b`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{isoDateRegex, RedactedDatePlaceholder},
		{dmyDateRegex, RedactedDatePlaceholder},
		{packedDateRegex, RedactedDatePlaceholder},
		{emailRegex, "[REDACTED_EMAIL]"},
		{stackTraceRegex, "[STACK_TRACE_REDACTED]"},
		{unixPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Name keeps the first letter of every word of a personal name and masks the
// rest: "Anna Lee" becomes "A*** L***". Word lengths are not preserved.
func Name(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	masked := make([]string, 0, len(words))
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		masked = append(masked, string(r)+"***")
	}
	return strings.Join(masked, " ")
}

// BirthDate keeps only the year of a birth date string, which is enough to
// correlate log lines without identifying a person. Anything that does not
// look like a date is fully redacted.
func BirthDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := isoDateRegex.FindString(s); m == s {
		return s[:4] + "-**-**"
	}
	if m := dmyDateRegex.FindString(s); m == s {
		return "**.**." + s[len(s)-4:]
	}
	return RedactedDatePlaceholder
}
