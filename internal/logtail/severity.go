package logtail

import "strings"

// Severity classifies a client log line for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// Classify guesses the severity of a line written by the standard logger.
func Classify(line string) Severity {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "superseded"), strings.Contains(lower, "warn"):
		return SeverityWarn
	case strings.Contains(lower, "failed"), strings.Contains(lower, "error"):
		return SeverityError
	default:
		return SeverityInfo
	}
}
