// Package severity provides severity level constants and utilities for
// ruleset violations reported by the checker and rendered by the report
// package.
//
// The severity levels are ordered from most to least severe:
// Error < Warning < Info (by enum value).
package severity

import "fmt"

// Severity indicates the severity level of a ruleset violation.
type Severity int

const (
	// SeverityError indicates a structural ruleset violation that breaks
	// the modular layout contract.
	SeverityError Severity = iota

	// SeverityWarning indicates a violation that does not break consumers
	// of the document set but should be addressed (e.g. an orphan file).
	SeverityWarning

	// SeverityInfo indicates informational findings.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so severities render as
// their string form in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}
	return nil
}
