package checker

import (
	"fmt"

	"github.com/oaslint/oaslint/internal/severity"
)

// Severity indicates the severity level of a violation
type Severity = severity.Severity

const (
	// SeverityError indicates a structural ruleset violation
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a violation that should be addressed but
	// does not break consumers of the document set
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational findings
	SeverityInfo = severity.SeverityInfo
)

// Violation is a single reported deviation from the ruleset. Violations are
// immutable once emitted and always reference a node that exists in the
// checked graph (or, for ORPHAN_FILE, a file present in the inventory).
type Violation struct {
	// RuleID identifies the rule that fired (e.g. "MISLOCATED_SCHEMA")
	RuleID string `json:"rule_id" yaml:"rule_id"`
	// File is the source file path relative to the document set base directory
	File string `json:"file" yaml:"file"`
	// Pointer is the RFC 6901 JSON pointer within File ("" for whole-file findings)
	Pointer string `json:"pointer,omitempty" yaml:"pointer,omitempty"`
	// Message is a human-readable description of the violation
	Message string `json:"message" yaml:"message"`
	// Severity is the severity level of the violation
	Severity Severity `json:"severity" yaml:"severity"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// String returns the canonical single-line form:
// "<file>:<pointer> [<rule_id>] <message>".
func (v Violation) String() string {
	if v.Pointer == "" {
		return fmt.Sprintf("%s [%s] %s", v.File, v.RuleID, v.Message)
	}
	return fmt.Sprintf("%s:%s [%s] %s", v.File, v.Pointer, v.RuleID, v.Message)
}

// Location returns the source location in IDE-friendly "file:line:column"
// format, falling back to the file path when the position is unknown.
func (v Violation) Location() string {
	if v.Line > 0 {
		return fmt.Sprintf("%s:%d:%d", v.File, v.Line, v.Column)
	}
	return v.File
}
