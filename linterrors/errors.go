// Package linterrors provides structured error types for oaslint.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a fatal load failure (the
// document set could not be resolved) from configuration mistakes.
//
// # Error Categories
//
//   - LoadError: YAML/JSON parsing failures and unreadable files
//   - ReferenceError: $ref resolution failures, circular reference chains,
//     path traversal, unsupported remote references
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	graph, err := loader.New().Load("openapi.yaml")
//	if err != nil {
//	    if errors.Is(err, linterrors.ErrLoad) {
//	        // The document set is unresolvable; no checks were run.
//	    }
//	}
package linterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrLoad indicates the document set could not be loaded or parsed.
	ErrLoad = errors.New("load error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref chain was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrPathTraversal indicates a $ref escaping the base directory was blocked.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a fatal failure to load a document set.
// This includes unreadable files, YAML/JSON deserialization errors, and
// unresolvable $ref edges surfaced during graph construction.
type LoadError struct {
	// File is the file path where loading failed
	File string
	// Pointer is the JSON pointer to the offending node ("" if unknown)
	Pointer string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the load failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.File != "" {
		msg += " in " + e.File
	}
	if e.Pointer != "" {
		msg += " at " + e.Pointer
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// ReferenceError represents a failure to resolve a $ref.
// This includes missing targets, circular chains, path traversal attempts,
// and unsupported remote references.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// File is the file containing the $ref
	File string
	// Pointer is the JSON pointer to the node carrying the $ref
	Pointer string
	// IsCircular is true if this error is due to a circular reference chain
	IsCircular bool
	// IsPathTraversal is true if this error is due to a path traversal attempt
	IsPathTraversal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsPathTraversal {
		msg = "path traversal detected"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.File != "" {
		msg += " (in " + e.File
		if e.Pointer != "" {
			msg += " at " + e.Pointer
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference and ErrLoad (an unresolvable reference makes the
// whole graph unresolvable), and also ErrCircularReference or
// ErrPathTraversal when the corresponding flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference || target == ErrLoad {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrPathTraversal && e.IsPathTraversal {
		return true
	}
	return false
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
