package checker

import (
	"fmt"

	"github.com/oaslint/oaslint/loader"
)

// Rule IDs for the modular ruleset.
const (
	// RuleMislocatedSchema fires for inline schemas outside components/schemas.
	RuleMislocatedSchema = "MISLOCATED_SCHEMA"
	// RuleInlineInEntrypoint fires for inline definitions in the entry document.
	RuleInlineInEntrypoint = "INLINE_IN_ENTRYPOINT"
	// RuleOrphanFile fires for files never reached from the entry document.
	RuleOrphanFile = "ORPHAN_FILE"
	// RuleInvalidRequestBodyShape fires for malformed request-body components.
	RuleInvalidRequestBodyShape = "INVALID_REQUEST_BODY_SHAPE"
	// RuleNamingViolation fires for file and component naming convention breaches.
	RuleNamingViolation = "NAMING_VIOLATION"
	// RuleIncompleteOperation fires for operations missing required documentation fields.
	RuleIncompleteOperation = "INCOMPLETE_OPERATION"
	// RuleNonReusableError fires for inline 4xx/5xx responses bypassing the shared error responses.
	RuleNonReusableError = "NON_REUSABLE_ERROR"
)

// RuleSpec is one conformance rule: an identifier, a severity, and a
// predicate run against the document graph. RuleSpec values are static;
// build the active set once (DefaultRules) and pass it into the checker
// explicitly rather than registering rules globally.
type RuleSpec struct {
	// ID is the stable rule identifier reported in violations
	ID string `json:"id" yaml:"id"`
	// Severity is the severity assigned to violations of this rule
	Severity Severity `json:"severity" yaml:"severity"`
	// Description is a one-line summary of what the rule enforces
	Description string `json:"description" yaml:"description"`

	check func(*ruleContext, *RuleSpec)
}

// DefaultRules returns the full modular ruleset. The returned slice is a
// fresh copy; callers may reorder or filter it without affecting other
// checkers.
func DefaultRules() []RuleSpec {
	return []RuleSpec{
		{
			ID:          RuleInlineInEntrypoint,
			Severity:    SeverityError,
			Description: "entry document paths and components values must be exclusively $ref entries",
			check:       checkEntryPurity,
		},
		{
			ID:          RuleMislocatedSchema,
			Severity:    SeverityError,
			Description: "schemas may only be defined under components/schemas, never inline in paths, request-bodies, or responses files",
			check:       checkMislocatedSchemas,
		},
		{
			ID:          RuleInvalidRequestBodyShape,
			Severity:    SeverityError,
			Description: "request-body components may only contain required and content, and every media type must $ref its schema",
			check:       checkRequestBodyShape,
		},
		{
			ID:          RuleNamingViolation,
			Severity:    SeverityError,
			Description: "component file names must be kebab-case and component keys PascalCase with their role suffix",
			check:       checkNaming,
		},
		{
			ID:          RuleIncompleteOperation,
			Severity:    SeverityError,
			Description: "every operation must carry non-empty tags, summary, description, and responses",
			check:       checkIncompleteOperations,
		},
		{
			ID:          RuleNonReusableError,
			Severity:    SeverityError,
			Description: "4xx/5xx responses must reference the shared error responses instead of defining them inline",
			check:       checkErrorResponseReuse,
		},
		{
			ID:          RuleOrphanFile,
			Severity:    SeverityWarning,
			Description: "every file under paths/ and components/ must be reachable from the entry document via $ref",
			check:       checkOrphanFiles,
		},
	}
}

// ruleContext carries the state of one check pass. Rules append violations
// and never abort the pass.
type ruleContext struct {
	graph      *loader.Graph
	inventory  []string
	violations []Violation
}

// reportNode records a violation at a graph node, carrying the node's
// source provenance into the violation.
func (ctx *ruleContext) reportNode(rule *RuleSpec, n *loader.Node, format string, args ...any) {
	ctx.violations = append(ctx.violations, Violation{
		RuleID:   rule.ID,
		File:     n.File,
		Pointer:  n.Pointer,
		Message:  fmt.Sprintf(format, args...),
		Severity: rule.Severity,
		Line:     n.Line,
		Column:   n.Column,
	})
}

// reportFile records a whole-file violation (no pointer).
func (ctx *ruleContext) reportFile(rule *RuleSpec, file, format string, args ...any) {
	ctx.violations = append(ctx.violations, Violation{
		RuleID:   rule.ID,
		File:     file,
		Message:  fmt.Sprintf(format, args...),
		Severity: rule.Severity,
	})
}
