package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oaslint/oaslint/checker"
)

type lintInput struct {
	Entry      string `json:"entry"                 jsonschema:"Path to the entry document of the OpenAPI document set (e.g. openapi.yaml)"`
	NoWarnings *bool  `json:"no_warnings,omitempty" jsonschema:"Suppress warning-level violations from output"`
	Offset     int    `json:"offset,omitempty"      jsonschema:"Skip the first N violations (for pagination)"`
	Limit      int    `json:"limit,omitempty"       jsonschema:"Maximum number of violations to return (default 100)"`
}

type lintViolation struct {
	RuleID   string `json:"rule_id"`
	File     string `json:"file"`
	Pointer  string `json:"pointer,omitempty"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type lintOutput struct {
	Clean          bool            `json:"clean"`
	ViolationCount int             `json:"violation_count"`
	ErrorCount     int             `json:"error_count"`
	WarningCount   int             `json:"warning_count"`
	Returned       int             `json:"returned"`
	FileCount      int             `json:"file_count"`
	Files          []string        `json:"files,omitempty"`
	Violations     []lintViolation `json:"violations,omitempty"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	noWarnings := cfg.NoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	c := checker.New()
	c.IncludeWarnings = !noWarnings

	result, err := c.CheckPath(input.Entry)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	output := lintOutput{
		Clean:          result.Clean,
		ViolationCount: result.ViolationCount,
		ErrorCount:     result.ErrorCount,
		WarningCount:   result.WarningCount,
		FileCount:      len(result.Files),
		Files:          result.Files,
	}

	output.Violations = makeSlice[lintViolation](len(result.Violations))
	for _, v := range result.Violations {
		output.Violations = append(output.Violations, lintViolation{
			RuleID:   v.RuleID,
			File:     v.File,
			Pointer:  v.Pointer,
			Message:  v.Message,
			Severity: v.Severity.String(),
			Line:     v.Line,
			Column:   v.Column,
		})
	}
	output.Violations = paginate(output.Violations, input.Offset, input.Limit)
	output.Returned = len(output.Violations)

	return nil, output, nil
}
