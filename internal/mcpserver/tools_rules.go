package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oaslint/oaslint/checker"
)

type rulesInput struct{}

type ruleInfo struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type rulesOutput struct {
	Rules []ruleInfo `json:"rules"`
}

func handleRules(_ context.Context, _ *mcp.CallToolRequest, _ rulesInput) (*mcp.CallToolResult, rulesOutput, error) {
	defaults := checker.DefaultRules()
	output := rulesOutput{Rules: make([]ruleInfo, 0, len(defaults))}
	for _, rule := range defaults {
		output.Rules = append(output.Rules, ruleInfo{
			ID:          rule.ID,
			Severity:    rule.Severity.String(),
			Description: rule.Description,
		})
	}
	return nil, output, nil
}
