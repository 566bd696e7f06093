// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaslint capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oaslint/oaslint"
)

const serverInstructions = `oaslint MCP server — checks modular OpenAPI document sets against structural conformance rules.

Configuration: All defaults are configurable via OASLINT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASLINT_LINT_LIMIT (default: 100) — default result limit for the lint tool
- OASLINT_MAX_LIMIT (default: 500) — hard cap on returned violations per call
- OASLINT_NO_WARNINGS (default: false) — suppress warning-level violations by default

The lint tool checks a document set rooted at an entry file on disk; remote documents are not supported. Use the rules tool to discover rule IDs, severities, and descriptions.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaslint", Version: oaslint.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Check a modular OpenAPI document set against its structural conformance rules. Takes the path of the entry document (e.g. openapi.yaml); every file reachable via $ref is loaded and checked, and files under paths/ and components/ that are never referenced are reported as orphans. Returns violations with file, JSON pointer, and line provenance. Use offset/limit to paginate through results; use no_warnings to focus on errors. Defaults are configurable via OASLINT_LINT_LIMIT and OASLINT_NO_WARNINGS env vars.",
	}, handleLint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rules",
		Description: "List the structural conformance rules the lint tool enforces, with rule IDs, severities, and one-line descriptions.",
	}, handleRules)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.LintLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.LintLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
