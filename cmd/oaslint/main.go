package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oaslint/oaslint"
	"github.com/oaslint/oaslint/cmd/oaslint/commands"
	"github.com/oaslint/oaslint/linterrors"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch command := os.Args[1]; command {
	case "version", "-v", "--version":
		fmt.Printf("oaslint v%s\n", oaslint.Version())
	case "help", "-h", "--help":
		printUsage()
	case "lint":
		if err := commands.HandleLint(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case "rules":
		if err := commands.HandleRules(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(generateExitCode(err))
		}
	case "mcp":
		if err := commands.HandleMcp(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(2)
	}
}

// generateExitCode maps a generate failure to its process exit code: a
// document set that cannot be loaded exits 2, matching lint; everything
// else (dirty set, generator failure) exits 1.
func generateExitCode(err error) int {
	if errors.Is(err, linterrors.ErrLoad) {
		return 2
	}
	return 1
}

func printUsage() {
	fmt.Printf(`oaslint v%s - structural conformance checker for modular OpenAPI document sets

Usage: oaslint <command> [flags] [arguments]

Commands:
  lint        Check a document set against the conformance ruleset
  rules       List the rules the lint command enforces
  generate    Check a document set, then invoke an external code generator
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Use "oaslint <command> --help" for details on a command.

Examples:
  oaslint lint openapi.yaml
  oaslint lint --format sarif -o results.sarif openapi.yaml
  oaslint rules --format json
  oaslint generate openapi.yaml -- generate -g go -o ./client
`, oaslint.Version())
}
