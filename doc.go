// Package oaslint provides a conformance linter for modular OpenAPI
// specification repositories.
//
// A modular OpenAPI repository splits one logical API contract across many
// files: a thin entry document whose paths and components are exclusively
// $ref entries, path item files under paths/, and reusable components under
// components/schemas, components/request-bodies, components/responses, and
// components/parameters. oaslint loads such a document set, follows every
// $ref edge, and reports violations of the modularity ruleset.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - loader: Load a multi-file OpenAPI document set into a dereferenced
//     node graph with per-node source file, JSON pointer, and line/column
//     provenance
//   - checker: Walk the graph and report ruleset violations
//   - report: Render check results as text, SARIF, or structured records
//
// # Quick Start
//
// Lint a document set:
//
//	import (
//		"github.com/oaslint/oaslint/checker"
//	)
//
//	result, err := checker.CheckWithOptions(
//		checker.WithEntryPath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err) // the document set could not be loaded at all
//	}
//	for _, v := range result.Violations {
//		fmt.Println(v.String()) // "<file>:<pointer> [<rule_id>] <message>"
//	}
//
// Load a graph once and inspect it directly:
//
//	import "github.com/oaslint/oaslint/loader"
//
//	graph, err := loader.New().Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Files: %d\n", len(graph.Files))
//
// # Rules
//
// The checker ships with an immutable default rule set covering:
//
//   - MISLOCATED_SCHEMA: inline schemas outside components/schemas
//   - INLINE_IN_ENTRYPOINT: inline definitions in the entry document
//   - ORPHAN_FILE: files never reached from the entry document
//   - INVALID_REQUEST_BODY_SHAPE: malformed request-body components
//   - NAMING_VIOLATION: file and component naming conventions
//   - INCOMPLETE_OPERATION: operations missing tags, summary,
//     description, or responses
//   - NON_REUSABLE_ERROR: inline 4xx/5xx responses that bypass the
//     shared error responses
//
// Rules are plain values; pass a custom slice via checker.WithRules to
// run a subset or an extended set.
//
// # Error Handling
//
// Per-node rule violations never abort a check: the checker always
// produces a complete report in one pass. Only an unresolvable document
// set (unreadable file, YAML/JSON parse failure, broken $ref) is fatal,
// reported as a *linterrors.LoadError that identifies the offending file
// and pointer.
//
// # Concurrency
//
// Checker and Loader instances are not goroutine-safe. Each run over a
// document set is independent; to lint many sets in parallel, create one
// instance per set.
//
// # Command-Line Interface
//
// In addition to the library packages, oaslint provides a command-line
// interface:
//
//	# Lint a document set
//	oaslint lint openapi.yaml
//
//	# Machine-readable output for CI
//	oaslint lint --format sarif -o report.sarif openapi.yaml
//
//	# List the rule catalog
//	oaslint rules
//
//	# Invoke the external code generator after a clean lint
//	oaslint generate openapi.yaml
//
// Install the CLI:
//
//	go install github.com/oaslint/oaslint/cmd/oaslint@latest
//
// Exit codes: 0 when no violations were found, 1 when violations were
// found, 2 when the document set could not be loaded.
package oaslint
