// Package checker evaluates a loaded OpenAPI document graph against the
// modular ruleset and reports violations with file and pointer provenance.
//
// A check pass never mutates the graph and never stops early: every rule
// runs against every applicable node, so one finding does not mask another.
// The resulting violations are sorted deterministically (entry document
// first, then paths/ files, then components/ files, alphabetically within
// each group), which makes checker output stable across runs and safe to
// diff in CI.
package checker

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/oaslint/oaslint/internal/fileutil"
	"github.com/oaslint/oaslint/linterrors"
	"github.com/oaslint/oaslint/loader"
)

// Checker runs the conformance ruleset against a document graph.
type Checker struct {
	// Rules is the active rule set. When nil, DefaultRules() is used.
	Rules []RuleSpec
	// IncludeWarnings controls whether warning-level violations are reported
	IncludeWarnings bool
	// Inventory overrides the on-disk scan of paths/ and components/ when
	// set. Intended for tests and callers checking virtual document sets.
	Inventory []string
}

// New creates a Checker with the default ruleset and warnings enabled.
func New() *Checker {
	return &Checker{
		Rules:           DefaultRules(),
		IncludeWarnings: true,
	}
}

// CheckResult is the outcome of one check pass over a document set.
type CheckResult struct {
	// Clean is true when no violations were reported
	Clean bool `json:"clean" yaml:"clean"`
	// EntryPath is the entry document path as given to the loader
	EntryPath string `json:"entry_path" yaml:"entry_path"`
	// Violations holds all reported violations in deterministic order
	Violations []Violation `json:"violations" yaml:"violations"`
	// ViolationCount is len(Violations)
	ViolationCount int `json:"violation_count" yaml:"violation_count"`
	// ErrorCount is the number of error-severity violations
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the number of warning-severity violations
	WarningCount int `json:"warning_count" yaml:"warning_count"`
	// Files lists every file reachable from the entry document
	Files []string `json:"files" yaml:"files"`
	// Stats summarizes the checked document graph
	Stats loader.GraphStats `json:"stats" yaml:"stats"`
	// LoadTime is how long loading and resolving the graph took
	LoadTime time.Duration `json:"load_time" yaml:"load_time"`
	// SourceSize is the total byte size of all loaded files
	SourceSize int64 `json:"source_size" yaml:"source_size"`
}

// Check runs every active rule against the graph and returns the collected
// violations. The error return covers environmental failures only (such as
// an unreadable base directory while scanning for orphans); rule findings
// are never errors.
func (c *Checker) Check(graph *loader.Graph) (*CheckResult, error) {
	if graph == nil {
		return nil, &linterrors.ConfigError{
			Option:  "graph",
			Message: "no document graph provided",
		}
	}

	inventory := c.Inventory
	if inventory == nil {
		var err error
		inventory, err = fileutil.Inventory(os.DirFS(graph.BaseDir))
		if err != nil {
			return nil, &linterrors.LoadError{
				File:    graph.EntryFile,
				Message: "scanning document set directory: " + err.Error(),
				Cause:   err,
			}
		}
	}

	rules := c.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	ctx := &ruleContext{graph: graph, inventory: inventory}
	for i := range rules {
		rule := &rules[i]
		if rule.check == nil {
			continue
		}
		rule.check(ctx, rule)
	}

	violations := ctx.violations
	if !c.IncludeWarnings {
		kept := violations[:0]
		for _, v := range violations {
			if v.Severity != SeverityWarning {
				kept = append(kept, v)
			}
		}
		violations = kept
	}
	sortViolations(graph.EntryFile, violations)

	result := &CheckResult{
		Clean:      len(violations) == 0,
		EntryPath:  graph.EntryPath,
		Violations: violations,
		Files:      graph.Files,
		Stats:      graph.Stats,
		LoadTime:   graph.LoadTime,
		SourceSize: graph.SourceSize,
	}
	result.ViolationCount = len(violations)
	for _, v := range violations {
		switch v.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

// CheckPath loads the document set rooted at entryPath and checks it.
func (c *Checker) CheckPath(entryPath string) (*CheckResult, error) {
	graph, err := loader.New().Load(entryPath)
	if err != nil {
		return nil, err
	}
	return c.Check(graph)
}

// sortViolations orders violations for stable output: entry document first,
// then paths/ files, then components/ files, then anything else; within a
// group alphabetically by file, pointer, and rule ID.
func sortViolations(entryFile string, violations []Violation) {
	rank := func(file string) int {
		switch {
		case file == entryFile:
			return 0
		case strings.HasPrefix(file, "paths/"):
			return 1
		case strings.HasPrefix(file, "components/"):
			return 2
		default:
			return 3
		}
	}
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if ra, rb := rank(a.File), rank(b.File); ra != rb {
			return ra < rb
		}
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Pointer != b.Pointer {
			return a.Pointer < b.Pointer
		}
		return a.RuleID < b.RuleID
	})
}
