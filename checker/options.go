package checker

import (
	"github.com/oaslint/oaslint/linterrors"
	"github.com/oaslint/oaslint/loader"
)

// Option configures a CheckWithOptions call.
type Option func(*checkConfig) error

type checkConfig struct {
	entryPath       string
	graph           *loader.Graph
	rules           []RuleSpec
	inventory       []string
	includeWarnings bool
}

// WithEntryPath checks the document set rooted at the given entry file.
func WithEntryPath(entryPath string) Option {
	return func(cfg *checkConfig) error {
		if entryPath == "" {
			return &linterrors.ConfigError{
				Option:  "WithEntryPath",
				Message: "entry path must not be empty",
			}
		}
		cfg.entryPath = entryPath
		return nil
	}
}

// WithGraph checks an already-loaded document graph.
func WithGraph(graph *loader.Graph) Option {
	return func(cfg *checkConfig) error {
		if graph == nil {
			return &linterrors.ConfigError{
				Option:  "WithGraph",
				Message: "graph must not be nil",
			}
		}
		cfg.graph = graph
		return nil
	}
}

// WithRules replaces the default ruleset.
func WithRules(rules []RuleSpec) Option {
	return func(cfg *checkConfig) error {
		if len(rules) == 0 {
			return &linterrors.ConfigError{
				Option:  "WithRules",
				Message: "rule set must not be empty",
			}
		}
		cfg.rules = rules
		return nil
	}
}

// WithInventory replaces the on-disk file scan used for orphan detection.
func WithInventory(files []string) Option {
	return func(cfg *checkConfig) error {
		cfg.inventory = files
		return nil
	}
}

// WithIncludeWarnings controls whether warning-level violations are reported.
func WithIncludeWarnings(include bool) Option {
	return func(cfg *checkConfig) error {
		cfg.includeWarnings = include
		return nil
	}
}

// CheckWithOptions checks a document set configured by the provided options.
// Exactly one input source (WithEntryPath or WithGraph) must be given.
func CheckWithOptions(opts ...Option) (*CheckResult, error) {
	cfg := &checkConfig{includeWarnings: true}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.entryPath != "" && cfg.graph != nil:
		return nil, &linterrors.ConfigError{
			Option:  "input",
			Message: "WithEntryPath and WithGraph are mutually exclusive",
		}
	case cfg.entryPath == "" && cfg.graph == nil:
		return nil, &linterrors.ConfigError{
			Option:  "input",
			Message: "one of WithEntryPath or WithGraph is required",
		}
	}

	c := &Checker{
		Rules:           cfg.rules,
		IncludeWarnings: cfg.includeWarnings,
		Inventory:       cfg.inventory,
	}
	if cfg.graph != nil {
		return c.Check(cfg.graph)
	}
	return c.CheckPath(cfg.entryPath)
}
