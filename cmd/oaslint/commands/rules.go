package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oaslint/oaslint/checker"
)

// RulesFlags contains flags for the rules command
type RulesFlags struct {
	Format string
}

// SetupRulesFlags creates and configures a FlagSet for the rules command.
func SetupRulesFlags() (*flag.FlagSet, *RulesFlags) {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	flags := &RulesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint rules [flags]\n\n")
		Writef(fs.Output(), "List the structural conformance rules the lint command enforces.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint rules\n")
		Writef(fs.Output(), "  oaslint rules --format json | jq '.rules[].id'\n")
	}

	return fs, flags
}

// HandleRules executes the rules command
func HandleRules(args []string) error {
	fs, flags := SetupRulesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("rules command takes no arguments")
	}
	if flags.Format == FormatSARIF {
		return fmt.Errorf("invalid format '%s' for rules. Valid formats: %s, %s, %s",
			flags.Format, FormatText, FormatJSON, FormatYAML)
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	rules := checker.DefaultRules()

	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		return OutputStructured(os.Stdout, struct {
			Rules []checker.RuleSpec `json:"rules" yaml:"rules"`
		}{Rules: rules}, flags.Format)
	}

	for _, rule := range rules {
		Writef(os.Stdout, "%-28s %-8s %s\n", rule.ID, rule.Severity, rule.Description)
	}
	return nil
}
