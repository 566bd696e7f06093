package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oaslint/oaslint/checker"
	"github.com/oaslint/oaslint/report"
)

// LintFlags contains flags for the lint command
type LintFlags struct {
	Format     string
	Output     string
	Quiet      bool
	NoWarnings bool
	Color      bool
	Verbose    bool
	Watch      bool
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml, or sarif")
	fs.StringVar(&flags.Output, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the report to a file instead of stdout")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no report output, exit code only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no report output, exit code only")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning-level violations (only show errors)")
	fs.BoolVar(&flags.Color, "color", false, "force ANSI colors in text output")
	fs.BoolVar(&flags.Verbose, "verbose", false, "include document set statistics in text output")
	fs.BoolVar(&flags.Watch, "watch", false, "watch the document set directory and re-lint on changes")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint lint [flags] <entry-file>\n\n")
		Writef(fs.Output(), "Check a modular OpenAPI document set against its structural conformance rules.\n")
		Writef(fs.Output(), "The entry file (typically openapi.yaml) is loaded together with every file it\n")
		Writef(fs.Output(), "reaches via $ref; files under paths/ and components/ that are never referenced\n")
		Writef(fs.Output(), "are reported as orphans.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nOutput Formats:\n")
		Writef(fs.Output(), "  text (default)  Human-readable report grouped by file\n")
		Writef(fs.Output(), "  json            JSON format for programmatic processing\n")
		Writef(fs.Output(), "  yaml            YAML format for programmatic processing\n")
		Writef(fs.Output(), "  sarif           SARIF 2.1.0 for code-scanning integrations\n")
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint lint openapi.yaml\n")
		Writef(fs.Output(), "  oaslint lint --no-warnings openapi.yaml\n")
		Writef(fs.Output(), "  oaslint lint --format json openapi.yaml | jq '.violations'\n")
		Writef(fs.Output(), "  oaslint lint --format sarif -o results.sarif openapi.yaml\n")
		Writef(fs.Output(), "  oaslint lint --watch openapi.yaml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Document set conforms to the ruleset\n")
		Writef(fs.Output(), "  1    Violations found\n")
		Writef(fs.Output(), "  2    Document set could not be loaded\n")
	}

	return fs, flags
}

// HandleLint executes the lint command. Violations terminate the process
// with exit code 1; a load or configuration failure is returned to the
// caller, which reports it and exits 2.
func HandleLint(args []string) error {
	fs, flags := SetupLintFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("lint command requires exactly one entry file path")
	}
	entryPath := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if flags.Watch {
		return runWatch(entryPath, flags)
	}

	result, err := runLint(entryPath, flags)
	if err != nil {
		return err
	}
	if !result.Clean {
		os.Exit(1)
	}
	return nil
}

// runLint checks the document set once and renders the report.
func runLint(entryPath string, flags *LintFlags) (*checker.CheckResult, error) {
	c := checker.New()
	c.IncludeWarnings = !flags.NoWarnings

	result, err := c.CheckPath(entryPath)
	if err != nil {
		return nil, err
	}
	if flags.Quiet {
		return result, nil
	}

	w, closer, err := openOutput(flags.Output)
	if err != nil {
		return nil, err
	}
	defer closer()

	switch flags.Format {
	case FormatJSON, FormatYAML:
		err = OutputStructured(w, result, flags.Format)
	case FormatSARIF:
		err = report.WriteSARIF(w, result, checker.DefaultRules())
	default:
		err = report.WriteText(w, result, report.TextOptions{
			Color:   flags.Color && flags.Output == "",
			Verbose: flags.Verbose,
		})
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// openOutput returns the report destination: stdout, or the file named by
// path. The returned closer is a no-op for stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(cleaned) //nolint:gosec // G304: path comes from the CLI user
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
