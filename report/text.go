// Package report renders check results for human and CI consumption: a
// styled text report grouped by file, and SARIF 2.1.0 for code-scanning
// integrations.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oaslint/oaslint/checker"
)

const timeRounding = time.Millisecond

// TextOptions configures the text renderer.
type TextOptions struct {
	// Color enables ANSI styling. Leave false when writing to files or pipes.
	Color bool
	// Verbose adds graph statistics after the summary line.
	Verbose bool
}

type palette struct {
	file    lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	ok      lipgloss.Style
	summary lipgloss.Style
}

func newPalette(color bool) palette {
	plain := lipgloss.NewStyle()
	if !color {
		return palette{file: plain, err: plain, warn: plain, ok: plain, summary: plain}
	}
	return palette{
		file:    lipgloss.NewStyle().Bold(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		summary: lipgloss.NewStyle().Bold(true),
	}
}

// WriteText renders the result grouped by file. Violations are already in
// deterministic order, so files appear entry-first and groups stay stable
// across runs.
func WriteText(w io.Writer, result *checker.CheckResult, opts TextOptions) error {
	p := newPalette(opts.Color)

	if result.Clean {
		if _, err := fmt.Fprintf(w, "%s %d file(s) checked, no violations found\n",
			p.ok.Render("OK"), len(result.Files)); err != nil {
			return err
		}
		return writeStats(w, result, opts)
	}

	currentFile := ""
	for _, v := range result.Violations {
		if v.File != currentFile {
			if currentFile != "" {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			currentFile = v.File
			if _, err := fmt.Fprintln(w, p.file.Render(currentFile)); err != nil {
				return err
			}
		}
		if err := writeViolation(w, p, v); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("\n%d violation(s): %d error(s), %d warning(s) across %d file(s)",
		result.ViolationCount, result.ErrorCount, result.WarningCount, len(result.Files))
	if _, err := fmt.Fprintln(w, p.summary.Render(summary)); err != nil {
		return err
	}
	return writeStats(w, result, opts)
}

func writeViolation(w io.Writer, p palette, v checker.Violation) error {
	tag := "[" + v.RuleID + "]"
	switch v.Severity {
	case checker.SeverityWarning:
		tag = p.warn.Render(tag)
	default:
		tag = p.err.Render(tag)
	}

	location := v.Pointer
	if location == "" {
		location = "(file)"
	}
	if v.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", location, v.Line)
	}
	_, err := fmt.Fprintf(w, "  %s %s %s\n", tag, location, v.Message)
	return err
}

func writeStats(w io.Writer, result *checker.CheckResult, opts TextOptions) error {
	if !opts.Verbose {
		return nil
	}
	_, err := fmt.Fprintf(w, "checked %d path(s), %d operation(s), %d schema(s) in %s (%d bytes)\n",
		result.Stats.PathCount, result.Stats.OperationCount, result.Stats.SchemaCount,
		result.LoadTime.Round(timeRounding), result.SourceSize)
	return err
}
