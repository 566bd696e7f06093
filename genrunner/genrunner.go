// Package genrunner invokes an external OpenAPI code generator for a
// document set that passed its conformance check. The checker is the
// gatekeeper: run it first and hand the entry document to the generator
// only when the set is clean.
package genrunner

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/oaslint/oaslint/linterrors"
)

// DefaultCommand is the generator executable looked up on PATH when no
// explicit command is configured.
const DefaultCommand = "openapi-generator-cli"

// Runner executes an external code generator against an entry document.
type Runner struct {
	// Command is the generator executable. Defaults to DefaultCommand.
	Command string
	// Args are passed to the generator before the entry document path.
	Args []string
	// Dir is the working directory for the generator process. Empty means
	// the current directory.
	Dir string
	// Stdout and Stderr receive the generator's output. Nil streams are
	// connected to the corresponding os streams.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Runner invoking DefaultCommand.
func New() *Runner {
	return &Runner{Command: DefaultCommand}
}

// Run executes the generator with the entry document appended to the
// configured arguments and waits for it to finish. The context cancels the
// generator process when done.
func (r *Runner) Run(ctx context.Context, entryPath string) error {
	command := r.Command
	if command == "" {
		return &linterrors.ConfigError{
			Option:  "command",
			Message: "no generator command configured",
		}
	}
	if entryPath == "" {
		return &linterrors.ConfigError{
			Option:  "entry",
			Message: "no entry document provided",
		}
	}

	bin, err := exec.LookPath(command)
	if err != nil {
		return &linterrors.ConfigError{
			Option:  "command",
			Value:   command,
			Message: "generator executable not found on PATH",
			Cause:   err,
		}
	}

	args := make([]string, 0, len(r.Args)+1)
	args = append(args, r.Args...)
	args = append(args, entryPath)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}
