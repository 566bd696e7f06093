package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaslint/oaslint/checker"
	"github.com/oaslint/oaslint/genrunner"
	"github.com/oaslint/oaslint/report"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Generator string
	Dir       string
	Force     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Generator, "generator", genrunner.DefaultCommand, "code generator executable to invoke")
	fs.StringVar(&flags.Dir, "dir", "", "working directory for the generator process")
	fs.BoolVar(&flags.Force, "force", false, "invoke the generator even when the document set has violations")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint generate [flags] <entry-file> [-- generator args]\n\n")
		Writef(fs.Output(), "Check the document set and hand the entry file to an external code generator.\n")
		Writef(fs.Output(), "Generation is refused while the set has error-severity violations unless\n")
		Writef(fs.Output(), "--force is given; warnings never block generation.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oaslint generate openapi.yaml\n")
		Writef(fs.Output(), "  oaslint generate openapi.yaml -- generate -g go -o ./client\n")
		Writef(fs.Output(), "  oaslint generate --generator my-codegen --force openapi.yaml\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Generation succeeded\n")
		Writef(fs.Output(), "  1    Violations blocked generation, or the generator failed\n")
		Writef(fs.Output(), "  2    The document set could not be loaded\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires an entry file path")
	}
	entryPath := fs.Arg(0)
	// Flag parsing stops at the entry path, so a "--" separating generator
	// args survives into Args and is stripped here.
	generatorArgs := fs.Args()[1:]
	if len(generatorArgs) > 0 && generatorArgs[0] == "--" {
		generatorArgs = generatorArgs[1:]
	}

	result, err := checker.New().CheckPath(entryPath)
	if err != nil {
		return err
	}
	if result.ErrorCount > 0 && !flags.Force {
		if err := report.WriteText(os.Stderr, result, report.TextOptions{}); err != nil {
			return err
		}
		return fmt.Errorf("document set has %d error(s); fix them or pass --force", result.ErrorCount)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := genrunner.New()
	runner.Command = flags.Generator
	runner.Args = generatorArgs
	runner.Dir = flags.Dir
	if err := runner.Run(ctx, entryPath); err != nil {
		return fmt.Errorf("running generator: %w", err)
	}
	return nil
}
