package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/oaslint/oaslint/internal/mcpserver"
)

// SetupMcpFlags creates and configures a FlagSet for the mcp command.
func SetupMcpFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oaslint mcp\n\n")
		Writef(fs.Output(), "Run oaslint as an MCP (Model Context Protocol) server over stdio.\n")
		Writef(fs.Output(), "Exposes the lint and rules tools to MCP clients such as coding agents.\n\n")
		Writef(fs.Output(), "Configuration (environment variables):\n")
		Writef(fs.Output(), "  OASLINT_LINT_LIMIT   default result limit for the lint tool (default 100)\n")
		Writef(fs.Output(), "  OASLINT_MAX_LIMIT    hard cap on returned violations per call (default 500)\n")
		Writef(fs.Output(), "  OASLINT_NO_WARNINGS  suppress warning-level violations by default\n")
	}

	return fs
}

// HandleMcp executes the mcp command, blocking until the client disconnects
// or the process is interrupted.
func HandleMcp(args []string) error {
	fs := SetupMcpFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
