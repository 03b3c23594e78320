package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/erraggy/navtools/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools mcp\n\n")
		Writef(output, "Start an MCP (Model Context Protocol) server over stdio exposing the\n")
		Writef(output, "render operations as tools: flat_list, full_tree, nav_tree, nav_bar,\n")
		Writef(output, "and breadcrumb.\n\n")
		Writef(output, "Defaults are configurable via NAVTOOLS_* environment variables:\n")
		Writef(output, "  NAVTOOLS_START_DEPTH     default minimum depth for nav tools (default 1)\n")
		Writef(output, "  NAVTOOLS_PRESERVE_ORDER  keep input path order (default false)\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
