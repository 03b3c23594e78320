// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes navtools render operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/navtools"
)

const serverInstructions = `navtools MCP server — renders HTML link lists, nested trees, breadcrumbs, and navigation bars from URL path lists.

Configuration: All defaults are configurable via NAVTOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- NAVTOOLS_START_DEPTH (default: 1) — default minimum depth for nav_tree and nav_bar
- NAVTOOLS_PRESERVE_ORDER (default: false) — keep input path order instead of sorting

Paths can be given inline via the paths array or loaded from a YAML sitemap file via sitemap. A sitemap may also carry labels, descriptions, and the current URL; inline fields override it.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "navtools", Version: navtools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "flat_list",
		Description: "Render URL paths as a flat HTML list in their given order. The current URL renders as a decorated label instead of a link. Labels default to a prettified form of each path's last segment; override per path via labels or a sitemap file.",
	}, handleFlatList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "full_tree",
		Description: "Render the full site hierarchy as a nested HTML tree. Missing ancestor directories (including the root) are synthesized from the given paths. Supports hide/nohide regex filtering and start_depth/end_depth bounds.",
	}, handleFullTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "nav_tree",
		Description: "Render a nested navigation tree scoped around the current URL: its ancestors, itself, its children and siblings, plus top-level entries. Requires current (inline or from the sitemap) to show more than the top level.",
	}, handleNavTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "nav_bar",
		Description: "Render a navigation bar: one HTML list per depth level along the route to the current URL, with the route so far bracketed at the head of each deeper level. Requires current (inline or from the sitemap) to show more than the top level.",
	}, handleNavBar)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "breadcrumb",
		Description: "Render the current URL's ancestor chain as a breadcrumb trail, root first, with the current page decorated rather than linked. Requires current; paths are not needed.",
	}, handleBreadcrumb)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
