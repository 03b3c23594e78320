package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/navtools/linklist"
	"github.com/erraggy/navtools/sitemap"
)

// renderOutput is the shared result shape of the render tools.
type renderOutput struct {
	HTML      string `json:"html"`
	PathCount int    `json:"path_count"`
}

func handleFlatList(_ context.Context, _ *mcp.CallToolRequest, input siteInput) (*mcp.CallToolResult, renderOutput, error) {
	paths, opts, err := input.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	return nil, renderOutput{
		HTML:      linklist.FlatList(paths, opts),
		PathCount: len(paths),
	}, nil
}

func handleFullTree(_ context.Context, _ *mcp.CallToolRequest, input siteInput) (*mcp.CallToolResult, renderOutput, error) {
	paths, opts, err := input.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	return nil, renderOutput{
		HTML:      linklist.FullTree(paths, opts),
		PathCount: len(paths),
	}, nil
}

func handleNavTree(_ context.Context, _ *mcp.CallToolRequest, input siteInput) (*mcp.CallToolResult, renderOutput, error) {
	paths, opts, err := input.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	applyNavDefaults(&opts)
	return nil, renderOutput{
		HTML:      linklist.NavTree(paths, opts),
		PathCount: len(paths),
	}, nil
}

func handleNavBar(_ context.Context, _ *mcp.CallToolRequest, input siteInput) (*mcp.CallToolResult, renderOutput, error) {
	paths, opts, err := input.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	applyNavDefaults(&opts)
	return nil, renderOutput{
		HTML:      linklist.NavBar(paths, opts),
		PathCount: len(paths),
	}, nil
}

type breadcrumbInput struct {
	Current string            `json:"current"          jsonschema:"The current page's URL path"`
	Sitemap string            `json:"sitemap,omitempty" jsonschema:"Path to a YAML sitemap file providing labels and the current URL"`
	Labels  map[string]string `json:"labels,omitempty"  jsonschema:"Display labels keyed by path"`
}

func handleBreadcrumb(_ context.Context, _ *mcp.CallToolRequest, input breadcrumbInput) (*mcp.CallToolResult, renderOutput, error) {
	current := input.Current
	opts := linklist.Options{Labels: input.Labels}
	if input.Sitemap != "" {
		sm, err := sitemap.Load(input.Sitemap)
		if err != nil {
			return errResult(err), renderOutput{}, nil
		}
		if current == "" {
			current = sm.Current
		}
		opts.Labels = mergeMaps(sm.Labels, opts.Labels)
	}
	if current == "" {
		return errResult(fmt.Errorf("no current URL provided: set current or a sitemap file with a current field")), renderOutput{}, nil
	}
	return nil, renderOutput{
		HTML:      linklist.Breadcrumb(current, opts),
		PathCount: 1,
	}, nil
}

// applyNavDefaults fills the env-configured navigation defaults for options
// the caller left unset.
func applyNavDefaults(opts *linklist.Options) {
	if opts.StartDepth == 0 {
		opts.StartDepth = cfg.StartDepth
	}
}
