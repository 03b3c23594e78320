package linklist

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/erraggy/navtools/navtree"
	"github.com/erraggy/navtools/pathset"
)

// linklistLogger is used for warnings in render functions.
// Tests can replace this with a discard logger to suppress expected warnings.
var linklistLogger = slog.Default()

// FlatList renders paths in their given order as a single flat list.
func FlatList(paths []string, opts Options) string {
	r := newRenderer(opts, pathset.NewContext(opts.CurrentURL), DefaultListFormat(), false)
	items := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		items = append(items, r.cfg.PreItem+r.item(p)+r.cfg.PostItem)
	}
	if len(items) == 0 {
		return ""
	}
	return r.cfg.ListHead + strings.Join(items, r.cfg.ItemSep) + r.cfg.ListFoot
}

// Tree renders an explicitly nested node structure. The caller controls the
// nesting; no expansion or filtering is applied.
func Tree(nodes []navtree.Node, opts Options) string {
	r := newRenderer(opts, pathset.NewContext(opts.CurrentURL), DefaultListFormat(), false)
	return r.tree(nodes)
}

// FullTree expands paths into their ancestor-directory closure and renders
// the whole hierarchy as a nested tree. The expansion synthesizes the root
// "/" above everything else unless StartDepth excludes it.
func FullTree(paths []string, opts Options) string {
	if len(paths) == 0 {
		return ""
	}
	ctx := pathset.NewContext(opts.CurrentURL)
	expanded := pathset.Expand(paths, opts.PreserveOrder)
	filtered := navtree.Filter(expanded, ctx, filterConfig(opts, false))
	r := newRenderer(opts, ctx, DefaultListFormat(), false)
	return r.tree(navtree.BuildTree(filtered))
}

// Breadcrumb renders the current URL's ancestor chain, root first, with the
// current page decorated rather than linked.
func Breadcrumb(currentURL string, opts Options) string {
	if currentURL == "" {
		return ""
	}
	opts.CurrentURL = currentURL
	ctx := pathset.NewContext(currentURL)
	r := newRenderer(opts, ctx, DefaultBreadcrumbFormat(), false)
	return r.tree(navtree.BuildTree(pathset.Chain(currentURL)))
}

// NavTree renders a nested navigation tree scoped to the current URL: its
// ancestors, itself, its children, its siblings, and top-level entries.
// StartDepth defaults to 1 and EndDepth to one level below the current URL.
func NavTree(paths []string, opts Options) string {
	filtered, ctx := navScope(paths, &opts)
	r := newRenderer(opts, ctx, DefaultListFormat(), false)
	return r.tree(navtree.BuildTree(filtered))
}

// NavBar renders per-depth sibling groups along the route to the current
// URL, one list per level, with the route so far bracketed at the head of
// each deeper level. Depth defaults match NavTree.
func NavBar(paths []string, opts Options) string {
	filtered, ctx := navScope(paths, &opts)
	r := newRenderer(opts, ctx, DefaultListFormat(), true)
	return r.levels(navtree.BuildLevels(filtered, ctx))
}

// navScope applies the navigation depth defaults, expands the path set, and
// filters it down to the current URL's neighborhood.
func navScope(paths []string, opts *Options) ([]string, *pathset.Context) {
	ctx := pathset.NewContext(opts.CurrentURL)
	if opts.StartDepth == 0 {
		opts.StartDepth = 1
	}
	if opts.EndDepth == 0 {
		if ctx.Empty() {
			// without a current URL there is no route to follow; show the
			// entry level only
			opts.EndDepth = opts.StartDepth
		} else {
			opts.EndDepth = ctx.Depth + 1
		}
	}
	if len(paths) == 0 {
		return nil, ctx
	}
	expanded := pathset.Expand(paths, opts.PreserveOrder)
	return navtree.Filter(expanded, ctx, filterConfig(*opts, true)), ctx
}

func filterConfig(opts Options, navbar bool) navtree.FilterConfig {
	return navtree.FilterConfig{
		Hide:       compilePattern("hide", opts.Hide),
		NoHide:     compilePattern("nohide", opts.NoHide),
		StartDepth: opts.StartDepth,
		EndDepth:   opts.EndDepth,
		NavBar:     navbar,
	}
}

// compilePattern compiles an optional filter pattern. Rendering has no
// failure mode, so an invalid pattern is dropped with a warning.
func compilePattern(name, pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		linklistLogger.Warn("ignoring invalid filter pattern", "option", name, "pattern", pattern, "error", err)
		return nil
	}
	return re
}
