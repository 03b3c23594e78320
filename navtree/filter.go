package navtree

import (
	"regexp"
	"strings"

	"github.com/erraggy/navtools/pathset"
)

// FilterConfig controls which paths survive filtering.
type FilterConfig struct {
	// Hide excludes matching paths unless NoHide also matches them.
	Hide *regexp.Regexp
	// NoHide overrides Hide for matching paths.
	NoHide *regexp.Regexp
	// StartDepth excludes paths shallower than this depth.
	StartDepth int
	// EndDepth excludes paths deeper than this depth when positive.
	EndDepth int
	// NavBar restricts the result to paths relevant to the current URL
	// (ancestors, itself, its children, its siblings, and top-level entries)
	// instead of keeping the whole tree.
	NavBar bool
}

// Filter selects the subset of paths relevant to the requested view.
// Candidates are judged independently, the first matching rule wins, and
// the input order is preserved. Increasing EndDepth never removes a path
// that a smaller EndDepth admitted.
func Filter(paths []string, ctx *pathset.Context, cfg FilterConfig) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if keep(path, ctx, cfg) {
			out = append(out, path)
		}
	}
	return out
}

func keep(path string, ctx *pathset.Context, cfg FilterConfig) bool {
	if cfg.Hide != nil && cfg.Hide.MatchString(path) {
		if cfg.NoHide == nil || !cfg.NoHide.MatchString(path) {
			return false
		}
	}
	d := pathset.Depth(path)
	if d < cfg.StartDepth {
		return false
	}
	if cfg.EndDepth > 0 && d > cfg.EndDepth {
		return false
	}
	if !cfg.NavBar || ctx.Empty() {
		return true
	}
	// Navigation scope. All current-URL tests are literal string-prefix
	// comparisons; path strings are never interpreted as patterns.
	switch {
	case d <= ctx.Depth && strings.HasPrefix(ctx.Canonical, path):
		return true // ancestor-or-self directory of the current URL
	case ctx.IsCurrent(path):
		return true
	case d >= ctx.Depth && strings.HasPrefix(path, ctx.IndexPath):
		return true // descendant of the current URL's index directory
	case cfg.StartDepth == 1 && d == 1:
		return true // top-level entries always show in navigation
	case !ctx.IsDirectory && d == ctx.Depth-1 && strings.HasPrefix(path, ctx.IndexParent):
		return true // sibling of the current page's containing directory
	case ctx.IsDirectory && d == ctx.Depth && strings.HasPrefix(path, ctx.IndexParent):
		return true // sibling of the current index page
	}
	return false
}
