package navtree

import (
	"strings"

	"github.com/erraggy/navtools/pathset"
)

// Level is one sibling group in a navigation bar; all of its entries share
// one depth.
type Level struct {
	Depth   int
	Entries []LevelEntry
}

// LevelEntry is either a single path or an ancestor-marker group recording
// the route taken to reach this level. Exactly one of Path and Ancestors is
// set.
type LevelEntry struct {
	Path      string
	Ancestors []string
}

// IsMarker reports whether the entry is an ancestor-marker group.
func (e LevelEntry) IsMarker() bool {
	return e.Ancestors != nil
}

// BuildLevels partitions filtered paths into one sibling group per depth
// along the route to the current URL. Each group lists every qualifying
// sibling at its depth, and the accumulated ancestor chain is prepended to
// the group as a marker entry so each level shows where it was entered from.
func BuildLevels(paths []string, ctx *pathset.Context) []Level {
	if len(paths) == 0 {
		return nil
	}
	minDepth := pathset.Depth(paths[0])
	for _, p := range paths[1:] {
		if d := pathset.Depth(p); d < minDepth {
			minDepth = d
		}
	}
	return buildLevels(paths, minDepth, ctx, nil)
}

func buildLevels(paths []string, depth int, ctx *pathset.Context, parents []string) []Level {
	var top, lower []string
	for _, p := range paths {
		switch d := pathset.Depth(p); {
		case d == depth:
			top = append(top, p)
		case d > depth:
			lower = append(lower, p)
		}
	}
	if len(top) == 0 {
		if len(lower) == 0 {
			return nil
		}
		// nothing at this depth; descend without emitting an empty group
		return buildLevels(lower, depth+1, ctx, parents)
	}

	level := Level{Depth: depth}
	if len(parents) > 0 {
		level.Entries = append(level.Entries, LevelEntry{Ancestors: parents})
	}
	for _, p := range top {
		level.Entries = append(level.Entries, LevelEntry{Path: p})
	}
	levels := []Level{level}

	// descend through the siblings that lie on the route to the current URL
	for _, p := range top {
		prefix := dirForm(p)
		if prefix == "" || ctx.Empty() || !strings.HasPrefix(ctx.Canonical, prefix) {
			continue
		}
		var desc []string
		for _, q := range lower {
			if strings.HasPrefix(q, prefix) {
				desc = append(desc, q)
			}
		}
		if len(desc) == 0 {
			continue
		}
		chain := append(append([]string{}, parents...), p)
		levels = append(levels, buildLevels(desc, depth+1, ctx, chain)...)
	}
	return levels
}

// dirForm returns a directory path's canonical form with its trailing slash,
// or "" for leaf pages, which cannot have descendants.
func dirForm(path string) string {
	p := pathset.Canonicalize(path)
	if strings.HasSuffix(p, "/") {
		return p
	}
	return ""
}
