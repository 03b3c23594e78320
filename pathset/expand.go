package pathset

import (
	"sort"
	"strings"
)

// Expand returns the deduplicated union of paths and every ancestor
// directory path of each, down to "/". The result is closed under "take
// parent directory": every non-root path in it has its immediate parent
// directory present as well.
//
// When preserveOrder is false the result is sorted lexicographically. When
// preserveOrder is true each input path and its ancestors share an order key
// (first occurrence wins), and the result is sorted by order key with
// lexicographic tie-breaking, so a parent still sorts immediately before its
// children within a group.
func Expand(paths []string, preserveOrder bool) []string {
	order := make(map[string]int, len(paths)*2)
	key := 0
	record := func(p string) {
		if _, seen := order[p]; !seen {
			order[p] = key
		}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		record(path)
		for _, anc := range ancestors(path) {
			record(anc)
		}
		if preserveOrder {
			key++
		}
	}
	out := make([]string, 0, len(order))
	for p := range order {
		out = append(out, p)
	}
	if preserveOrder {
		sort.Slice(out, func(i, j int) bool {
			if order[out[i]] != order[out[j]] {
				return order[out[i]] < order[out[j]]
			}
			return out[i] < out[j]
		})
	} else {
		sort.Strings(out)
	}
	return out
}

// ancestors returns path's ancestor directory paths, nearest first, each
// with a trailing slash, ending at "/" for absolute paths. A path that is
// itself a directory yields itself first; callers needing strict ancestors
// must skip that entry.
func ancestors(path string) []string {
	var out []string
	segs := strings.Split(path, "/")
	for len(segs) > 1 {
		segs = segs[:len(segs)-1]
		out = append(out, strings.Join(segs, "/")+"/")
	}
	return out
}

// CurrentParents returns the set of strict ancestor directory paths of the
// canonical form of currentURL, excluding the URL itself. An empty URL
// yields an empty set.
func CurrentParents(currentURL string) map[string]bool {
	parents := make(map[string]bool)
	if currentURL == "" {
		return parents
	}
	cu := Canonicalize(currentURL)
	for _, anc := range ancestors(cu) {
		if anc != cu {
			parents[anc] = true
		}
	}
	return parents
}

// Chain returns the canonical form of currentURL preceded by all of its
// strict ancestor directory paths, ordered from the root down. An empty URL
// yields nil.
func Chain(currentURL string) []string {
	if currentURL == "" {
		return nil
	}
	cu := Canonicalize(currentURL)
	ancs := ancestors(cu)
	chain := make([]string, 0, len(ancs)+1)
	for i := len(ancs) - 1; i >= 0; i-- {
		if ancs[i] == cu {
			continue
		}
		chain = append(chain, ancs[i])
	}
	return append(chain, cu)
}
