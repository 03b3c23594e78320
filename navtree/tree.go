package navtree

import "github.com/erraggy/navtools/pathset"

// BuildTree folds a sorted, depth-ordered path sequence into a nested tree.
// A path at the current depth becomes a leaf; a deeper path opens a branch
// that follows the leaf just emitted and holds its descendants; a shallower
// path closes the branch and returns control to the ancestor level. The
// target depth starts at the first path's depth.
func BuildTree(paths []string) []Node {
	if len(paths) == 0 {
		return nil
	}
	cursor := 0
	return buildTree(paths, &cursor, pathset.Depth(paths[0]))
}

// buildTree consumes paths through a shared cursor so recursive calls never
// re-read entries an inner branch already claimed.
func buildTree(paths []string, cursor *int, depth int) []Node {
	var items []Node
	for *cursor < len(paths) {
		path := paths[*cursor]
		switch d := pathset.Depth(path); {
		case d == depth:
			items = append(items, Leaf{Path: path})
			*cursor++
		case d > depth:
			// descendants of the leaf just emitted; recurse at their depth
			if sub := buildTree(paths, cursor, d); len(sub) > 0 {
				items = append(items, Branch{Items: sub})
			}
		default:
			// belongs to an ancestor level
			return items
		}
	}
	return items
}
