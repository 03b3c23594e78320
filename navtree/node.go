package navtree

// Node is one entry in a nested link tree: either a Leaf holding a single
// path, or a Branch holding the children of the leaf that precedes it.
type Node interface {
	node()
}

// Leaf is a single path in a tree sequence.
type Leaf struct {
	Path string
}

// Branch is an ordered sequence of nodes one level deeper than the leaf it
// follows. A branch never opens a sequence; it always carries the children
// of the previous leaf.
type Branch struct {
	Items []Node
}

func (Leaf) node()   {}
func (Branch) node() {}

// Flatten returns the leaf paths of nodes in depth-first order. Flattening
// the result of BuildTree reproduces its input sequence exactly.
func Flatten(nodes []Node) []string {
	var out []string
	for _, n := range nodes {
		switch v := n.(type) {
		case Leaf:
			out = append(out, v.Path)
		case Branch:
			out = append(out, Flatten(v.Items)...)
		}
	}
	return out
}
