package linklist

import (
	"strings"

	"github.com/erraggy/navtools/navtree"
	"github.com/erraggy/navtools/pathset"
)

// itemState classifies how a single path is displayed.
type itemState int

const (
	statePlain  itemState = iota // ordinary link
	stateActive                  // the current URL: decorated label, not linked
	stateParent                  // strict ancestor of the current URL: decorated link
)

// renderer walks tree and level structures, assembling HTML per FormatConfig.
// A renderer is local to one render call; nothing is shared between calls.
type renderer struct {
	cfg    FormatConfig
	ctx    *pathset.Context
	opts   Options
	navbar bool
}

func newRenderer(opts Options, ctx *pathset.Context, def FormatConfig, navbar bool) *renderer {
	cfg := def
	if opts.Format != nil {
		cfg = *opts.Format
	}
	return &renderer{cfg: cfg, ctx: ctx, opts: opts, navbar: navbar}
}

func (r *renderer) stateFor(path string) itemState {
	switch {
	case r.ctx.IsCurrent(path):
		if r.navbar && r.ctx.IsDirectory {
			// in a navigation bar the levels below descend through the
			// current index page, so it reads as an ancestor
			return stateParent
		}
		return stateActive
	case r.ctx.IsParent(path):
		return stateParent
	default:
		return statePlain
	}
}

// item renders a single path as an anchor or decorated label, with any
// description appended after a space.
func (r *renderer) item(path string) string {
	label := Label(path, r.opts.Labels)
	var b strings.Builder
	switch r.stateFor(path) {
	case stateActive:
		b.WriteString(r.cfg.PreActive)
		b.WriteString(label)
		b.WriteString(r.cfg.PostActive)
	case stateParent:
		b.WriteString(r.cfg.PreCurrentParent)
		r.anchor(&b, path, label)
		b.WriteString(r.cfg.PostCurrentParent)
	default:
		r.anchor(&b, path, label)
	}
	if d := r.opts.Descriptions[path]; d != "" {
		b.WriteString(" ")
		b.WriteString(d)
	}
	return b.String()
}

func (r *renderer) anchor(b *strings.Builder, path, label string) {
	b.WriteString(`<a href="`)
	b.WriteString(path)
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString("</a>")
}

// tree renders a node sequence as the outermost list.
func (r *renderer) tree(nodes []navtree.Node) string {
	items := r.items(nodes)
	if len(items) == 0 {
		return ""
	}
	return r.cfg.ListHead + strings.Join(items, r.cfg.ItemSep) + r.cfg.ListFoot
}

// items renders each leaf, folding a branch that follows a leaf into that
// leaf's item so children nest inside their parent's wrapper.
func (r *renderer) items(nodes []navtree.Node) []string {
	var items []string
	for i := 0; i < len(nodes); i++ {
		switch v := nodes[i].(type) {
		case navtree.Leaf:
			item := r.item(v.Path)
			if i+1 < len(nodes) {
				if br, ok := nodes[i+1].(navtree.Branch); ok {
					last := i+1 == len(nodes)-1
					item += r.cfg.TreeSep + r.subtree(br.Items, last)
					i++
				}
			}
			items = append(items, r.cfg.PreItem+item+r.cfg.PostItem)
		case navtree.Branch:
			// a branch with no preceding leaf renders bare
			items = append(items, r.subtree(v.Items, i == len(nodes)-1))
		}
	}
	return items
}

func (r *renderer) subtree(nodes []navtree.Node, last bool) string {
	head, foot := r.cfg.SubListHead, r.cfg.SubListFoot
	if last {
		head, foot = r.cfg.LastSubListHead, r.cfg.LastSubListFoot
	}
	return head + strings.Join(r.items(nodes), r.cfg.ItemSep) + foot
}

// levels renders navigation-bar level groups, one list per level.
func (r *renderer) levels(levels []navtree.Level) string {
	rendered := make([]string, 0, len(levels))
	for _, lv := range levels {
		items := make([]string, 0, len(lv.Entries))
		for _, e := range lv.Entries {
			if e.IsMarker() {
				items = append(items, r.cfg.PreItem+r.marker(e.Ancestors)+r.cfg.PostItem)
				continue
			}
			items = append(items, r.cfg.PreItem+r.item(e.Path)+r.cfg.PostItem)
		}
		if len(items) == 0 {
			continue
		}
		rendered = append(rendered,
			r.cfg.PreLevel+r.cfg.ListHead+strings.Join(items, r.cfg.ItemSep)+r.cfg.ListFoot+r.cfg.PostLevel)
	}
	return strings.Join(rendered, r.cfg.LevelSep)
}

// marker renders an ancestor-marker group as a bracketed run of labels
// showing the route taken to reach the level.
func (r *renderer) marker(ancestors []string) string {
	labels := make([]string, 0, len(ancestors))
	for _, p := range ancestors {
		labels = append(labels, Label(p, r.opts.Labels))
	}
	return "[" + strings.Join(labels, " / ") + "]"
}
