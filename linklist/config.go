package linklist

// FormatConfig controls the HTML fragments emitted around lists, items, and
// navigation-bar levels. Every field is independently settable and zero
// values are respected, so start from one of the Default*Format constructors
// when overriding only a few fields.
type FormatConfig struct {
	// ListHead and ListFoot wrap the outermost list.
	ListHead string `yaml:"list_head"`
	ListFoot string `yaml:"list_foot"`

	// SubListHead and SubListFoot wrap nested lists.
	SubListHead string `yaml:"sub_list_head"`
	SubListFoot string `yaml:"sub_list_foot"`

	// LastSubListHead and LastSubListFoot wrap a nested list that closes its
	// parent sequence, giving CSS a hook on the final subtree.
	LastSubListHead string `yaml:"last_sub_list_head"`
	LastSubListFoot string `yaml:"last_sub_list_foot"`

	// PreItem and PostItem wrap every item.
	PreItem  string `yaml:"pre_item"`
	PostItem string `yaml:"post_item"`

	// PreActive and PostActive decorate the current URL, which renders as a
	// label rather than a link.
	PreActive  string `yaml:"pre_active"`
	PostActive string `yaml:"post_active"`

	// PreCurrentParent and PostCurrentParent decorate links that are strict
	// ancestors of the current URL.
	PreCurrentParent  string `yaml:"pre_current_parent"`
	PostCurrentParent string `yaml:"post_current_parent"`

	// ItemSep separates sibling items. TreeSep separates a leaf from the
	// nested list that follows it.
	ItemSep string `yaml:"item_sep"`
	TreeSep string `yaml:"tree_sep"`

	// PreLevel and PostLevel wrap each navigation-bar level; LevelSep joins
	// consecutive levels.
	PreLevel  string `yaml:"pre_level"`
	PostLevel string `yaml:"post_level"`
	LevelSep  string `yaml:"level_sep"`
}

// DefaultListFormat returns the defaults used by FlatList, Tree, FullTree,
// NavTree, and NavBar: unordered lists with <li> items, <em> around the
// active item, <strong> around current-parent links, and newline separators.
func DefaultListFormat() FormatConfig {
	return FormatConfig{
		ListHead:          "<ul>",
		ListFoot:          "\n</ul>",
		SubListHead:       "<ul>",
		SubListFoot:       "\n</ul>",
		LastSubListHead:   "<ul>",
		LastSubListFoot:   "\n</ul>",
		PreItem:           "<li>",
		PostItem:          "</li>",
		PreActive:         "<em>",
		PostActive:        "</em>",
		PreCurrentParent:  "<strong>",
		PostCurrentParent: "</strong>",
		ItemSep:           "\n",
		TreeSep:           "\n",
		LevelSep:          "\n",
	}
}

// DefaultBreadcrumbFormat returns the defaults used by Breadcrumb: a single
// paragraph whose entries are joined by " &gt; ", with the current page
// decorated by <em>.
func DefaultBreadcrumbFormat() FormatConfig {
	return FormatConfig{
		ListHead:   "<p>",
		ListFoot:   "</p>",
		PreActive:  "<em>",
		PostActive: "</em>",
		TreeSep:    " &gt; ",
	}
}
