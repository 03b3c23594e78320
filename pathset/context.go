package pathset

import "strings"

// Context captures everything about the current URL that filtering and
// rendering need: its canonical form, depth, directory-ness, strict ancestor
// set, and index directory/parent. A Context is built once per operation and
// never mutated afterwards.
type Context struct {
	// Raw is the current URL exactly as supplied by the caller.
	Raw string
	// Canonical is the normalized form used for comparisons.
	Canonical string
	// Depth is the canonical form's segment count.
	Depth int
	// IsDirectory reports whether the canonical form is a directory (index)
	// page.
	IsDirectory bool
	// Parents is the set of strict ancestor directory paths.
	Parents map[string]bool
	// IndexPath is the current URL's index directory, without trailing slash.
	IndexPath string
	// IndexParent is the directory one level above IndexPath.
	IndexParent string
}

// NewContext derives a Context from currentURL. An empty URL yields an empty
// context whose predicates all report false.
func NewContext(currentURL string) *Context {
	if currentURL == "" {
		return &Context{Parents: map[string]bool{}}
	}
	cu := Canonicalize(currentURL)
	return &Context{
		Raw:         currentURL,
		Canonical:   cu,
		Depth:       Depth(cu),
		IsDirectory: strings.HasSuffix(cu, "/"),
		Parents:     CurrentParents(currentURL),
		IndexPath:   IndexPath(currentURL),
		IndexParent: IndexParent(currentURL),
	}
}

// Empty reports whether the context was built without a current URL.
func (c *Context) Empty() bool {
	return c.Canonical == ""
}

// IsCurrent reports whether path is the current URL, in raw or canonical
// form.
func (c *Context) IsCurrent(path string) bool {
	return !c.Empty() && (path == c.Raw || path == c.Canonical)
}

// IsParent reports whether path is a strict ancestor directory of the
// current URL.
func (c *Context) IsParent(path string) bool {
	return c.Parents[path]
}
