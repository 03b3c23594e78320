package linklist

// Options carries the per-call inputs shared by the render operations. The
// zero value is usable: no current URL, no label overrides, no filtering,
// and the operation's default format.
type Options struct {
	// CurrentURL is the path of the page being rendered. It is decorated
	// rather than linked, and navigation views are scoped around it.
	CurrentURL string

	// Labels maps paths to display labels. Paths without an entry fall back
	// to a prettified form of their last segment.
	Labels map[string]string

	// Descriptions maps paths to annotations appended after the link text.
	Descriptions map[string]string

	// Hide is a regular expression; matching paths are excluded unless they
	// also match NoHide. An invalid pattern is ignored with a warning.
	Hide string

	// NoHide overrides Hide for matching paths.
	NoHide string

	// StartDepth excludes paths shallower than this depth. NavTree and
	// NavBar default it to 1.
	StartDepth int

	// EndDepth excludes paths deeper than this depth when positive. NavTree
	// and NavBar default it to one level below the current URL.
	EndDepth int

	// PreserveOrder keeps the input path order when expanding the path set
	// instead of sorting alphabetically.
	PreserveOrder bool

	// Format overrides the operation's default FormatConfig.
	Format *FormatConfig
}
