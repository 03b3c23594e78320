// Package linklist renders URL path collections as HTML link structures:
// flat lists, nested trees, breadcrumb trails, and navigation bars.
//
// Every operation takes the paths to render plus an Options value carrying
// the current URL, label and description maps, filter patterns, depth
// bounds, and an optional FormatConfig override, and returns an HTML
// fragment ("" when there is nothing to render). The current URL is never
// linked; it renders as a decorated label. Strict ancestors of the current
// URL render as decorated links.
//
// # Operations
//
//   - FlatList: the paths in order, one list item each
//   - Tree: an explicitly nested navtree.Node structure
//   - FullTree: the whole path set expanded into a site tree under "/"
//   - Breadcrumb: the current URL's ancestor chain
//   - NavTree: a nested tree scoped to the current URL's neighborhood
//   - NavBar: per-depth sibling groups along the route to the current URL
//
// # Labels
//
// A path's display label comes from the Labels map when present, otherwise
// from its last segment: the extension is stripped, underscores become
// spaces, and words are title-cased ("/tray/tea_tray.html" becomes
// "Tea Tray"). The root "/" prettifies to "Home".
package linklist
