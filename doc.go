// Package navtools provides tools for turning collections of URL paths into
// nested HTML link structures.
//
// navtools formats flat lists of site-relative URL paths (plus optional label
// and description maps) into flat link lists, nested trees, breadcrumb
// trails, and multi-level navigation bars. The page currently being rendered
// is marked specially (decorated, not linked) so navigation output can be
// generated from a single sitemap regardless of which page consumes it.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - pathset: canonicalize URL paths, compute depth, and expand a path list
//     into its ancestor-directory closure
//   - navtree: filter an expanded path set for a view and fold it into a
//     nested tree or per-depth level groups
//   - linklist: render trees, lists, breadcrumbs, and navigation bars as
//     HTML fragments with configurable formatting
//
// A sitemap package loads path/label/description documents from YAML.
//
// # Quick Start
//
// Render a full site tree:
//
//	import "github.com/erraggy/navtools/linklist"
//
//	html := linklist.FullTree([]string{
//		"/about/contact.html",
//		"/products/widgets.html",
//	}, linklist.Options{CurrentURL: "/about/contact.html"})
//	fmt.Println(html)
//
// Render a breadcrumb trail for the current page:
//
//	html := linklist.Breadcrumb("/products/widgets.html", linklist.Options{})
//
// Render a navigation bar scoped to the current page's ancestors, siblings,
// and children:
//
//	html := linklist.NavBar(paths, linklist.Options{CurrentURL: "/products/"})
//
// # Formatting
//
// Every operation accepts a FormatConfig whose string fields control the
// emitted HTML (list head/foot, per-item wrappers, active and current-parent
// decorations, separators). Each operation has documented defaults; pass
// Options.Format to override them. See the linklist package documentation.
//
// # CLI Tool
//
// The navtools command provides list, tree, breadcrumb, navtree, and navbar
// subcommands over YAML sitemap files, plus an MCP server exposing the same
// operations to MCP clients:
//
//	navtools tree -sitemap site.yaml -current /about/
//	navtools navbar -sitemap site.yaml -current /products/widgets.html
//	navtools mcp
//
// # Design
//
// All rendering operations are pure functions of their inputs: no I/O, no
// shared mutable state, no errors for well-formed string inputs. Empty input
// renders to an empty string. The packages are safe for concurrent use from
// independent call sites.
package navtools
