// Package sitemap loads YAML site descriptions for the render operations.
//
// A sitemap document lists the paths of a site plus optional display
// metadata:
//
//	paths:
//	  - /foo/bar/baz.html
//	  - /fooish.html
//	  - /bringle/
//	labels:
//	  /fooish.html: Foo-ish Things
//	descriptions:
//	  /bringle/: everything about bringles
//	current: /fooish.html
//
// Load reads a document from a file (or stdin via "-"), and Options converts
// it into the linklist.Options shared by the render operations. LoadFormat
// overlays a partial YAML format file onto a FormatConfig, so a file only
// needs the fields it changes.
package sitemap
