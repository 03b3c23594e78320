// Package pathset provides URL path arithmetic for navigation rendering:
// canonicalization, depth computation, ancestor expansion, and the
// current-URL context used to classify paths while filtering and rendering.
//
// Paths are site-relative URL strings using '/' as the hierarchy separator.
// A path ending in '/' denotes a directory (index) page; a path whose last
// segment carries a file extension denotes a leaf page. All functions are
// total over well-formed path strings and never return errors; behavior on
// malformed paths (empty segments, backslashes) is unspecified.
package pathset
