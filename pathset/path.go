package pathset

import (
	"regexp"
	"strings"
)

// indexFileRe matches a path whose final segment is an index file, e.g.
// "/foo/index.html". The capture is the enclosing directory including its
// trailing slash (the root index captures "/").
var indexFileRe = regexp.MustCompile(`^(.*/)index\.\w+$`)

// leafFileRe matches a path whose final segment is a file with an extension,
// e.g. "/foo/bar.html". The capture is the directory prefix without a
// trailing slash.
var leafFileRe = regexp.MustCompile(`^(.*)/[^/]+\.\w+$`)

// Canonicalize normalizes a path for comparisons. An index file collapses to
// its enclosing directory ("/foo/index.html" -> "/foo/"), and an
// extensionless path without a trailing slash is treated as a directory and
// given one ("/foo" -> "/foo/"). Any other path is returned unchanged.
// Canonicalize is idempotent.
func Canonicalize(path string) string {
	if path == "" {
		return ""
	}
	if m := indexFileRe.FindStringSubmatch(path); m != nil {
		return m[1]
	}
	if !strings.HasSuffix(path, "/") {
		last := path[strings.LastIndex(path, "/")+1:]
		if !strings.Contains(last, ".") {
			return path + "/"
		}
	}
	return path
}

// Depth returns the number of non-empty segments in path. The root "/" has
// depth 0; "/foo/bar/baz.html" has depth 3.
func Depth(path string) int {
	n := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// IndexPath returns the directory a path's index belongs to, without a
// trailing slash: the leaf filename is stripped from a file path
// ("/foo/bar/baz.html" -> "/foo/bar"), and one trailing slash is stripped
// from a directory path ("/foo/" -> "/foo"). The root stays "/". A
// root-level file yields "".
func IndexPath(path string) string {
	p := Canonicalize(path)
	if m := leafFileRe.FindStringSubmatch(p); m != nil {
		return m[1]
	}
	if p == "/" {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// IndexParent returns the directory one level above IndexPath, without a
// trailing slash ("/foo/bar/baz.html" -> "/foo"). Paths with no enclosing
// directory above the root yield "".
func IndexParent(path string) string {
	p := IndexPath(path)
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return ""
	}
	return p[:i]
}
