package pathset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"root index collapses to root", "/index.html", "/"},
		{"nested index collapses to directory", "/foo/index.html", "/foo/"},
		{"index with other extension", "/foo/index.php", "/foo/"},
		{"leaf page unchanged", "/foo/bar/baz.html", "/foo/bar/baz.html"},
		{"directory unchanged", "/foo/", "/foo/"},
		{"extensionless path gains slash", "/foo", "/foo/"},
		{"nested extensionless path gains slash", "/foo/bar", "/foo/bar/"},
		{"root unchanged", "/", "/"},
		{"empty stays empty", "", ""},
		{"dotted segment not treated as directory", "/foo.d", "/foo.d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.input))
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"/index.html", "/foo/index.html", "/foo/bar/baz.html",
		"/foo/", "/foo", "/", "", "/a/b/c", "/tray/tea_tray.html",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		assert.Equal(t, once, Canonicalize(once), "Canonicalize should be idempotent for %q", in)
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"/", 0},
		{"", 0},
		{"/foo/", 1},
		{"/foo", 1},
		{"/foo/bar/", 2},
		{"/foo/bar/baz.html", 3},
		{"/fooish.html", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Depth(tt.input))
		})
	}
}

func TestIndexPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leaf strips filename", "/foo/bar/baz.html", "/foo/bar"},
		{"directory strips slash", "/foo/", "/foo"},
		{"extensionless treated as directory", "/foo", "/foo"},
		{"index page collapses first", "/foo/index.html", "/foo"},
		{"root stays root", "/", "/"},
		{"top-level leaf yields empty", "/baz.html", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexPath(tt.input))
		})
	}
}

func TestIndexParent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leaf yields grandparent directory", "/foo/bar/baz.html", "/foo"},
		{"directory yields parent", "/foo/bar/", "/foo"},
		{"top-level directory yields empty", "/foo/", ""},
		{"root yields empty", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexParent(tt.input))
		})
	}
}
