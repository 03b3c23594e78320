package linklist

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fixturePaths = []string{
	"/foo/bar/baz.html",
	"/fooish.html",
	"/bringle/",
	"/tray/nav.html",
	"/tray/tea_tray.html",
}

func TestFullTreeSynthesizesRoot(t *testing.T) {
	got := FullTree(fixturePaths, Options{})
	want := `<ul><li><a href="/">Home</a>` + "\n" +
		`<ul><li><a href="/bringle/">Bringle</a></li>` + "\n" +
		`<li><a href="/foo/">Foo</a>` + "\n" +
		`<ul><li><a href="/foo/bar/">Bar</a>` + "\n" +
		`<ul><li><a href="/foo/bar/baz.html">Baz</a></li>` + "\n" +
		`</ul></li>` + "\n" +
		`</ul></li>` + "\n" +
		`<li><a href="/fooish.html">Fooish</a></li>` + "\n" +
		`<li><a href="/tray/">Tray</a>` + "\n" +
		`<ul><li><a href="/tray/nav.html">Nav</a></li>` + "\n" +
		`<li><a href="/tray/tea_tray.html">Tea Tray</a></li>` + "\n" +
		`</ul></li>` + "\n" +
		`</ul></li>` + "\n" +
		`</ul>`
	assert.Equal(t, want, got)
}

func TestFullTreeEmpty(t *testing.T) {
	assert.Equal(t, "", FullTree(nil, Options{}))
}

func TestFullTreeMarksCurrent(t *testing.T) {
	got := FullTree(fixturePaths, Options{CurrentURL: "/foo/bar/baz.html"})
	assert.Contains(t, got, "<em>Baz</em>")
	assert.Contains(t, got, `<strong><a href="/foo/">Foo</a></strong>`)
	assert.Contains(t, got, `<strong><a href="/">Home</a></strong>`)
	assert.NotContains(t, got, `<a href="/foo/bar/baz.html">`)
}

func TestFullTreeStartDepthDropsRoot(t *testing.T) {
	got := FullTree(fixturePaths, Options{StartDepth: 1})
	assert.NotContains(t, got, `<a href="/">`)
	assert.True(t, strings.HasPrefix(got, `<ul><li><a href="/bringle/">`), "tree starts at depth 1, got: %s", got)
}

func TestFullTreeEndDepth(t *testing.T) {
	got := FullTree(fixturePaths, Options{EndDepth: 2})
	assert.Contains(t, got, `<a href="/foo/bar/">`)
	assert.NotContains(t, got, "/foo/bar/baz.html")
}

func TestFullTreeHide(t *testing.T) {
	got := FullTree(fixturePaths, Options{Hide: `^/tray/`})
	assert.NotContains(t, got, "/tray/")
	assert.Contains(t, got, "/bringle/")
}

func TestFullTreeNoHideOverride(t *testing.T) {
	got := FullTree(fixturePaths, Options{Hide: `^/tray/`, NoHide: `nav\.html$`})
	assert.Contains(t, got, "/tray/nav.html")
	assert.NotContains(t, got, "tea_tray")
}

func TestFullTreeInvalidHideIsIgnored(t *testing.T) {
	prev := linklistLogger
	linklistLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	defer func() { linklistLogger = prev }()

	got := FullTree(fixturePaths, Options{Hide: `[unclosed`})
	assert.Contains(t, got, "/tray/nav.html", "invalid pattern must not filter anything")
}

func TestFullTreePreserveOrder(t *testing.T) {
	got := FullTree([]string{"/tray/nav.html", "/bringle/"}, Options{PreserveOrder: true})
	trayAt := strings.Index(got, "/tray/")
	bringleAt := strings.Index(got, "/bringle/")
	assert.Greater(t, bringleAt, trayAt, "input order kept: tray group before bringle")
}
