package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/navtools/linklist"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func writeSitemapFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestResolveInputs_ArgsOnly(t *testing.T) {
	flags := &RenderFlags{Current: "/a.html", Hide: `^/b/`}
	paths, opts, err := ResolveInputs([]string{"/a.html", "/b/"}, flags, linklist.DefaultListFormat())
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.html", "/b/"}, paths)
	assert.Equal(t, "/a.html", opts.CurrentURL)
	assert.Equal(t, `^/b/`, opts.Hide)
	assert.Nil(t, opts.Format)
}

func TestResolveInputs_Sitemap(t *testing.T) {
	path := writeSitemapFile(t, `paths:
  - /a.html
  - /b/
labels:
  /a.html: Alpha
current: /a.html
`)
	flags := &RenderFlags{Sitemap: path}
	paths, opts, err := ResolveInputs(nil, flags, linklist.DefaultListFormat())
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.html", "/b/"}, paths)
	assert.Equal(t, "/a.html", opts.CurrentURL)
	assert.Equal(t, "Alpha", opts.Labels["/a.html"])
}

func TestResolveInputs_ArgsOverrideSitemapPaths(t *testing.T) {
	path := writeSitemapFile(t, "paths:\n  - /a.html\n")
	flags := &RenderFlags{Sitemap: path, Current: "/c.html"}
	paths, opts, err := ResolveInputs([]string{"/c.html"}, flags, linklist.DefaultListFormat())
	require.NoError(t, err)
	assert.Equal(t, []string{"/c.html"}, paths)
	assert.Equal(t, "/c.html", opts.CurrentURL)
}

func TestResolveInputs_NoPaths(t *testing.T) {
	_, _, err := ResolveInputs(nil, &RenderFlags{}, linklist.DefaultListFormat())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no paths provided")
}

func TestResolveInputs_FormatFile(t *testing.T) {
	dir := t.TempDir()
	formatPath := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(formatPath, []byte("pre_active: '<b>'\n"), 0o600))

	flags := &RenderFlags{FormatFile: formatPath}
	_, opts, err := ResolveInputs([]string{"/a.html"}, flags, linklist.DefaultListFormat())
	require.NoError(t, err)
	require.NotNil(t, opts.Format)
	assert.Equal(t, "<b>", opts.Format.PreActive)
	assert.Equal(t, "<ul>", opts.Format.ListHead, "unset fields keep the operation defaults")
}

func TestResolveInputs_MissingSitemap(t *testing.T) {
	flags := &RenderFlags{Sitemap: filepath.Join(t.TempDir(), "nope.yaml")}
	_, _, err := ResolveInputs(nil, flags, linklist.DefaultListFormat())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading sitemap")
}

func TestEmitRendered_TextToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.html")
	flags := &RenderFlags{Output: out, OutFormat: FormatText}
	require.NoError(t, EmitRendered("<ul></ul>", 2, flags))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<ul></ul>\n", string(data))
}

func TestEmitRendered_InvalidFormat(t *testing.T) {
	flags := &RenderFlags{OutFormat: "xml"}
	assert.Error(t, EmitRendered("<ul></ul>", 1, flags))
}
