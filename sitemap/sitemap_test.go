package sitemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/navtools/linklist"
)

const sampleDoc = `paths:
  - /foo/bar/baz.html
  - /fooish.html
  - /bringle/
labels:
  /fooish.html: Foo-ish Things
descriptions:
  /bringle/: everything about bringles
current: /fooish.html
`

func TestParse(t *testing.T) {
	sm, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, []string{"/foo/bar/baz.html", "/fooish.html", "/bringle/"}, sm.Paths)
	assert.Equal(t, "Foo-ish Things", sm.Labels["/fooish.html"])
	assert.Equal(t, "everything about bringles", sm.Descriptions["/bringle/"])
	assert.Equal(t, "/fooish.html", sm.Current)
}

func TestParseNoPaths(t *testing.T) {
	_, err := Parse([]byte("labels:\n  /a: A\n"))
	assert.ErrorIs(t, err, ErrNoPaths)

	_, err = Parse([]byte(""))
	assert.ErrorIs(t, err, ErrNoPaths)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("paths: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	sm, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sm.Paths, 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestOptions(t *testing.T) {
	sm, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	opts := sm.Options()
	assert.Equal(t, "/fooish.html", opts.CurrentURL)
	assert.Equal(t, sm.Labels, opts.Labels)
	assert.Equal(t, sm.Descriptions, opts.Descriptions)
}

func TestLoadFormatOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "format.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pre_active: '<b>'\npost_active: '</b>'\n"), 0o600))

	cfg, err := LoadFormat(path, linklist.DefaultListFormat())
	require.NoError(t, err)
	assert.Equal(t, "<b>", cfg.PreActive)
	assert.Equal(t, "</b>", cfg.PostActive)
	assert.Equal(t, "<ul>", cfg.ListHead, "fields absent from the file keep base values")
}

func TestLoadFormatInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "format.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - bad"), 0o600))

	_, err := LoadFormat(path, linklist.DefaultListFormat())
	require.Error(t, err)
}
