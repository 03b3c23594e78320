package sitemap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/navtools/linklist"
)

// StdinPath is the file argument that reads the document from stdin.
const StdinPath = "-"

// ErrNoPaths is returned when a document parses but lists no paths.
var ErrNoPaths = errors.New("sitemap has no paths")

// Sitemap is a parsed site description.
type Sitemap struct {
	// Paths lists the site's URL paths. Required.
	Paths []string `yaml:"paths"`

	// Labels maps paths to display labels.
	Labels map[string]string `yaml:"labels"`

	// Descriptions maps paths to annotations shown after the link.
	Descriptions map[string]string `yaml:"descriptions"`

	// Current is the page being rendered, overridable per call.
	Current string `yaml:"current"`
}

// Load reads and parses a sitemap document from path, or from stdin when
// path is StdinPath.
func Load(path string) (*Sitemap, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a sitemap document from raw YAML.
func Parse(data []byte) (*Sitemap, error) {
	var sm Sitemap
	if err := yaml.Unmarshal(data, &sm); err != nil {
		return nil, fmt.Errorf("sitemap: failed to parse document: %w", err)
	}
	if len(sm.Paths) == 0 {
		return nil, fmt.Errorf("sitemap: %w", ErrNoPaths)
	}
	return &sm, nil
}

// Options returns render options populated from the document's metadata.
// CurrentURL is taken from the document's current field.
func (sm *Sitemap) Options() linklist.Options {
	return linklist.Options{
		CurrentURL:   sm.Current,
		Labels:       sm.Labels,
		Descriptions: sm.Descriptions,
	}
}

// LoadFormat reads a partial YAML format file and overlays it onto base.
// Fields absent from the file keep base's values.
func LoadFormat(path string, base linklist.FormatConfig) (*linklist.FormatConfig, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sitemap: failed to parse format file: %w", err)
	}
	return &cfg, nil
}

func readInput(path string) ([]byte, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("sitemap: failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sitemap: failed to read file: %w", err)
	}
	return data, nil
}
