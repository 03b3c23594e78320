package mcpserver

import (
	"fmt"

	"github.com/erraggy/navtools/linklist"
	"github.com/erraggy/navtools/sitemap"
)

// siteInput carries the path set and display metadata shared by the render
// tools. Paths come inline or from a YAML sitemap file; inline fields
// override the sitemap's.
type siteInput struct {
	Paths         []string          `json:"paths,omitempty"          jsonschema:"URL paths to render, e.g. /foo/bar.html or /foo/"`
	Sitemap       string            `json:"sitemap,omitempty"        jsonschema:"Path to a YAML sitemap file providing paths and metadata"`
	Current       string            `json:"current,omitempty"        jsonschema:"The current page's URL path"`
	Labels        map[string]string `json:"labels,omitempty"         jsonschema:"Display labels keyed by path"`
	Descriptions  map[string]string `json:"descriptions,omitempty"   jsonschema:"Annotations keyed by path, shown after the link"`
	Hide          string            `json:"hide,omitempty"           jsonschema:"Regex; matching paths are hidden unless nohide matches"`
	NoHide        string            `json:"nohide,omitempty"         jsonschema:"Regex overriding hide for matching paths"`
	StartDepth    int               `json:"start_depth,omitempty"    jsonschema:"Minimum depth to include"`
	EndDepth      int               `json:"end_depth,omitempty"      jsonschema:"Maximum depth to include"`
	PreserveOrder bool              `json:"preserve_order,omitempty" jsonschema:"Keep input path order instead of sorting"`
}

// resolve loads the sitemap when given and merges it under the inline
// fields, returning the effective path set and render options.
func (s siteInput) resolve() ([]string, linklist.Options, error) {
	paths := s.Paths
	opts := linklist.Options{
		CurrentURL:    s.Current,
		Labels:        s.Labels,
		Descriptions:  s.Descriptions,
		Hide:          s.Hide,
		NoHide:        s.NoHide,
		StartDepth:    s.StartDepth,
		EndDepth:      s.EndDepth,
		PreserveOrder: s.PreserveOrder || cfg.PreserveOrder,
	}
	if s.Sitemap != "" {
		sm, err := sitemap.Load(s.Sitemap)
		if err != nil {
			return nil, linklist.Options{}, err
		}
		if len(paths) == 0 {
			paths = sm.Paths
		}
		if opts.CurrentURL == "" {
			opts.CurrentURL = sm.Current
		}
		opts.Labels = mergeMaps(sm.Labels, opts.Labels)
		opts.Descriptions = mergeMaps(sm.Descriptions, opts.Descriptions)
	}

	if len(paths) == 0 {
		return nil, linklist.Options{}, fmt.Errorf("no paths provided: set paths or a sitemap file with a paths list")
	}
	return paths, opts, nil
}

// mergeMaps overlays override onto base without mutating either.
func mergeMaps(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	if len(base) == 0 {
		return override
	}
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
