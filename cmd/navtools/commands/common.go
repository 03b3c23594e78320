// Package commands provides CLI command handlers for navtools.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/navtools/internal/cliutil"
	"github.com/erraggy/navtools/linklist"
	"github.com/erraggy/navtools/sitemap"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// RenderFlags contains the flags shared by all render commands.
type RenderFlags struct {
	Sitemap       string
	Current       string
	Hide          string
	NoHide        string
	StartDepth    int
	EndDepth      int
	PreserveOrder bool
	FormatFile    string
	Output        string
	OutFormat     string
}

// AddRenderFlags binds the shared render flags to the FlagSet.
func AddRenderFlags(fs *flag.FlagSet, flags *RenderFlags) {
	fs.StringVar(&flags.Sitemap, "sitemap", "", "YAML sitemap file providing paths and metadata ('-' for stdin)")
	fs.StringVar(&flags.Current, "current", "", "the current page's URL path")
	fs.StringVar(&flags.Hide, "hide", "", "regex: matching paths are hidden unless -nohide matches")
	fs.StringVar(&flags.NoHide, "nohide", "", "regex overriding -hide for matching paths")
	fs.IntVar(&flags.StartDepth, "start-depth", 0, "minimum depth to include")
	fs.IntVar(&flags.EndDepth, "end-depth", 0, "maximum depth to include")
	fs.BoolVar(&flags.PreserveOrder, "preserve-order", false, "keep input path order instead of sorting")
	fs.StringVar(&flags.FormatFile, "format", "", "YAML file overriding format fields (e.g. list_head, pre_active)")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.OutFormat, "out-format", FormatText, "output format: text, json, or yaml")
}

// ResolveInputs combines positional path arguments with an optional sitemap
// file and the shared flags into the effective path set and render options.
// defaultFormat is the operation's FormatConfig the -format file overlays.
func ResolveInputs(args []string, flags *RenderFlags, defaultFormat linklist.FormatConfig) ([]string, linklist.Options, error) {
	opts := linklist.Options{
		CurrentURL:    flags.Current,
		Hide:          flags.Hide,
		NoHide:        flags.NoHide,
		StartDepth:    flags.StartDepth,
		EndDepth:      flags.EndDepth,
		PreserveOrder: flags.PreserveOrder,
	}

	paths := args
	if flags.Sitemap != "" {
		sm, err := sitemap.Load(flags.Sitemap)
		if err != nil {
			return nil, linklist.Options{}, fmt.Errorf("loading sitemap: %w", err)
		}
		if len(paths) == 0 {
			paths = sm.Paths
		}
		if opts.CurrentURL == "" {
			opts.CurrentURL = sm.Current
		}
		opts.Labels = sm.Labels
		opts.Descriptions = sm.Descriptions
	}
	if len(paths) == 0 {
		return nil, linklist.Options{}, fmt.Errorf("no paths provided: pass paths as arguments or use -sitemap")
	}

	if flags.FormatFile != "" {
		cfg, err := sitemap.LoadFormat(flags.FormatFile, defaultFormat)
		if err != nil {
			return nil, linklist.Options{}, fmt.Errorf("loading format file: %w", err)
		}
		opts.Format = cfg
	}

	return paths, opts, nil
}

// RenderResult is the structured output shape for json and yaml out-formats.
type RenderResult struct {
	HTML      string `json:"html"       yaml:"html"`
	PathCount int    `json:"path_count" yaml:"path_count"`
}

// EmitRendered writes the rendered HTML according to the output flags: plain
// text to -output or stdout, or a structured document for json/yaml.
func EmitRendered(html string, pathCount int, flags *RenderFlags) error {
	if err := ValidateOutputFormat(flags.OutFormat); err != nil {
		return err
	}
	if flags.OutFormat == FormatText {
		return cliutil.WriteOutput(flags.Output, html)
	}
	if flags.Output != "" && flags.Output != StdinFilePath {
		// structured output goes to stdout; redirecting it to a file is the
		// shell's job
		Writef(os.Stderr, "Warning: -output is ignored with -out-format %s\n", flags.OutFormat)
	}
	return OutputStructured(RenderResult{HTML: html, PathCount: pathCount}, flags.OutFormat)
}
