package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/navtools/linklist"
	"github.com/erraggy/navtools/sitemap"
)

// SetupBreadcrumbFlags creates and configures a FlagSet for the breadcrumb command.
func SetupBreadcrumbFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("breadcrumb", flag.ContinueOnError)
	flags := &RenderFlags{}
	AddRenderFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools breadcrumb [flags] [current-url]\n\n")
		Writef(output, "Render the current page's ancestor chain as a breadcrumb trail,\n")
		Writef(output, "root first, with the current page decorated rather than linked.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  navtools breadcrumb /foo/bar/baz.html\n")
		Writef(output, "  navtools breadcrumb -sitemap site.yaml\n")
		Writef(output, "  navtools breadcrumb -format crumbs.yaml /foo/bar/\n")
	}

	return fs, flags
}

// HandleBreadcrumb executes the breadcrumb command
func HandleBreadcrumb(args []string) error {
	fs, flags := SetupBreadcrumbFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("breadcrumb command takes at most one current URL argument")
	}

	current := flags.Current
	if fs.NArg() == 1 {
		current = fs.Arg(0)
	}

	opts := linklist.Options{}
	if flags.Sitemap != "" {
		sm, err := sitemap.Load(flags.Sitemap)
		if err != nil {
			return fmt.Errorf("loading sitemap: %w", err)
		}
		if current == "" {
			current = sm.Current
		}
		opts.Labels = sm.Labels
	}
	if current == "" {
		fs.Usage()
		return fmt.Errorf("no current URL provided: pass it as an argument, via -current, or in the sitemap")
	}

	if flags.FormatFile != "" {
		cfg, err := sitemap.LoadFormat(flags.FormatFile, linklist.DefaultBreadcrumbFormat())
		if err != nil {
			return fmt.Errorf("loading format file: %w", err)
		}
		opts.Format = cfg
	}

	return EmitRendered(linklist.Breadcrumb(current, opts), 1, flags)
}
