package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/navtools/linklist"
)

// SetupNavBarFlags creates and configures a FlagSet for the navbar command.
func SetupNavBarFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("navbar", flag.ContinueOnError)
	flags := &RenderFlags{}
	AddRenderFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools navbar [flags] [path ...]\n\n")
		Writef(output, "Render a navigation bar: one HTML list per depth level along the route\n")
		Writef(output, "to the current page, with the route so far bracketed at each deeper level.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  navtools navbar -current /foo/ -sitemap site.yaml\n")
		Writef(output, "  navtools navbar -current /docs/install.html /docs/install.html /docs/usage.html /about.html\n")
	}

	return fs, flags
}

// HandleNavBar executes the navbar command
func HandleNavBar(args []string) error {
	fs, flags := SetupNavBarFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	paths, opts, err := ResolveInputs(fs.Args(), flags, linklist.DefaultListFormat())
	if err != nil {
		fs.Usage()
		return err
	}

	return EmitRendered(linklist.NavBar(paths, opts), len(paths), flags)
}
