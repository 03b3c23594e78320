package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/navtools/linklist"
)

// SetupNavTreeFlags creates and configures a FlagSet for the navtree command.
func SetupNavTreeFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("navtree", flag.ContinueOnError)
	flags := &RenderFlags{}
	AddRenderFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools navtree [flags] [path ...]\n\n")
		Writef(output, "Render a nested navigation tree scoped around the current page:\n")
		Writef(output, "its ancestors, itself, its children and siblings, plus top-level entries.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  navtools navtree -current /foo/bar.html -sitemap site.yaml\n")
		Writef(output, "  navtools navtree -current /docs/ /docs/install.html /docs/usage.html /about.html\n")
	}

	return fs, flags
}

// HandleNavTree executes the navtree command
func HandleNavTree(args []string) error {
	fs, flags := SetupNavTreeFlags()

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

	return EmitRendered(linklist.NavTree(paths, opts), len(paths), flags)
}
