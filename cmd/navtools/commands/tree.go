package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/navtools/linklist"
)

// SetupTreeFlags creates and configures a FlagSet for the tree command.
func SetupTreeFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	flags := &RenderFlags{}
	AddRenderFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools tree [flags] [path ...]\n\n")
		Writef(output, "Render the full site hierarchy as a nested HTML tree.\n")
		Writef(output, "Missing ancestor directories (including the root) are synthesized.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  navtools tree -sitemap site.yaml\n")
		Writef(output, "  navtools tree -start-depth 1 /foo/bar.html /foo/baz.html\n")
		Writef(output, "  navtools tree -hide '^/drafts/' -sitemap site.yaml\n")
	}

	return fs, flags
}

// HandleTree executes the tree command
func HandleTree(args []string) error {
	fs, flags := SetupTreeFlags()

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

	return EmitRendered(linklist.FullTree(paths, opts), len(paths), flags)
}
