package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/navtools/linklist"
)

// SetupListFlags creates and configures a FlagSet for the list command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupListFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	flags := &RenderFlags{}
	AddRenderFlags(fs, flags)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: navtools list [flags] [path ...]\n\n")
		Writef(output, "Render paths as a flat HTML list in their given order.\n")
		Writef(output, "The current page renders as a decorated label instead of a link.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  navtools list /about.html /news/ /contact.html\n")
		Writef(output, "  navtools list -current /about.html -sitemap site.yaml\n")
		Writef(output, "  navtools list -out-format json -sitemap site.yaml\n")
	}

	return fs, flags
}

// HandleList executes the list command
func HandleList(args []string) error {
	fs, flags := SetupListFlags()

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

	return EmitRendered(linklist.FlatList(paths, opts), len(paths), flags)
}
