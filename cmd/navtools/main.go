package main

import (
	"fmt"
	"os"

	"github.com/erraggy/navtools"
	"github.com/erraggy/navtools/cmd/navtools/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("navtools v%s\n", navtools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "list":
		if err := commands.HandleList(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tree":
		if err := commands.HandleTree(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "breadcrumb":
		if err := commands.HandleBreadcrumb(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "navtree":
		if err := commands.HandleNavTree(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "navbar":
		if err := commands.HandleNavBar(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{
	"list", "tree", "breadcrumb", "navtree", "navbar", "mcp", "version", "help",
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within edit distance 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`navtools - HTML Navigation Tools

Usage:
  navtools <command> [options]

Commands:
  list        Render paths as a flat HTML list
  tree        Render the full site hierarchy as a nested HTML tree
  breadcrumb  Render the current page's ancestor chain as a breadcrumb trail
  navtree     Render a nested navigation tree scoped to the current page
  navbar      Render per-level navigation lists along the route to the current page
  mcp         Start an MCP server over stdio exposing the render operations
  version     Show version information
  help        Show this help message

Examples:
  navtools list /about.html /news/ /contact.html
  navtools tree -sitemap site.yaml
  navtools breadcrumb /foo/bar/baz.html
  navtools navtree -current /foo/bar.html -sitemap site.yaml
  navtools navbar -current /foo/ -sitemap site.yaml -out-format json

Run 'navtools <command> --help' for more information on a command.`)
}
