// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteOutput writes content to the named file, or to stdout when path is
// empty or "-". A trailing newline is added when content lacks one.
func WriteOutput(path, content string) error {
	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}
	if path == "" || path == "-" {
		Writef(os.Stdout, "%s", content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
