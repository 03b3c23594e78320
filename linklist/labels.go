package linklist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label returns the display label for path: the labels entry when present,
// otherwise a prettified form of the last path segment.
func Label(path string, labels map[string]string) string {
	if l, ok := labels[path]; ok {
		return l
	}
	return prettify(path)
}

// prettify derives a label from the last non-empty path segment: the file
// extension is stripped, underscores become spaces, and each word is
// title-cased. The root path yields "Home".
func prettify(path string) string {
	seg := lastSegment(path)
	if seg == "" {
		return "Home"
	}
	if i := strings.LastIndex(seg, "."); i > 0 {
		seg = seg[:i]
	}
	seg = strings.ReplaceAll(seg, "_", " ")
	return cases.Title(language.English).String(seg)
}

func lastSegment(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}
