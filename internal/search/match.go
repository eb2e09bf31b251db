// Package search drives an external fixed-string recursive search tool
// (grep) as a supervised child process, streams and parses its output, and
// applies the per-line admission filter from internal/heuristics.
package search

// Match is a single parsed grep record. Column is 0-based and may be -1,
// meaning "filtered out — do not emit" (callers of RunWorkspace and
// RunFiles never see -1: the
// admission filter drops those lines before they reach the result slice).
type Match struct {
	Path   string
	Line   int
	Column int
	Text   string
}
