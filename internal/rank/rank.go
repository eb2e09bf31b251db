// Package rank turns a stream of lexical grep matches into an ordered list
// approximating "declaration/definition first, then references", per the
// heuristics in internal/heuristics.
package rank

import (
	"sort"

	"github.com/standardbeagle/slclangd/internal/heuristics"
	"github.com/standardbeagle/slclangd/internal/search"
)

// Match wraps a search.Match with its computed score and absolute path.
type Match struct {
	search.Match
	Score        int
	AbsolutePath string
}

// Options configures a ranking pass.
type Options struct {
	// Needle is the search term the matches were found for; its length
	// determines symbol-range widths in callers, and it's passed to the
	// scorer.
	Needle string
	// CurrentAbsPath/CurrentLine1 identify the cursor's own location: any
	// match at that exact (path, line) is dropped ("user is already
	// there"). Both must be non-empty/positive to take effect.
	CurrentAbsPath string
	CurrentLine1   int
	// PreferAbsPath, if non-empty, adds +10 to any match at that absolute
	// path. Hover and references set this to the cursor's file; definition
	// leaves it empty so declaration-shape alone decides ranking.
	PreferAbsPath string
	// MakeAbsolute resolves a (possibly relative) match path to an
	// absolute, lexically-normalized path.
	MakeAbsolute func(string) string
}

// Rank filters and stably sorts matches per Options, returning a
// non-nil (possibly empty) slice.
func Rank(matches []search.Match, opts Options) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		abs := m.Path
		if opts.MakeAbsolute != nil {
			abs = opts.MakeAbsolute(m.Path)
		}
		if opts.CurrentAbsPath != "" && opts.CurrentLine1 > 0 {
			if abs == opts.CurrentAbsPath && m.Line == opts.CurrentLine1 {
				continue
			}
		}
		score := heuristics.Score(m.Text, m.Column, opts.Needle)
		if opts.PreferAbsPath != "" && abs == opts.PreferAbsPath {
			score += 10
		}
		out = append(out, Match{Match: m, Score: score, AbsolutePath: abs})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.AbsolutePath != b.AbsolutePath {
			return a.AbsolutePath < b.AbsolutePath
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}
