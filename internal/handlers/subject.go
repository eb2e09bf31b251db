package handlers

import (
	"github.com/standardbeagle/slclangd/internal/heuristics"
	"github.com/standardbeagle/slclangd/internal/uricodec"
)

// subject is the resolved cursor-under-word context shared by hover,
// definition, and references (§4.G step 2).
type subject struct {
	Symbol       string
	CurrentAbs   string
	CurrentLine1 int
}

// resolveSubject extracts and validates the word at (uri, line0, ch0): the
// document must be open, the cursor must not sit inside a "//" comment, and
// the extracted word must not be a stop word. ok is false for any of those
// "no result" cases (§4.E, §4.G, §7).
func (c *Context) resolveSubject(uri string, line0, ch0 int) (subject, bool) {
	text, ok := c.Docs.Get(uri)
	if !ok {
		return subject{}, false
	}
	if line, ok := heuristics.LineAt(text, line0); ok && heuristics.IsInLineComment(line, ch0) {
		return subject{}, false
	}
	sym := heuristics.WordAt(text, line0, ch0)
	if heuristics.IsStopWord(sym, c.extraStopWords()) {
		return subject{}, false
	}
	return subject{
		Symbol:       sym,
		CurrentAbs:   c.makeAbsolute(uricodec.FileURIToPath(uri)),
		CurrentLine1: line0 + 1,
	}, true
}

func buildLocation(abs string, line1, col0, symLen int) Location {
	return Location{
		URI: uricodec.PathToFileURI(abs),
		Range: Range{
			Start: Position{Line: line1 - 1, Character: col0},
			End:   Position{Line: line1 - 1, Character: col0 + symLen},
		},
	}
}
