package handlers

import (
	"encoding/json"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/rank"
)

const referencesCap = 50

// References handles "textDocument/references": return every ranked
// location, biased toward the current file. Never returns null — an empty
// result is the empty array (§7).
func (c *Context) References(rawParams json.RawMessage, token *cancel.Token) (interface{}, error) {
	out := make([]Location, 0)

	var params TextDocumentPositionParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return out, nil
	}

	subj, ok := c.resolveSubject(params.TextDocument.URI, params.Position.Line, params.Position.Character)
	if !ok {
		return out, nil
	}

	matches := c.runSearch(subj.Symbol, referencesCap, token)
	if len(matches) == 0 {
		return out, nil
	}

	ranked := rank.Rank(matches, rank.Options{
		Needle:         subj.Symbol,
		CurrentAbsPath: subj.CurrentAbs,
		CurrentLine1:   subj.CurrentLine1,
		PreferAbsPath:  subj.CurrentAbs,
		MakeAbsolute:   c.makeAbsolute,
	})
	for _, r := range ranked {
		out = append(out, buildLocation(r.AbsolutePath, r.Line, r.Column, len(subj.Symbol)))
	}
	return out, nil
}
