package handlers

import (
	"encoding/json"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/rank"
)

const definitionCap = 20

// definitionStrongScore is the minimum declaration-shape score a match must
// clear to count as a "strong" hit (§4.G, §9).
const definitionStrongScore = 60

// Definition handles "textDocument/definition": if exactly one ranked
// match clears the strong-hit threshold, return only it so the editor can
// jump directly; otherwise return every ranked location. Does not bias
// toward the current file (§4.G, §9 open question 2).
func (c *Context) Definition(rawParams json.RawMessage, token *cancel.Token) (interface{}, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return nil, nil
	}

	subj, ok := c.resolveSubject(params.TextDocument.URI, params.Position.Line, params.Position.Character)
	if !ok {
		return nil, nil
	}

	matches := c.runSearch(subj.Symbol, definitionCap, token)
	if len(matches) == 0 {
		return nil, nil
	}

	ranked := rank.Rank(matches, rank.Options{
		Needle:         subj.Symbol,
		CurrentAbsPath: subj.CurrentAbs,
		CurrentLine1:   subj.CurrentLine1,
		MakeAbsolute:   c.makeAbsolute,
	})
	if len(ranked) == 0 {
		return nil, nil
	}

	strongIdx, strongCount := -1, 0
	for i, r := range ranked {
		if r.Score >= definitionStrongScore {
			strongCount++
			strongIdx = i
			if strongCount > 1 {
				break
			}
		}
	}

	if strongCount == 1 {
		r := ranked[strongIdx]
		return []Location{buildLocation(r.AbsolutePath, r.Line, r.Column, len(subj.Symbol))}, nil
	}

	locs := make([]Location, 0, len(ranked))
	for _, r := range ranked {
		locs = append(locs, buildLocation(r.AbsolutePath, r.Line, r.Column, len(subj.Symbol)))
	}
	return locs, nil
}
