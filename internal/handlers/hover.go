package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/rank"
)

const hoverCap = 20

// Hover handles "textDocument/hover": resolves the word under the cursor,
// searches for it, and reports the best-ranked hit (biased toward the
// current file) as a Markdown code block. Returns nil for any "no result"
// case (§7).
func (c *Context) Hover(rawParams json.RawMessage, token *cancel.Token) (interface{}, error) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return nil, nil
	}

	subj, ok := c.resolveSubject(params.TextDocument.URI, params.Position.Line, params.Position.Character)
	if !ok {
		return nil, nil
	}

	matches := c.runSearch(subj.Symbol, hoverCap, token)
	if len(matches) == 0 {
		return nil, nil
	}

	ranked := rank.Rank(matches, rank.Options{
		Needle:         subj.Symbol,
		CurrentAbsPath: subj.CurrentAbs,
		CurrentLine1:   subj.CurrentLine1,
		PreferAbsPath:  subj.CurrentAbs,
		MakeAbsolute:   c.makeAbsolute,
	})
	if len(ranked) == 0 {
		return nil, nil
	}

	best := ranked[0]
	return Hover{
		Contents: MarkupContent{
			Kind: "markdown",
			Value: fmt.Sprintf("**super-lazy-clangd** (grep)\n\nFound `%s:%d`\n\n```cpp\n%s\n```",
				best.AbsolutePath, best.Line, best.Text),
		},
		Range: Range{
			Start: params.Position,
			End:   params.Position,
		},
	}, nil
}
