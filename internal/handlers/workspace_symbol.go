package handlers

import (
	"encoding/json"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/rank"
)

const workspaceSymbolCap = 50

// WorkspaceSymbol handles "workspace/symbol": search for query as a fixed
// string and report every ranked hit as a SymbolInformation. Never returns
// null — an empty result is the empty array (§7).
func (c *Context) WorkspaceSymbol(rawParams json.RawMessage, token *cancel.Token) (interface{}, error) {
	var params WorkspaceSymbolParams
	if len(rawParams) > 0 {
		_ = json.Unmarshal(rawParams, &params)
	}

	out := make([]SymbolInformation, 0)
	if params.Query == "" {
		return out, nil
	}

	matches := c.runSearch(params.Query, workspaceSymbolCap, token)
	ranked := rank.Rank(matches, rank.Options{
		Needle:       params.Query,
		MakeAbsolute: c.makeAbsolute,
	})

	for _, r := range ranked {
		out = append(out, SymbolInformation{
			Name:          params.Query,
			Kind:          symbolKindVariable,
			Location:      buildLocation(r.AbsolutePath, r.Line, r.Column, len(params.Query)),
			ContainerName: r.AbsolutePath,
		})
	}
	return out, nil
}
