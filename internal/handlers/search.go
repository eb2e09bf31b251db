package handlers

import (
	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/search"
)

// runSearch dispatches to file-list or workspace search mode depending on
// how this server was launched, applying the configured extension filter in
// workspace mode (every slow handler uses the same list).
func (c *Context) runSearch(needle string, maxResults int, token *cancel.Token) []search.Match {
	if c.FileListMode() {
		return search.RunFiles(c.Files, needle, maxResults, token)
	}
	return search.RunWorkspace(c.rootDir(), needle, maxResults, c.extensions(), token)
}
