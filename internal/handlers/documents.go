package handlers

import "encoding/json"

type textDocumentItem struct {
	URI  string `json:"uri"`
	Text string `json:"text"`
}

type didOpenParams struct {
	TextDocument textDocumentItem `json:"textDocument"`
}

type contentChange struct {
	Text string `json:"text"`
}

type didChangeParams struct {
	TextDocument    TextDocumentIdentifier `json:"textDocument"`
	ContentChanges  []contentChange        `json:"contentChanges"`
}

type didCloseParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FileStatusNotification is the optional textDocument/clangd.fileStatus
// payload emitted after open/change when the client opted in.
type FileStatusNotification struct {
	URI   string `json:"uri"`
	State string `json:"state"`
}

// DidOpen records the document's full text. It returns the notification to
// send iff clangdFileStatus was enabled during initialize.
func (c *Context) DidOpen(rawParams json.RawMessage) *FileStatusNotification {
	var params didOpenParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return nil
	}
	c.Docs.Open(params.TextDocument.URI, params.TextDocument.Text)
	return c.fileStatusIfEnabled(params.TextDocument.URI)
}

// DidChange replaces the document's full text (full-sync mode: only the
// first contentChanges entry is consulted, per §3).
func (c *Context) DidChange(rawParams json.RawMessage) *FileStatusNotification {
	var params didChangeParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return nil
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	c.Docs.Change(params.TextDocument.URI, params.ContentChanges[0].Text)
	return c.fileStatusIfEnabled(params.TextDocument.URI)
}

// DidClose removes the document from the registry.
func (c *Context) DidClose(rawParams json.RawMessage) {
	var params didCloseParams
	if err := json.Unmarshal(rawParams, &params); err != nil || params.TextDocument.URI == "" {
		return
	}
	c.Docs.Close(params.TextDocument.URI)
}

func (c *Context) fileStatusIfEnabled(uri string) *FileStatusNotification {
	if !c.ClangdFileStatusEnabled() {
		return nil
	}
	return &FileStatusNotification{URI: uri, State: "Idle"}
}
