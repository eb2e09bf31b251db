package handlers

import (
	"encoding/json"

	"github.com/standardbeagle/slclangd/internal/uricodec"
)

type initializeParams struct {
	RootURI               string          `json:"rootUri"`
	RootPath              string          `json:"rootPath"`
	InitializationOptions json.RawMessage `json:"initializationOptions"`
}

type initializationOptions struct {
	ClangdFileStatus bool `json:"clangdFileStatus"`
}

type textDocumentSyncCapability struct {
	OpenClose bool `json:"openClose"`
	Change    int  `json:"change"`
}

type serverCapabilities struct {
	TextDocumentSync        textDocumentSyncCapability `json:"textDocumentSync"`
	HoverProvider           bool                        `json:"hoverProvider"`
	DefinitionProvider      bool                        `json:"definitionProvider"`
	ReferencesProvider      bool                        `json:"referencesProvider"`
	WorkspaceSymbolProvider bool                        `json:"workspaceSymbolProvider"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	Capabilities serverCapabilities `json:"capabilities"`
	ServerInfo   serverInfo         `json:"serverInfo"`
}

// syncTextDocumentChangeFull is the LSP TextDocumentSyncKind.Full value: the
// only sync mode this server understands (§4.F: "wholly replaced").
const syncTextDocumentChangeFull = 1

// Initialize handles the synchronous "initialize" request: it derives
// whichever of rootUri/rootPath is missing from the other, records the
// optional clangdFileStatus opt-in, and replies with this server's fixed
// capability set.
func (c *Context) Initialize(rawParams json.RawMessage) (interface{}, error) {
	var params initializeParams
	if len(rawParams) > 0 {
		_ = json.Unmarshal(rawParams, &params)
	}

	rootURI := params.RootURI
	rootPath := params.RootPath
	if rootPath == "" && rootURI != "" {
		rootPath = uricodec.FileURIToPath(rootURI)
	}
	if rootURI == "" && rootPath != "" {
		rootURI = uricodec.PathToFileURI(rootPath)
	}
	if rootPath != "" {
		c.setRoot(rootPath)
	}
	c.reloadConfigFromRoot()

	if len(params.InitializationOptions) > 0 {
		var opts initializationOptions
		if err := json.Unmarshal(params.InitializationOptions, &opts); err == nil {
			c.setClangdFileStatus(opts.ClangdFileStatus)
		}
	}

	return initializeResult{
		Capabilities: serverCapabilities{
			TextDocumentSync:        textDocumentSyncCapability{OpenClose: true, Change: syncTextDocumentChangeFull},
			HoverProvider:           true,
			DefinitionProvider:      true,
			ReferencesProvider:      true,
			WorkspaceSymbolProvider: true,
		},
		ServerInfo: serverInfo{Name: "super-lazy-clangd", Version: "0.1.0"},
	}, nil
}
