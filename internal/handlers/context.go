package handlers

import (
	"path/filepath"
	"sync"

	"github.com/standardbeagle/slclangd/internal/config"
	"github.com/standardbeagle/slclangd/internal/docstore"
)

// Context is the shared state every handler reads: the workspace root (or
// explicit file list, in --files mode), the open-document registry, and the
// operator config. root/cfg/clangdFileStatus are set once by Initialize on
// the main thread but read by concurrently-running workers afterward, so
// they're guarded the same way internal/docstore guards its map.
type Context struct {
	Docs *docstore.Store
	// Files, when non-empty, puts every slow handler into file-list search
	// mode instead of recursive workspace mode. Set once at construction
	// from the CLI's --files flag; never mutated afterward.
	Files []string

	mu               sync.RWMutex
	root             string
	cfg              config.Config
	clangdFileStatus bool
}

// NewContext builds a Context. files may be nil for workspace mode. cfg is
// the startup default; Initialize may refine it by loading .slclangd.toml
// from the now-known workspace root.
func NewContext(cfg config.Config, files []string) *Context {
	return &Context{Docs: docstore.New(), Files: files, root: ".", cfg: cfg}
}

func (c *Context) setRoot(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if root != "" {
		c.root = root
	}
}

func (c *Context) rootDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// reloadConfigFromRoot re-resolves the operator config against the
// now-known workspace root (§2: ".slclangd.toml searched for in the
// workspace root at initialize time"). No-op in file-list mode.
func (c *Context) reloadConfigFromRoot() {
	if c.FileListMode() {
		return
	}
	cfg := config.LoadFromRoot(c.rootDir())
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
}

func (c *Context) extensions() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.Extensions
}

func (c *Context) extraStopWords() map[string]struct{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.ExtraStopWords
}

func (c *Context) setClangdFileStatus(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clangdFileStatus = v
}

// ClangdFileStatusEnabled reports whether the client opted into
// textDocument/clangd.fileStatus notifications during initialize.
func (c *Context) ClangdFileStatusEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clangdFileStatus
}

// FileListMode reports whether this server was launched with an explicit
// file list rather than a workspace root.
func (c *Context) FileListMode() bool {
	return len(c.Files) > 0
}

// makeAbsolute resolves a (possibly relative) result path from the search
// tool to an absolute, lexically-normalized path, joining against the
// workspace root when relative.
func (c *Context) makeAbsolute(p string) string {
	if p == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(c.rootDir(), p))
}
