// Package docstore holds the open-document registry: a map from document
// URI to its current full text. Mutations happen only on the main
// dispatch thread (from notification handlers) under a write lock; reads
// from background search workers take a read lock — a worker snapshots the
// text it needs once, early, before spawning a search.
package docstore

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Store is the open-document registry.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{docs: make(map[string]string)}
}

// Open records or wholly replaces the text of uri (didOpen).
func (s *Store) Open(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = text
}

// Change wholly replaces the text of uri (full-sync didChange). It is a
// no-op if uri isn't open.
func (s *Store) Change(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[uri]; !ok {
		return
	}
	s.docs[uri] = text
}

// Close removes uri from the registry (didClose).
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the current text of uri and whether it exists. Safe to call
// from any goroutine; per spec this may race with a concurrent didChange,
// which is tolerated because callers snapshot once, early.
func (s *Store) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[uri]
	return text, ok
}

// Digest returns a short hex fast-hash of uri's current text, for trace
// logging only (e.g. "did this edit actually change the bytes?"). Returns
// "" if uri isn't open.
func (s *Store) Digest(uri string) string {
	text, ok := s.Get(uri)
	if !ok {
		return ""
	}
	sum := xxhash.Sum64String(text)
	return uint64Hex(sum)
}

func uint64Hex(v uint64) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		b[i] = hex[v&0xF]
		v >>= 4
	}
	return string(b)
}
