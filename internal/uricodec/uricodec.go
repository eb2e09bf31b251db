// Package uricodec converts between file:// URIs and absolute POSIX paths.
//
// The encoding is a reversible percent-encoding over RFC 3986's unreserved
// set plus '/', matching what editors expect from an LSP server's document
// URIs. It is intentionally hand-rolled rather than built on net/url: this
// package must round-trip any absolute path byte-for-byte, and net/url's
// path handling normalizes and lowercases in ways that would break that.
package uricodec

import "strings"

const filePrefix = "file://"

const hexDigits = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~', c == '/':
		return true
	}
	return false
}

// PathToFileURI percent-encodes p and prefixes it with "file://".
func PathToFileURI(p string) string {
	var b strings.Builder
	b.Grow(len(filePrefix) + len(p))
	b.WriteString(filePrefix)
	for i := 0; i < len(p); i++ {
		c := p[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0xF])
	}
	return b.String()
}

func fromHex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi := fromHex(s[i+1])
			lo := fromHex(s[i+2])
			if hi >= 0 && lo >= 0 {
				b.WriteByte(byte(hi<<4 | lo))
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// FileURIToPath decodes a file:// URI back to a path. Non-file:// input is
// returned unchanged, matching the original server's tolerant behavior.
func FileURIToPath(u string) string {
	if !strings.HasPrefix(u, filePrefix) {
		return u
	}
	return percentDecode(u[len(filePrefix):])
}
