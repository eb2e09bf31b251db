// Package heuristics implements the pure lexical scoring rules the search
// executor and ranker use in place of real parsing: column resolution,
// word-at-cursor extraction, comment/string-literal filtering, the
// stop-word list, and the declaration-shape scorer.
//
// None of this parses C/C++; it is deliberately a set of line-local,
// byte-oriented heuristics, matching the original grep-backed server this
// package is ported from.
package heuristics

import "strings"

// FindColumn0 returns the 0-based byte offset of needle's first "code"
// occurrence in line, or -1 to reject the line entirely.
//
// A line whose first two non-whitespace characters are "//" is rejected
// outright (comment-only line). Otherwise each occurrence of needle is
// tested in turn: an occurrence is rejected if it falls inside a
// double-quoted string, tracked by toggling an in-string flag on every
// unescaped '"' seen before it (a '"' is escaped iff preceded by an odd
// number of consecutive backslashes). This does not understand block
// comments, raw string literals, or character literals; matches inside
// those are not filtered.
func FindColumn0(line, needle string) int {
	if needle == "" {
		return 0
	}

	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i+1 < len(line) && line[i] == '/' && line[i+1] == '/' {
		return -1
	}

	searchFrom := 0
	for {
		pos := strings.Index(line[searchFrom:], needle)
		if pos < 0 {
			return -1
		}
		pos += searchFrom

		inString := false
		for j := 0; j < pos; j++ {
			if line[j] == '"' && !isEscapedQuote(line, j) {
				inString = !inString
			}
		}
		if !inString {
			return pos
		}
		searchFrom = pos + 1
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isEscapedQuote reports whether the '"' at pos in s is escaped: preceded
// by an odd number of consecutive backslashes.
func isEscapedQuote(s string, pos int) bool {
	backslashes := 0
	for pos > 0 && s[pos-1] == '\\' {
		backslashes++
		pos--
	}
	return backslashes%2 == 1
}

// IsInLineComment reports whether column col0 (0-based) in line falls at
// or after a "//" that starts outside any double-quoted string. It shares
// the same string-toggle scan as FindColumn0, evaluated fresh for this
// single line, so an unterminated string on a different line can never
// leak state into this call.
func IsInLineComment(line string, col0 int) bool {
	if col0 < 0 {
		return false
	}
	col := col0
	if col > len(line) {
		col = len(line)
	}

	inString := false
	for j := 0; j+1 < len(line); j++ {
		if line[j] == '"' && !isEscapedQuote(line, j) {
			inString = !inString
		}
		if !inString && line[j] == '/' && line[j+1] == '/' {
			return col >= j
		}
	}
	return false
}
