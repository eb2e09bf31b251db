package heuristics

import "strings"

// primitiveTypeTokens are the lowercase primitive/return-type tokens whose
// presence immediately before a function-like needle boosts its score.
var primitiveTypeTokens = map[string]struct{}{
	"void": {}, "bool": {}, "char": {}, "short": {}, "int": {}, "long": {},
	"float": {}, "double": {}, "signed": {}, "unsigned": {},
	"wchar_t": {}, "char8_t": {}, "char16_t": {}, "char32_t": {},
	"size_t": {}, "ssize_t": {},
	"int8_t": {}, "uint8_t": {}, "int16_t": {}, "uint16_t": {},
	"int32_t": {}, "uint32_t": {}, "int64_t": {}, "uint64_t": {},
	"intptr_t": {}, "uintptr_t": {},
	"u8": {}, "u16": {}, "u32": {}, "u64": {},
	"s8": {}, "s16": {}, "s32": {}, "s64": {},
}

// Score computes the declaration-shape score for a match line, given the
// 0-based column of needle within line. A negative column short-circuits
// to a heavily-penalized score; a column past the end of line is treated as
// end of line.
func Score(line string, col0 int, needle string) int {
	if col0 < 0 {
		return -100000
	}
	if col0 > len(line) {
		col0 = len(line)
	}
	score := 0

	if start, ok := macroNameStartIfDefine(line); ok && start == col0 {
		score += 100
	}

	if isWSOrBOLBefore(line, col0) {
		score += 25
	}

	if prevNonSpace(line, col0) == '>' {
		score += 20
	}

	end := col0 + len(needle)
	if end < 0 {
		end = 0
	}
	if end > len(line) {
		end = len(line)
	}

	if end < len(line) && line[end] == ';' {
		score += 40
	}

	j := end
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	if j < len(line) && line[j] == '(' {
		score += 60
		prev := prevIdentifier(line, col0)
		if _, ok := primitiveTypeTokens[prev]; ok {
			score += 30
		}
	}

	return score
}

func isWSOrBOLBefore(line string, col0 int) bool {
	if col0 <= 0 {
		return true
	}
	c := line[col0-1]
	return c == ' ' || c == '\t'
}

func prevNonSpace(line string, before int) byte {
	k := before
	for k > 0 {
		c := line[k-1]
		if c != ' ' && c != '\t' {
			return c
		}
		k--
	}
	return 0
}

// prevIdentifier walks left from `before`, skipping whitespace and a small
// set of interleaved punctuation (`*`, `&`, `:`, `<`, `>`, `,`, `(`), then
// collects and lowercases the identifier-looking token immediately to the
// left of that.
func prevIdentifier(line string, before int) string {
	k := before
	for k > 0 && (line[k-1] == ' ' || line[k-1] == '\t') {
		k--
	}
	for k > 0 {
		c := line[k-1]
		if c == '*' || c == '&' || c == ':' || c == '<' || c == '>' || c == ',' || c == '(' {
			k--
			continue
		}
		break
	}
	for k > 0 && (line[k-1] == ' ' || line[k-1] == '\t') {
		k--
	}

	end := k
	for k > 0 {
		c := line[k-1]
		if isWord(c) {
			k--
			continue
		}
		break
	}
	if end <= k {
		return ""
	}
	return strings.ToLower(line[k:end])
}

// macroNameStartIfDefine reports the byte offset of the macro name in a
// `#define NAME ...` line, if line is such a line.
func macroNameStartIfDefine(line string) (int, bool) {
	i := 0
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i >= len(line) || line[i] != '#' {
		return 0, false
	}
	i++
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	const define = "define"
	if i+len(define) > len(line) {
		return 0, false
	}
	if line[i:i+len(define)] != define {
		return 0, false
	}
	i += len(define)
	if i < len(line) && !isSpace(line[i]) {
		return 0, false
	}
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	if i >= len(line) {
		return 0, false
	}
	return i, true
}
