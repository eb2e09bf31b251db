package heuristics

// WordAt returns the maximal contiguous run of [A-Za-z0-9_] characters on
// the line0'th (0-based) line of text covering column ch0 (0-based byte
// column). If ch0 sits exactly at end-of-line (one past the last
// character), the cursor is backed up by one column first, so a cursor
// placed immediately after the last character of a word still identifies
// that word. Returns "" if no word is adjacent, or if line0/ch0 is out of
// range.
func WordAt(text string, line0, ch0 int) string {
	if line0 < 0 || ch0 < 0 {
		return ""
	}
	line, ok := lineAt(text, line0)
	if !ok {
		return ""
	}

	c := ch0
	if c > len(line) {
		c = len(line)
	}

	l := c
	if l > 0 && l == len(line) {
		l--
	}
	for l > 0 && !isWord(line[l]) && isWord(line[l-1]) {
		l--
	}

	start := l
	for start > 0 && isWord(line[start-1]) {
		start--
	}
	end := l
	for end < len(line) && isWord(line[end]) {
		end++
	}
	if end <= start {
		return ""
	}
	return line[start:end]
}

func isWord(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// LineAt returns the line0'th (0-based) line of text, without its
// terminating newline, and whether that line exists. Exported for callers
// that need the raw line text alongside WordAt, e.g. the comment filter.
func LineAt(text string, line0 int) (string, bool) {
	return lineAt(text, line0)
}

// lineAt returns the line0'th (0-based) line of text, without its
// terminating newline, and whether that line exists.
func lineAt(text string, line0 int) (string, bool) {
	cur := 0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			if cur == line0 {
				return text[start:i], true
			}
			cur++
			start = i + 1
		}
	}
	return "", false
}
