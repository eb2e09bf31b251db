package search

import (
	"bufio"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/heuristics"
)

// toolName is the external fixed-string recursive search executable,
// discovered on PATH like any other subprocess.
const toolName = "grep"

// excludedDirs are always skipped in workspace mode.
var excludedDirs = []string{"build", ".git"}

// RunWorkspace searches root recursively for needle, restricted to the
// given comma-separated extensions (a leading '.' on each is tolerated and
// stripped). extensions may be empty to search all files. Returns at most
// maxResults matches, honoring token's cancellation.
func RunWorkspace(root, needle string, maxResults int, extensions string, token *cancel.Token) []Match {
	if needle == "" || maxResults <= 0 {
		return []Match{}
	}
	if token != nil && token.Cancelled() {
		return []Match{}
	}

	globs := extensionGlobs(extensions)

	args := []string{"-R", "-I", "-n", "--binary-files=without-match", "--color=never"}
	for _, d := range excludedDirs {
		args = append(args, "--exclude-dir="+d)
	}
	for _, ext := range splitExtensions(extensions) {
		args = append(args, "--include=*."+ext)
	}
	args = append(args, "-F", "--", needle, root)

	return runGrep(args, needle, maxResults, token, globs)
}

// RunFiles searches exactly the given files for needle, in the order
// grep reports them. Returns at most maxResults matches.
func RunFiles(files []string, needle string, maxResults int, token *cancel.Token) []Match {
	if needle == "" || maxResults <= 0 || len(files) == 0 {
		return []Match{}
	}
	if token != nil && token.Cancelled() {
		return []Match{}
	}

	args := []string{"-n", "-H", "--binary-files=without-match", "--color=never", "-F", "--", needle}
	args = append(args, files...)

	return runGrep(args, needle, maxResults, token, nil)
}

func splitExtensions(extensions string) []string {
	if extensions == "" {
		return nil
	}
	var out []string
	for _, ext := range strings.Split(extensions, ",") {
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		out = append(out, ext)
	}
	return out
}

// extensionGlobs builds the doublestar patterns used to re-validate every
// match grep reports, so a misbehaving or unusually-configured grep can't
// leak a match from an excluded extension into the result set.
func extensionGlobs(extensions string) []string {
	exts := splitExtensions(extensions)
	if len(exts) == 0 {
		return nil
	}
	globs := make([]string, len(exts))
	for i, ext := range exts {
		globs[i] = "*." + ext
	}
	return globs
}

func matchesAnyGlob(path string, globs []string) bool {
	if len(globs) == 0 {
		return true
	}
	base := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		base = path[i+1:]
	}
	for _, g := range globs {
		if ok, err := doublestar.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}

// runGrep spawns grep with args, streams its stdout+stderr line by line,
// parses path:line:text records, applies the admission filter, and
// enforces cap + cancellation. It always reaps the child.
func runGrep(args []string, needle string, maxResults int, token *cancel.Token, extGlobs []string) []Match {
	out := make([]Match, 0)

	r, w, err := os.Pipe()
	if err != nil {
		return out
	}

	cmd := exec.Command(toolName, args...)
	cmd.Stdout = w
	cmd.Stderr = w

	if err := cmd.Start(); err != nil {
		w.Close()
		r.Close()
		return out
	}
	w.Close()
	defer r.Close()

	if token != nil {
		token.SetPID(cmd.Process.Pid)
		defer token.SetPID(0)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	collected := 0
	for scanner.Scan() {
		if token != nil && token.Cancelled() {
			_ = cmd.Process.Signal(syscall.SIGTERM)
			break
		}

		path, lineText, text, ok := splitFirstTwoColons(scanner.Text())
		if !ok {
			continue
		}
		lineNo, err := strconv.Atoi(lineText)
		if err != nil || lineNo <= 0 {
			continue
		}
		if !matchesAnyGlob(path, extGlobs) {
			continue
		}

		col := heuristics.FindColumn0(text, needle)
		if col < 0 {
			continue
		}

		out = append(out, Match{Path: path, Line: lineNo, Column: col, Text: text})
		collected++
		if collected >= maxResults {
			_ = cmd.Process.Signal(syscall.SIGTERM)
			break
		}
	}

	_ = cmd.Wait()

	// Partial results are returned as-is; discarding them on cancellation
	// is the caller's responsibility (the worker that owns this token), not
	// the executor's.
	return out
}

// splitFirstTwoColons splits s on its first two ':' characters into path,
// line number text, and the remainder. Lines without two colons don't
// parse.
func splitFirstTwoColons(s string) (path, lineText, rest string, ok bool) {
	p1 := strings.IndexByte(s, ':')
	if p1 < 0 {
		return "", "", "", false
	}
	p2 := strings.IndexByte(s[p1+1:], ':')
	if p2 < 0 {
		return "", "", "", false
	}
	p2 += p1 + 1
	return s[:p1], s[p1+1 : p2], s[p2+1:], true
}
