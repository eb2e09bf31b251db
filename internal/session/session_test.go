package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/slclangd/internal/config"
	"github.com/standardbeagle/slclangd/internal/handlers"
	"github.com/standardbeagle/slclangd/internal/trace"
)

// TestMain verifies no goroutine outlives its test: every runEngine caller
// waits on the returned channel before returning, so an Engine's read loop
// (and any in-flight search worker it spawned) must have already exited.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// syncBuffer lets the test poll the server's output stream concurrently
// with the engine's own writer mutex.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func frame(t *testing.T, obj interface{}) string {
	t.Helper()
	b, err := json.Marshal(obj)
	require.NoError(t, err)
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(b), b)
}

func requireGrep(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("grep"); err != nil {
		t.Skip("grep not found on PATH")
	}
}

func waitFor(t *testing.T, out *syncBuffer, needle string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), needle) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in output:\n%s", needle, out.String())
}

// runEngine starts e.Run() on its own goroutine and returns a channel
// delivering its exit code, so every test can wait for the read loop to
// actually terminate before returning (no goroutine outlives its test).
func runEngine(e *Engine) <-chan int {
	done := make(chan int, 1)
	go func() { done <- e.Run() }()
	return done
}

func waitDone(t *testing.T, done <-chan int) int {
	t.Helper()
	select {
	case code := <-done:
		return code
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not exit in time")
		return -1
	}
}

func TestScenario1_InitializeShutdownHandshake(t *testing.T) {
	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), nil)
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "method": "initialize",
			"params": map[string]interface{}{"rootUri": "file:///tmp/x", "capabilities": map[string]interface{}{}},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "id": 2, "method": "shutdown"}))
		io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	}()

	code := waitDone(t, done)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), `"hoverProvider":true`)
	assert.Contains(t, out.String(), `"id":2`)
}

func TestScenario2_HoverOnUnknownDocument(t *testing.T) {
	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), nil)
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 10, "method": "textDocument/hover",
			"params": map[string]interface{}{
				"textDocument": map[string]interface{}{"uri": "file:///no/such"},
				"position":     map[string]interface{}{"line": 0, "character": 0},
			},
		}))
	}()

	waitFor(t, out, `"id":10`)
	assert.Contains(t, out.String(), `"result":null`)

	io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	waitDone(t, done)
}

func TestScenario3_WorkspaceSymbolEmptyQueryNoSpawn(t *testing.T) {
	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), []string{"/nonexistent/file.c"})
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 3, "method": "workspace/symbol",
			"params": map[string]interface{}{"query": ""},
		}))
	}()

	waitFor(t, out, `"id":3`)
	assert.Contains(t, out.String(), `"result":[]`)

	io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	waitDone(t, done)
}

func TestScenario4_Cancellation(t *testing.T) {
	requireGrep(t)
	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), []string{"/nonexistent/file.c"})
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": "abc", "method": "workspace/symbol",
			"params": map[string]interface{}{"query": "compute"},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "method": "$/cancelRequest",
			"params": map[string]interface{}{"id": "abc"},
		}))
	}()

	waitFor(t, out, `-32800`)
	assert.Contains(t, out.String(), "Request cancelled")

	// The server must still process subsequent requests normally.
	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "id": 99, "method": "shutdown"}))
	}()
	waitFor(t, out, `"id":99`)

	io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	assert.Equal(t, 0, waitDone(t, done))
}

func TestScenario5_RankingFavorsDefine(t *testing.T) {
	requireGrep(t)
	dir := t.TempDir()
	writeSourceFile(t, dir, "a.h", "#define FOO 1\n// FOO is fine\nx = \"FOO\";\n")

	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), nil)
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "method": "initialize",
			"params": map[string]interface{}{"rootPath": dir},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "method": "textDocument/didOpen",
			"params": map[string]interface{}{
				"textDocument": map[string]interface{}{"uri": "file:///cursor.c", "text": "int y = FOO;\n"},
			},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 2, "method": "textDocument/hover",
			"params": map[string]interface{}{
				"textDocument": map[string]interface{}{"uri": "file:///cursor.c"},
				"position":     map[string]interface{}{"line": 0, "character": 9},
			},
		}))
	}()

	waitFor(t, out, `"id":2`)
	assert.Contains(t, out.String(), "#define FOO 1")

	io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	waitDone(t, done)
}

func writeSourceFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestExitCode_WithoutShutdownIsOne(t *testing.T) {
	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), nil)
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	}()

	assert.Equal(t, 1, waitDone(t, done))
}

func TestScenario6_SingleStrongHitDefinitionReturnsOneLocation(t *testing.T) {
	requireGrep(t)
	dir := t.TempDir()
	writeSourceFile(t, dir, "a.c", "int compute(int x) {\n  return x;\n}\n"+
		"// compute\n// compute\n// compute\n// compute\n// compute\n")

	in, inW := io.Pipe()
	out := &syncBuffer{}
	ctx := handlers.NewContext(config.Defaults(), nil)
	e := New(in, out, ctx, trace.NewFromEnv(nil))

	done := runEngine(e)

	go func() {
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 1, "method": "initialize",
			"params": map[string]interface{}{"rootPath": dir},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "method": "textDocument/didOpen",
			"params": map[string]interface{}{
				"textDocument": map[string]interface{}{"uri": "file:///cursor.c", "text": "int y = compute(1);\n"},
			},
		}))
		io.WriteString(inW, frame(t, map[string]interface{}{
			"jsonrpc": "2.0", "id": 2, "method": "textDocument/definition",
			"params": map[string]interface{}{
				"textDocument": map[string]interface{}{"uri": "file:///cursor.c"},
				"position":     map[string]interface{}{"line": 0, "character": 9},
			},
		}))
	}()

	waitFor(t, out, `"id":2`)
	body := out.String()
	assert.Equal(t, 1, strings.Count(body, `"uri":"file://`+dir))

	io.WriteString(inW, frame(t, map[string]interface{}{"jsonrpc": "2.0", "method": "exit"}))
	waitDone(t, done)
}
