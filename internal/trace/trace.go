// Package trace implements the one-line-per-incoming-method trace log
// described in spec §6: enabled by CLANGD_TRACE or SLCLANGD_TRACE being set
// to anything other than "" or "0", written to an operator-chosen sink
// (stderr by default, or a --log-file/CLANGD_TRACE-as-path override).
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Logger is a mutex-guarded trace sink. The zero value is disabled and
// discards everything; only NewFromEnv sets the enabled flag.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
}

// NewFromEnv builds a Logger whose enabled state follows CLANGD_TRACE /
// SLCLANGD_TRACE (either set to a non-empty value other than "0" turns
// tracing on), writing to out.
func NewFromEnv(out io.Writer) *Logger {
	return &Logger{out: out, enabled: envEnabled("CLANGD_TRACE") || envEnabled("SLCLANGD_TRACE")}
}

func envEnabled(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0"
}

// SetOutput redirects trace output; nil disables writing (but leaves the
// enabled flag alone, matching --log-file only changing the sink).
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Enabled reports whether tracing is currently on.
func (l *Logger) Enabled() bool {
	if l == nil {
		return false
	}
	return l.enabled
}

// Method logs one incoming JSON-RPC method invocation, tagged with a short
// hash of method+idText for grepping a busy log. idText is the raw JSON
// text of the request id, or "" for a notification.
func (l *Logger) Method(method, idText string) {
	if l == nil || !l.enabled || l.out == nil {
		return
	}
	tag := requestTag(method, idText)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "LSP <= %s [%s]\n", method, tag)
}

// Line writes a free-form trace line, for the small number of internal
// events (e.g. cancellation delivery) worth recording outside the
// per-method log.
func (l *Logger) Line(format string, args ...interface{}) {
	if l == nil || !l.enabled || l.out == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format+"\n", args...)
}

func requestTag(method, idText string) string {
	h := xxhash.New()
	_, _ = h.WriteString(method)
	_, _ = h.WriteString(idText)
	return fmt.Sprintf("%08x", uint32(h.Sum64()))
}
