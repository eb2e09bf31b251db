// Package session implements the JSON-RPC dispatcher described in
// SPEC_FULL.md §4.F: a single-threaded framed-message read loop, an
// in-flight registry for the four search-driven requests, cancellation
// wiring down to a running search child, and mutex-serialized writes.
package session

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/handlers"
	"github.com/standardbeagle/slclangd/internal/rpc"
	"github.com/standardbeagle/slclangd/internal/rpcerr"
	"github.com/standardbeagle/slclangd/internal/trace"
)

// Engine owns the read loop, the in-flight registry, and the single write
// mutex. One Engine serves exactly one editor connection over stdio.
type Engine struct {
	reader *rpc.Reader
	writer *rpc.Writer
	trace  *trace.Logger
	ctx    *handlers.Context

	inflightMu sync.Mutex
	inflight   map[string]*cancel.Token

	shutdownReceived bool
}

// New builds an Engine reading framed messages from r and writing framed
// responses/notifications to w, dispatching to ctx's handlers.
func New(r io.Reader, w io.Writer, ctx *handlers.Context, tr *trace.Logger) *Engine {
	return &Engine{
		reader:   rpc.NewReader(r),
		writer:   rpc.NewWriter(w),
		trace:    tr,
		ctx:      ctx,
		inflight: make(map[string]*cancel.Token),
	}
}

// Run reads and dispatches messages until EOF or "exit". It returns the
// process exit code: 0 iff "shutdown" was received before the stream ended,
// else 1 (§4.F, §6).
func (e *Engine) Run() int {
	for {
		body, err := e.reader.ReadMessage()
		if err != nil {
			break
		}
		if body == "" {
			continue
		}

		var msg rpc.RawMessage
		if jsonErr := json.Unmarshal([]byte(body), &msg); jsonErr != nil || msg.Method == "" {
			continue
		}

		e.trace.Method(msg.Method, msg.IDKey())

		if msg.HasID() {
			e.dispatchRequest(msg)
			continue
		}
		if e.dispatchNotification(msg) {
			break
		}
	}
	return e.exitCode()
}

func (e *Engine) exitCode() int {
	if e.shutdownReceived {
		return 0
	}
	return 1
}

func (e *Engine) writeResult(id json.RawMessage, result interface{}) {
	resp, err := rpc.NewResultResponse(id, result)
	if err != nil {
		e.writeError(id, rpcerr.NewInternal(err))
		return
	}
	e.write(resp)
}

func (e *Engine) writeError(id json.RawMessage, err *rpcerr.Error) {
	e.write(rpc.NewErrorResponse(id, int(err.Code), err.Error()))
}

func (e *Engine) write(resp rpc.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = e.writer.WriteMessage(b)
}

func (e *Engine) notify(method string, params interface{}) {
	n := rpc.Notification{JSONRPC: "2.0", Method: method, Params: params}
	b, err := json.Marshal(n)
	if err != nil {
		return
	}
	_ = e.writer.WriteMessage(b)
}
