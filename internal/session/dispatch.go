package session

import (
	"encoding/json"

	"github.com/standardbeagle/slclangd/internal/cancel"
	"github.com/standardbeagle/slclangd/internal/rpc"
	"github.com/standardbeagle/slclangd/internal/rpcerr"
)

// asyncHandler is the shape every search-driven handler shares: it's given
// its raw params and a cancellation token to thread down into the search
// executor, and returns a JSON-able result (which may itself be nil/empty).
type asyncHandler func(rawParams json.RawMessage, token *cancel.Token) (interface{}, error)

// dispatchRequest routes one request-shaped message. Synchronous methods
// reply inline; the four search-driven methods register an in-flight entry
// and run on a fresh goroutine, per §4.F.
func (e *Engine) dispatchRequest(msg rpc.RawMessage) {
	switch msg.Method {
	case "initialize":
		e.replySync(msg.ID, func() (interface{}, error) { return e.ctx.Initialize(msg.Params) })
	case "shutdown":
		e.shutdownReceived = true
		e.replySync(msg.ID, func() (interface{}, error) { return nil, nil })
	case "workspace/executeCommand", "textDocument/switchSourceHeader":
		e.replySync(msg.ID, func() (interface{}, error) { return nil, nil })
	case "workspace/symbol":
		e.dispatchAsync(msg, e.ctx.WorkspaceSymbol)
	case "textDocument/hover":
		e.dispatchAsync(msg, e.ctx.Hover)
	case "textDocument/definition":
		e.dispatchAsync(msg, e.ctx.Definition)
	case "textDocument/references":
		e.dispatchAsync(msg, e.ctx.References)
	default:
		e.writeError(msg.ID, rpcerr.NewMethodNotFound(msg.Method))
	}
}

// replySync runs fn inline, converting a panic (a handler "exception") into
// an internal-error response rather than letting it escape the dispatcher,
// matching §4.F/§7's "no exception ever escapes to the transport".
func (e *Engine) replySync(id json.RawMessage, fn func() (interface{}, error)) {
	result, err := e.callGuarded(fn)
	if err != nil {
		e.writeError(id, rpcerr.NewInternal(err))
		return
	}
	e.writeResult(id, result)
}

func (e *Engine) dispatchAsync(msg rpc.RawMessage, handler asyncHandler) {
	token := cancel.New()
	key := msg.IDKey()
	e.inflightMu.Lock()
	e.inflight[key] = token
	e.inflightMu.Unlock()

	go func() {
		defer e.removeInflight(key)

		result, err := e.callGuarded(func() (interface{}, error) { return handler(msg.Params, token) })

		if token.Cancelled() {
			e.writeError(msg.ID, rpcerr.NewCancelled())
			return
		}
		if err != nil {
			e.writeError(msg.ID, rpcerr.NewInternal(err))
			return
		}
		e.writeResult(msg.ID, result)
	}()
}

// callGuarded recovers a panicking handler into an error, so a single bad
// request can't take down the whole process.
func (e *Engine) callGuarded(fn func() (interface{}, error)) (result interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{r}
		}
	}()
	return fn()
}

type panicError struct{ v interface{} }

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return err.Error()
	}
	return "panic in handler"
}

func (e *Engine) removeInflight(key string) {
	e.inflightMu.Lock()
	delete(e.inflight, key)
	e.inflightMu.Unlock()
}

// dispatchNotification routes one notification-shaped message. Returns true
// iff the loop should stop ("exit").
func (e *Engine) dispatchNotification(msg rpc.RawMessage) bool {
	switch msg.Method {
	case "initialized", "$/setTrace", "workspace/didChangeConfiguration":
		// ignored
	case "exit":
		return true
	case "$/cancelRequest":
		e.handleCancel(msg.Params)
	case "textDocument/didOpen":
		if n := e.ctx.DidOpen(msg.Params); n != nil {
			e.notify("textDocument/clangd.fileStatus", n)
		}
	case "textDocument/didChange":
		if n := e.ctx.DidChange(msg.Params); n != nil {
			e.notify("textDocument/clangd.fileStatus", n)
		}
	case "textDocument/didClose":
		e.ctx.DidClose(msg.Params)
	}
	return false
}

type cancelParams struct {
	ID json.RawMessage `json:"id"`
}

// handleCancel implements $/cancelRequest: flag the in-flight entry and, if
// its child search process is currently running, SIGTERM it (§4.F, §5).
func (e *Engine) handleCancel(rawParams json.RawMessage) {
	var params cancelParams
	if err := json.Unmarshal(rawParams, &params); err != nil || len(params.ID) == 0 {
		return
	}

	e.inflightMu.Lock()
	token := e.inflight[string(params.ID)]
	e.inflightMu.Unlock()
	if token == nil {
		return
	}

	token.Cancel()
	if pid := token.PID(); pid > 0 {
		signalTerminate(pid)
		e.trace.Line("cancelled request, signaled pid %d", pid)
	}
}
