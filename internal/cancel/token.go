// Package cancel provides the atomic cancellation handshake shared between
// the session engine's in-flight registry and the search executor's child
// process supervision: a monotonic cancelled flag and an observable child
// pid slot.
package cancel

import "sync/atomic"

// Token is the per-request cancellation handle. The session engine creates
// one per potentially-slow request, hands it to the handler, and the
// handler threads it through to the search executor so that a concurrent
// $/cancelRequest can both flip Cancelled and signal the running child.
type Token struct {
	cancelled atomic.Bool
	pid       atomic.Int64 // 0 means "no child currently running"
}

// New returns a fresh, non-cancelled token with no child published.
func New() *Token {
	return &Token{}
}

// Cancel sets the cancelled flag. It is monotonic: once true, always true.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports the current value of the cancelled flag.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}

// SetPID publishes the pid of the currently-running search child, or 0 to
// clear it. Only the owning search executor calls this.
func (t *Token) SetPID(pid int) {
	t.pid.Store(int64(pid))
}

// PID returns the currently-published child pid, or 0 if none.
func (t *Token) PID() int {
	return int(t.pid.Load())
}
