//go:build windows

package session

// signalTerminate is a no-op on Windows: there is no SIGTERM equivalent for
// an arbitrary child pid without additional job-object plumbing, and the
// search child will still be reaped normally once it finishes on its own.
func signalTerminate(pid int) {}
