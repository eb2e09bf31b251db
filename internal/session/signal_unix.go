//go:build !windows

package session

import "syscall"

// signalTerminate sends SIGTERM to pid, best-effort (§4.F: "silent on
// unknown ids" extends to a child that has already exited).
func signalTerminate(pid int) {
	_ = syscall.Kill(pid, syscall.SIGTERM)
}
