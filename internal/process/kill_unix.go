//go:build !windows

// Package process terminates the headless browser tree left behind by the
// diagram rasterizer.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, taking
// Chrome's renderer and GPU helpers down with it.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Errors ignored: the group may already be gone after browser.Close.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
