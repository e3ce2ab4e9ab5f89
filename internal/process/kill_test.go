package process

// PIDs at or below zero are rejected before any syscall: -0 would target the
// test binary's own process group. Real termination is covered by the
// browser-backed rasterizer tests.

import "testing"

func TestKillProcessGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pid  int
	}{
		{"zero pid is ignored", 0},
		{"negative pid is ignored", -1},
		{"missing process", 999999999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			KillProcessGroup(tt.pid)
		})
	}
}
