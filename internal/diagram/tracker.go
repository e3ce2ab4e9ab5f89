package diagram

import "sync/atomic"

// Tracker issues render generations. The zero value is ready to use and
// safe for concurrent use.
type Tracker struct {
	gen atomic.Uint64
}

// Next starts a new generation and returns it. Every earlier generation
// stops being current.
func (t *Tracker) Next() uint64 {
	return t.gen.Add(1)
}

// Current returns the latest generation, or 0 before the first Next.
func (t *Tracker) Current() uint64 {
	return t.gen.Load()
}

// IsCurrent reports whether gen is still the latest generation.
func (t *Tracker) IsCurrent(gen uint64) bool {
	return t.gen.Load() == gen
}
