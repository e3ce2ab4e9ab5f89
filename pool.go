package neurapress

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// RasterizerPool manages a pool of DiagramRasterizer instances for parallel
// processing. Each rasterizer owns its own browser, enabling true parallelism.
// Rasterizers are created lazily on first acquire to avoid startup delay.
type RasterizerPool struct {
	size    int
	factory func() DiagramRasterizer
	items   []DiagramRasterizer
	sem     chan DiagramRasterizer
	mu      sync.Mutex
	created int
	closed  bool
}

// NewRasterizerPool creates a pool with capacity for n rasterizers built by
// factory. A nil factory builds ChromeRasterizers with default options.
func NewRasterizerPool(n int, factory func() DiagramRasterizer) *RasterizerPool {
	if n < 1 {
		n = 1
	}
	if factory == nil {
		factory = func() DiagramRasterizer { return NewChromeRasterizer() }
	}

	return &RasterizerPool{
		size:    n,
		factory: factory,
		items:   make([]DiagramRasterizer, 0, n),
		sem:     make(chan DiagramRasterizer, n),
	}
}

// Acquire gets a rasterizer from the pool, creating one if needed.
// Blocks if all rasterizers are in use.
func (p *RasterizerPool) Acquire() DiagramRasterizer {
	// Try to get an existing rasterizer (non-blocking)
	select {
	case r := <-p.sem:
		return r
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create outside the lock
		r := p.factory()

		p.mu.Lock()
		p.items = append(p.items, r)
		p.mu.Unlock()

		return r
	}
	p.mu.Unlock()

	// All rasterizers created, wait for one to be released
	return <-p.sem
}

// Release returns a rasterizer to the pool.
// The lock is released before sending to avoid deadlock when channel is full.
func (p *RasterizerPool) Release(r DiagramRasterizer) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- r
}

// Close releases all browser resources.
// Returns an aggregated error if multiple rasterizers fail to close.
func (p *RasterizerPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	items := p.items
	p.mu.Unlock()

	var errs []error
	for _, r := range items {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *RasterizerPool) Size() int {
	return p.size
}

// ResolvePoolSize determines the optimal pool size.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
