//go:build integration

package neurapress

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// testTimeout is the standard timeout for browser operations.
const testTimeout = 60 * time.Second

func TestChromeRasterizer_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	c := NewChromeRasterizer(WithRasterizeTimeout(testTimeout))
	defer c.Close()

	if err := c.Begin(ctx); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	// Begin is idempotent.
	if err := c.Begin(ctx); err != nil {
		t.Fatalf("second Begin() error = %v", err)
	}

	svg, err := c.Rasterize(ctx, "graph TD\nA-->B")
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("Rasterize() = %.80q, want an svg element", svg)
	}

	if _, err := c.Rasterize(ctx, "graph TD\nA-->"); !errors.Is(err, ErrDiagramRender) {
		t.Errorf("Rasterize(invalid) error = %v, want ErrDiagramRender", err)
	}
}

func TestDiagramPass_Chrome_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	r := newTestRenderer(t)
	res, err := r.Render(ctx, Input{Markdown: "```mermaid\nsequence\nA->>B: hi\n```\n"})
	if err != nil {
		t.Fatal(err)
	}

	pool := NewRasterizerPool(1, nil)
	defer pool.Close()

	rz := pool.Acquire()
	defer pool.Release(rz)

	pass := NewDiagramPass(rz, nil)
	out, err := pass.Run(ctx, pass.Next(), res.HTML)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, `data-processed="true"`) {
		t.Errorf("diagram not rasterized: %.200s", out)
	}
}
