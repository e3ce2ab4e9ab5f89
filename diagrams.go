package neurapress

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tianyaxiang/neurapress-sub000/internal/diagram"
)

// DiagramRasterizer renders diagram source to SVG markup.
// Begin prepares the backend before a batch, Rasterize renders one diagram
// and Close releases the backend.
type DiagramRasterizer = diagram.Rasterizer

// DiagramPass fills the diagram placeholders of rendered HTML.
//
// Call Next when a new render starts and pass the returned generation to Run.
// A Run whose generation has been replaced by a later Next returns
// ErrSuperseded and no HTML, so stale output never overwrites fresh output.
type DiagramPass struct {
	pass *diagram.Pass
}

// NewDiagramPass creates a pass backed by rasterizer. A nil logger discards.
func NewDiagramPass(rasterizer DiagramRasterizer, logger *log.Logger) *DiagramPass {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DiagramPass{pass: diagram.NewPass(rasterizer, &diagram.Tracker{}, logger)}
}

// Next starts a new generation, superseding every earlier one.
func (p *DiagramPass) Next() uint64 {
	return p.pass.Tracker().Next()
}

// IsCurrent reports whether gen is the latest generation.
func (p *DiagramPass) IsCurrent(gen uint64) bool {
	return p.pass.Tracker().IsCurrent(gen)
}

// Run rasterizes the unprocessed placeholders in html. Placeholders already
// marked data-processed are skipped. A diagram that fails to render keeps
// its placeholder and is logged.
func (p *DiagramPass) Run(ctx context.Context, gen uint64, html string) (string, error) {
	return p.pass.Run(ctx, gen, html)
}
