package diagram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// Sentinel errors for diagram passes.
var (
	ErrSuperseded   = errors.New("diagram pass superseded by a newer render")
	ErrNoRasterizer = errors.New("diagram pass has no rasterizer")
	ErrParseHTML    = errors.New("failed to parse rendered HTML")
)

const (
	placeholderSelector = ".mermaid"
	processedAttr       = "data-processed"
)

// Rasterizer turns diagram source into SVG markup.
type Rasterizer interface {
	// Begin prepares the backend for a batch of diagrams.
	Begin(ctx context.Context) error
	// Rasterize renders one diagram source to an SVG element.
	Rasterize(ctx context.Context, source string) (string, error)
	// Close releases the backend.
	Close() error
}

// Pass replaces diagram placeholders in rendered HTML with rasterized SVG.
type Pass struct {
	rasterizer Rasterizer
	tracker    *Tracker
	logger     *log.Logger
}

// NewPass returns a Pass that checks tracker before committing results.
// A nil tracker disables the generation guard; a nil logger discards.
func NewPass(r Rasterizer, tracker *Tracker, logger *log.Logger) *Pass {
	if tracker == nil {
		tracker = &Tracker{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pass{rasterizer: r, tracker: tracker, logger: logger}
}

// Tracker returns the generation tracker guarding this pass.
func (p *Pass) Tracker() *Tracker {
	return p.tracker
}

// Run rasterizes every unprocessed placeholder in html and returns the
// updated document. Placeholders already carrying data-processed are left
// alone, so running a pass twice is harmless. A diagram that fails to
// rasterize is logged and keeps its placeholder.
//
// Run returns ErrSuperseded, and no HTML, as soon as gen stops being
// current. A gen of 0 skips the check.
func (p *Pass) Run(ctx context.Context, gen uint64, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.current(gen) {
		return "", ErrSuperseded
	}
	if !strings.Contains(html, "mermaid") {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseHTML, err)
	}

	pending := doc.Find(placeholderSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		_, done := s.Attr(processedAttr)
		return !done
	})
	if pending.Length() == 0 {
		return html, nil
	}
	if p.rasterizer == nil {
		return "", ErrNoRasterizer
	}

	if err := p.rasterizer.Begin(ctx); err != nil {
		return "", err
	}

	var runErr error
	pending.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if err := ctx.Err(); err != nil {
			runErr = err
			return false
		}

		source := strings.TrimSpace(s.Text())
		svg, err := p.rasterizer.Rasterize(ctx, source)
		if !p.current(gen) {
			runErr = ErrSuperseded
			return false
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				runErr = ctxErr
				return false
			}
			id, _ := s.Attr("data-diagram")
			p.logger.Warn("diagram render failed", "diagram", id, "err", err)
			return true
		}

		s.SetHtml(svg)
		s.SetAttr(processedAttr, "true")
		return true
	})
	if runErr != nil {
		return "", runErr
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParseHTML, err)
	}
	if !p.current(gen) {
		return "", ErrSuperseded
	}
	return out, nil
}

func (p *Pass) current(gen uint64) bool {
	return gen == 0 || p.tracker.IsCurrent(gen)
}
