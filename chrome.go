package neurapress

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
	"github.com/tianyaxiang/neurapress-sub000/internal/process"
)

// DefaultMermaidScript is the mermaid.js build loaded by ChromeRasterizer.
const DefaultMermaidScript = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// defaultRasterizeTimeout bounds page load and each diagram render.
const defaultRasterizeTimeout = 30 * time.Second

// hostPage is the blank document mermaid runs in.
const hostPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><script src="%s"></script></head><body></body></html>`

const (
	initScript   = `() => { if (typeof mermaid === "undefined") { return false; } mermaid.initialize({ startOnLoad: false, securityLevel: "strict" }); return true; }`
	renderScript = `async (id, src) => (await mermaid.render(id, src)).svg`
)

var _ DiagramRasterizer = (*ChromeRasterizer)(nil)

// ChromeRasterizer renders diagrams with mermaid.js in headless Chrome.
// Rod downloads Chromium on first use if no browser is found; set
// ROD_BROWSER_BIN to use an installed one.
//
// The rasterizer drives a single page, so calls are serialized.
type ChromeRasterizer struct {
	mu        sync.Mutex
	scriptURL string
	timeout   time.Duration

	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	cleanup  func()
	seq      int
}

// ChromeOption configures a ChromeRasterizer.
type ChromeOption func(*ChromeRasterizer)

// WithScriptURL sets the mermaid.js URL. Empty keeps the default.
func WithScriptURL(url string) ChromeOption {
	return func(c *ChromeRasterizer) {
		if url != "" {
			c.scriptURL = url
		}
	}
}

// WithRasterizeTimeout bounds page load and each diagram render.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithRasterizeTimeout(d time.Duration) ChromeOption {
	if d <= 0 {
		panic("neurapress: WithRasterizeTimeout duration must be positive")
	}
	return func(c *ChromeRasterizer) {
		c.timeout = d
	}
}

// NewChromeRasterizer creates a rasterizer. The browser starts on the first Begin.
func NewChromeRasterizer(opts ...ChromeOption) *ChromeRasterizer {
	c := &ChromeRasterizer{
		scriptURL: DefaultMermaidScript,
		timeout:   defaultRasterizeTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Begin starts the browser and loads mermaid.js, once. Later calls are no-ops.
func (c *ChromeRasterizer) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page != nil {
		return nil
	}
	if err := c.ensureBrowser(); err != nil {
		return err
	}

	path, cleanup, err := fileutil.WriteTempFile(fmt.Sprintf(hostPage, c.scriptURL), "html")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		cleanup()
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	if err := page.Context(ctx).Timeout(c.timeoutFor(ctx)).WaitLoad(); err != nil {
		_ = page.Close()
		cleanup()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	res, err := page.Context(ctx).Eval(initScript)
	if err != nil || !res.Value.Bool() {
		_ = page.Close()
		cleanup()
		return fmt.Errorf("%w: %s", ErrDiagramScript, c.scriptURL)
	}

	c.page = page
	c.cleanup = cleanup
	return nil
}

// Rasterize renders one diagram and returns its SVG element.
func (c *ChromeRasterizer) Rasterize(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page == nil {
		return "", fmt.Errorf("%w: Begin not called", ErrDiagramRender)
	}

	c.seq++
	id := "neurapress-diagram-" + strconv.Itoa(c.seq)

	res, err := c.page.Context(ctx).Timeout(c.timeoutFor(ctx)).Eval(renderScript, id, source)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", ErrDiagramRender, err)
	}

	svg := res.Value.Str()
	if svg == "" {
		return "", fmt.Errorf("%w: empty output", ErrDiagramRender)
	}
	return svg, nil
}

// Close releases browser resources and kills any leftover Chrome processes.
func (c *ChromeRasterizer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.page != nil {
		errs = append(errs, c.page.Close())
		c.page = nil
	}
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
	if c.browser != nil {
		errs = append(errs, c.browser.Close())
		c.browser = nil
	}
	if c.launcher != nil {
		process.KillProcessGroup(c.launcher.PID())
		c.launcher.Kill()
		c.launcher.Cleanup()
		c.launcher = nil
	}
	return errors.Join(errs...)
}

// ensureBrowser lazily launches and connects to the browser.
func (c *ChromeRasterizer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		process.KillProcessGroup(l.PID())
		l.Kill()
		l.Cleanup()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.launcher = l
	c.browser = browser
	return nil
}

// timeoutFor returns the configured timeout, shortened to ctx's deadline.
func (c *ChromeRasterizer) timeoutFor(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if until := time.Until(deadline); until < timeout {
			timeout = max(until, time.Millisecond)
		}
	}
	return timeout
}
