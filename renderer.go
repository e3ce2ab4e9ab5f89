package neurapress

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark/util"

	"github.com/tianyaxiang/neurapress-sub000/internal/highlight"
	"github.com/tianyaxiang/neurapress-sub000/internal/mathtex"
	"github.com/tianyaxiang/neurapress-sub000/internal/pipeline"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = pipeline.PassthroughPreprocessor{}
	_ pipeline.MarkdownPreprocessor = pipeline.BulletPreprocessor{}
	_ pipeline.HTMLConverter        = (*pipeline.Engine)(nil)
	_ MathRenderer                  = (*mathtex.KaTeX)(nil)
	_ TemplateLoader                = (*templateLoaderAdapter)(nil)
)

// Renderer turns Markdown into inline-styled HTML.
// Create with NewRenderer and call Render for each document. A Renderer is
// safe for concurrent use: every Render builds its own parser instance.
type Renderer struct {
	cfg          rendererConfig
	loader       TemplateLoader
	math         MathRenderer
	highlighter  pipeline.CodeHighlighter
	preprocessor pipeline.MarkdownPreprocessor
	logger       *log.Logger
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTemplate, WithAssetPath, WithLogger).
// Returns error if the asset path is invalid.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:          rendererConfig{template: DefaultTemplate},
		preprocessor: pipeline.PassthroughPreprocessor{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "neurapress",
			Level:  log.WarnLevel,
		})
	}

	if r.loader == nil {
		loader, err := NewTemplateLoader(r.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		r.loader = loader
	}

	switch {
	case r.cfg.noMath:
		r.math = nil
	case r.math == nil:
		r.math = mathtex.New()
	}

	r.highlighter = highlight.New(r.logger)

	return r, nil
}

// Render converts input to styled HTML.
//
// Render only fails when ctx is done. Everything else degrades: an unknown
// template falls back to the default one, and a construct that cannot be
// rendered (a bad formula, an empty recommendation block) is shown as its
// escaped source. Failures are logged.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	templateID := input.Template
	if templateID == "" {
		templateID = r.cfg.template
	}

	opts, err := r.ResolveOptions(templateID, input.Overrides)
	if err != nil {
		r.logger.Warn("template unavailable, using default", "template", templateID, "err", err)
		templateID = DefaultTemplate
		if opts, err = r.ResolveOptions(templateID, input.Overrides); err != nil {
			r.logger.Warn("default template unavailable, using built-in styles", "err", err)
			opts = style.Resolve(RendererOptions{}, input.Overrides)
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("render panicked, returning source", "panic", rec)
			result, err = &Result{
				HTML:     fallbackHTML(input.Markdown, opts),
				Template: templateID,
				Options:  opts,
			}, nil
		}
	}()

	engine := pipeline.NewEngine(opts, pipeline.Deps{
		Logger:       r.logger,
		Math:         r.math,
		Highlighter:  r.highlighter,
		Preprocessor: r.preprocessor,
		UnsafeHTML:   input.UnsafeHTML,
		AssetDir:     input.AssetDir,
		NoDiagrams:   r.cfg.noDiagrams,
	})

	out, err := engine.Convert(ctx, input.Markdown)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		r.logger.Warn("render failed, returning source", "err", err)
		out = fallbackHTML(input.Markdown, opts)
	}

	return &Result{HTML: out, Template: templateID, Options: opts}, nil
}

// ResolveOptions returns the options a render with template and overrides
// would use: built-in defaults, then the preset, then overrides.
// Unlike Render, an unknown template is an error.
func (r *Renderer) ResolveOptions(template string, overrides RendererOptions) (RendererOptions, error) {
	if template == "" {
		template = r.cfg.template
	}
	t, err := r.loader.LoadTemplate(template)
	if err != nil {
		return RendererOptions{}, fmt.Errorf("loading template %q: %w", template, err)
	}
	return style.Resolve(t.Options, overrides), nil
}

// Templates lists the available presets.
func (r *Renderer) Templates() ([]TemplateInfo, error) {
	return r.loader.ListTemplates()
}

// Themes lists the built-in code themes.
func Themes() []CodeTheme {
	return highlight.Themes()
}

// HasTheme reports whether id names a built-in code theme.
func HasTheme(id string) bool {
	return highlight.Has(id)
}

// fallbackHTML shows the source as escaped, preformatted text.
func fallbackHTML(markdown string, opts RendererOptions) string {
	body := `<pre style="white-space: pre-wrap">` + string(util.EscapeHTML([]byte(markdown))) + `</pre>`
	return pipeline.Wrap(body, opts.Base)
}
