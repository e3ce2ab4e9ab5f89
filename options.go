package neurapress

import (
	"github.com/charmbracelet/log"

	"github.com/tianyaxiang/neurapress-sub000/internal/pipeline"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	template   string
	assetPath  string
	noDiagrams bool
	noMath     bool
}

// MathRenderer converts a LaTeX formula to HTML. Display selects block layout.
type MathRenderer = pipeline.MathRenderer

// WithLogger sets the logger used for recoverable render failures.
// Defaults to warnings on stderr prefixed "neurapress".
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithTemplate sets the preset used when Input.Template is empty.
// An empty id keeps DefaultTemplate.
func WithTemplate(id string) Option {
	return func(r *Renderer) {
		if id != "" {
			r.cfg.template = id
		}
	}
}

// WithAssetPath loads presets from {path}/templates before the embedded ones.
// NewRenderer fails with ErrInvalidAssetPath if path is not a readable directory.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithTemplateLoader replaces the preset loader. Takes precedence over
// WithAssetPath.
func WithTemplateLoader(l TemplateLoader) Option {
	return func(r *Renderer) {
		r.loader = l
	}
}

// WithMathRenderer replaces the KaTeX formula renderer.
func WithMathRenderer(m MathRenderer) Option {
	return func(r *Renderer) {
		r.math = m
	}
}

// WithoutMath leaves formulas as their source text.
func WithoutMath() Option {
	return func(r *Renderer) {
		r.cfg.noMath = true
	}
}

// WithoutDiagrams renders diagram fences as ordinary code blocks instead of
// staging placeholders.
func WithoutDiagrams() Option {
	return func(r *Renderer) {
		r.cfg.noDiagrams = true
	}
}

// WithBulletNormalization rewrites lines starting with pasted bullet
// characters (•, ·, ▪) into Markdown list items before parsing.
func WithBulletNormalization() Option {
	return func(r *Renderer) {
		r.preprocessor = pipeline.BulletPreprocessor{}
	}
}
