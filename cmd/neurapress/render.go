package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnknownCodeTheme   = errors.New("unknown code theme")
	ErrRasterizerInit     = errors.New("failed to initialize diagram renderer")
)

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(ctx context.Context, input neurapress.Input) (*neurapress.Result, error)
}

// Compile-time interface implementation checks.
var (
	_ Renderer = (*neurapress.Renderer)(nil)
	_ Pool     = (*neurapress.RasterizerPool)(nil)
)

// Pool abstracts rasterizer pool operations for testability.
type Pool interface {
	Acquire() neurapress.DiagramRasterizer
	Release(neurapress.DiagramRasterizer)
	Size() int
}

// renderParams groups parameters shared across a batch.
type renderParams struct {
	template   string
	overrides  neurapress.RendererOptions
	unsafeHTML bool
	standalone bool
	// resolveAssets rewrites relative paths against each input's directory.
	resolveAssets bool
	logger        *log.Logger
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(positional, outputDir)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common)
	renderer, err := neurapress.NewRenderer(rendererOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	params := &renderParams{
		template:      cfg.Template,
		overrides:     overridesFrom(cfg),
		unsafeHTML:    cfg.Markdown.UnsafeHTML,
		standalone:    flags.standalone,
		resolveAssets: outputDir != "",
		logger:        logger,
	}

	// Unknown templates are a usage error here; the library would fall back.
	if _, err := renderer.ResolveOptions(params.template, params.overrides); err != nil {
		return err
	}

	workers := neurapress.ResolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	var pool Pool
	if cfg.Diagrams.Enabled {
		timeout := resolveTimeout(cfg.Diagrams, envCfg.Timeout, flags.timeout != "")
		rp := neurapress.NewRasterizerPool(workers, chromeFactory(cfg.Diagrams.ScriptURL, timeout))
		defer func() {
			if err := rp.Close(); err != nil {
				logger.Warn("closing diagram renderers", "err", err)
			}
		}()
		pool = rp
	}

	results := renderBatch(ctx, renderer, pool, files, params, workers)
	return summarize(results, printResults(results, flags.common.quiet, flags.common.verbose, env))
}

// loadConfig loads the config named by the flag or NEURAPRESS_CONFIG and
// applies environment overrides. No name means defaults.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config and validates the result.
// CLI values override config values.
func mergeFlags(flags *renderFlags, cfg *config.Config) error {
	s := flags.style
	if s.template != "" {
		cfg.Template = s.template
	}
	if s.codeTheme != "" {
		cfg.CodeTheme = s.codeTheme
	}
	if s.themeColor != "" {
		cfg.Styles.Base.ThemeColor = s.themeColor
	}
	if s.fontSize != "" {
		cfg.Styles.Base.FontSize = s.fontSize
	}
	if s.assetPath != "" {
		cfg.Assets.BasePath = s.assetPath
	}
	if flags.timeout != "" {
		cfg.Diagrams.Timeout = flags.timeout
	}
	if flags.diagrams {
		cfg.Diagrams.Enabled = true
	}
	if flags.unsafeHTML {
		cfg.Markdown.UnsafeHTML = true
	}
	if flags.bullets {
		cfg.Markdown.Bullets = true
	}

	if cfg.CodeTheme != "" && !neurapress.HasTheme(cfg.CodeTheme) {
		return fmt.Errorf("%w: %q", ErrUnknownCodeTheme, cfg.CodeTheme)
	}
	return cfg.Validate()
}

// overridesFrom builds the style overrides applied on top of the template.
func overridesFrom(cfg *config.Config) neurapress.RendererOptions {
	o := cfg.Styles
	if cfg.CodeTheme != "" {
		o.CodeTheme = cfg.CodeTheme
	}
	return o
}

// rendererOptions translates config into library options.
func rendererOptions(cfg *config.Config, logger *log.Logger) []neurapress.Option {
	opts := []neurapress.Option{
		neurapress.WithLogger(logger),
		neurapress.WithTemplate(cfg.Template),
		neurapress.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Markdown.Bullets {
		opts = append(opts, neurapress.WithBulletNormalization())
	}
	return opts
}

// newLogger returns the CLI logger: warnings by default, errors only with
// quiet, debug output with verbose.
func newLogger(w io.Writer, f commonFlags) *log.Logger {
	level := log.WarnLevel
	switch {
	case f.quiet:
		level = log.ErrorLevel
	case f.verbose:
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "neurapress",
		Level:  level,
	})
}

// resolveTimeout picks the per-diagram timeout.
// Priority: flag (already merged into cfg) > env > config file > default.
func resolveTimeout(cfg config.DiagramsConfig, envTimeout time.Duration, flagSet bool) time.Duration {
	if !flagSet && envTimeout > 0 {
		return envTimeout
	}
	return cfg.TimeoutDuration()
}

// chromeFactory builds headless Chrome rasterizers for the pool.
func chromeFactory(scriptURL string, timeout time.Duration) func() neurapress.DiagramRasterizer {
	return func() neurapress.DiagramRasterizer {
		return neurapress.NewChromeRasterizer(
			neurapress.WithScriptURL(scriptURL),
			neurapress.WithRasterizeTimeout(timeout),
		)
	}
}

// resolveOutputDir returns the output location: flag, then config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > neurapress.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, neurapress.MaxPoolSize)
	}
	return nil
}

// assetDir returns the absolute directory of path, or "" if it cannot be resolved.
func assetDir(path string) string {
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return ""
	}
	return abs
}

// readMarkdown reads one input file.
func readMarkdown(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(content), nil
}
