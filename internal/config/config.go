package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tianyaxiang/neurapress-sub000/internal/assets"
	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
	"github.com/tianyaxiang/neurapress-sub000/internal/highlight"
	"github.com/tianyaxiang/neurapress-sub000/internal/style"
	"github.com/tianyaxiang/neurapress-sub000/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTemplateLength = 64   // Template ID
	MaxThemeLength    = 64   // Code theme ID
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxURLLength      = 2048 // Browser limit
	MaxColorLength    = 64   // "#0F4C81" or "rgba(15, 76, 129, 0.8)"
	MaxCSSValueLength = 200  // Font stacks
)

// DefaultDiagramTimeout bounds a single diagram rasterization.
const DefaultDiagramTimeout = 30 * time.Second

// configDirName is the directory under os.UserConfigDir searched for named configs.
const configDirName = "neurapress"

// Config holds all configuration for rendering.
type Config struct {
	Template  string                `yaml:"template"`
	CodeTheme string                `yaml:"codeTheme"`
	Assets    AssetsConfig          `yaml:"assets"`
	Output    OutputConfig          `yaml:"output"`
	Markdown  MarkdownConfig        `yaml:"markdown"`
	Styles    style.RendererOptions `yaml:"styles"`
	Diagrams  DiagramsConfig        `yaml:"diagrams"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded templates only
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = same as source
}

// MarkdownConfig defines parsing options.
type MarkdownConfig struct {
	UnsafeHTML bool `yaml:"unsafeHTML"` // Pass raw HTML through unchanged
	Bullets    bool `yaml:"bullets"`    // Rewrite "•" bullet lines into list items
}

// DiagramsConfig defines the diagram rasterization pass.
type DiagramsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ScriptURL string `yaml:"scriptURL"` // Empty = bundled CDN default
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "30s"
}

// TimeoutDuration returns the parsed diagram timeout, or the default when unset.
// Call Validate first; an unparsable value also yields the default.
func (d DiagramsConfig) TimeoutDuration() time.Duration {
	if d.Timeout == "" {
		return DefaultDiagramTimeout
	}
	dur, err := time.ParseDuration(d.Timeout)
	if err != nil || dur <= 0 {
		return DefaultDiagramTimeout
	}
	return dur
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually (e.g., API adapters, library users).
func (c *Config) Validate() error {
	if err := validateFieldLength("template", c.Template, MaxTemplateLength); err != nil {
		return err
	}
	if c.Template != "" {
		if err := assets.ValidateAssetName(c.Template); err != nil {
			return fmt.Errorf("%w: template: %v", ErrInvalidField, err)
		}
	}

	for _, f := range []field{{"codeTheme", c.CodeTheme}, {"styles.codeTheme", c.Styles.CodeTheme}} {
		if err := validateFieldLength(f.name, f.value, MaxThemeLength); err != nil {
			return err
		}
		if f.value != "" && !highlight.Has(f.value) {
			return fmt.Errorf("%w: %s: unknown code theme %q", ErrInvalidField, f.name, f.value)
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	base := c.Styles.Base
	if err := validateFieldLength("styles.base.themeColor", base.ThemeColor, MaxColorLength); err != nil {
		return err
	}
	for _, f := range []field{
		{"styles.base.fontSize", base.FontSize},
		{"styles.base.lineHeight", base.LineHeight},
		{"styles.base.textAlign", base.TextAlign},
		{"styles.base.fontFamily", base.FontFamily},
	} {
		if err := validateFieldLength(f.name, f.value, MaxCSSValueLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("diagrams.scriptURL", c.Diagrams.ScriptURL, MaxURLLength); err != nil {
		return err
	}
	if c.Diagrams.ScriptURL != "" && !fileutil.IsURL(c.Diagrams.ScriptURL) {
		return fmt.Errorf("%w: diagrams.scriptURL: must be an http(s) URL, got %q", ErrInvalidField, c.Diagrams.ScriptURL)
	}
	if c.Diagrams.Timeout != "" {
		dur, err := time.ParseDuration(c.Diagrams.Timeout)
		if err != nil {
			return fmt.Errorf("%w: diagrams.timeout: %v", ErrInvalidField, err)
		}
		if dur <= 0 {
			return fmt.Errorf("%w: diagrams.timeout: must be positive, got %s", ErrInvalidField, c.Diagrams.Timeout)
		}
	}

	return nil
}

type field struct {
	name  string
	value string
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// the default template, diagrams off.
func DefaultConfig() *Config {
	return &Config{
		Template: assets.DefaultTemplateID,
		Diagrams: DiagramsConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, yamlutil.ErrNilData):
			// An empty file is a valid, empty config.
		default:
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/neurapress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
