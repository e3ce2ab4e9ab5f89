package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Template != "default" {
		t.Errorf("Template = %q, want default", cfg.Template)
	}
	if cfg.Diagrams.Enabled {
		t.Error("Diagrams.Enabled = true, want false")
	}
	if cfg.Markdown.UnsafeHTML {
		t.Error("Markdown.UnsafeHTML = true, want false")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit returns error", "12345678901", 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Fatalf("error = %v, want ErrFieldTooLong", err)
				}
				if !strings.Contains(err.Error(), "test.field") {
					t.Errorf("error %q should name the field", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"default is valid", func(*Config) {}, nil},
		{"known code theme", func(c *Config) { c.CodeTheme = "dracula" }, nil},
		{"unknown code theme", func(c *Config) { c.CodeTheme = "no-such-theme" }, ErrInvalidField},
		{"unknown styles code theme", func(c *Config) { c.Styles.CodeTheme = "no-such-theme" }, ErrInvalidField},
		{"template with path", func(c *Config) { c.Template = "../etc/passwd" }, ErrInvalidField},
		{"template too long", func(c *Config) { c.Template = strings.Repeat("a", MaxTemplateLength+1) }, ErrFieldTooLong},
		{"theme color too long", func(c *Config) { c.Styles.Base.ThemeColor = strings.Repeat("#", MaxColorLength+1) }, ErrFieldTooLong},
		{"font family too long", func(c *Config) { c.Styles.Base.FontFamily = strings.Repeat("x", MaxCSSValueLength+1) }, ErrFieldTooLong},
		{"script url not http", func(c *Config) { c.Diagrams.ScriptURL = "file:///mermaid.js" }, ErrInvalidField},
		{"script url https", func(c *Config) { c.Diagrams.ScriptURL = "https://cdn.example.com/mermaid.js" }, nil},
		{"timeout unparsable", func(c *Config) { c.Diagrams.Timeout = "soon" }, ErrInvalidField},
		{"timeout negative", func(c *Config) { c.Diagrams.Timeout = "-1s" }, ErrInvalidField},
		{"timeout valid", func(c *Config) { c.Diagrams.Timeout = "5s" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiagramsConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", DefaultDiagramTimeout},
		{"10s", 10 * time.Second},
		{"1m", time.Minute},
		{"garbage", DefaultDiagramTimeout},
		{"0s", DefaultDiagramTimeout},
	}

	for _, tt := range tests {
		got := DiagramsConfig{Timeout: tt.timeout}.TimeoutDuration()
		if got != tt.want {
			t.Errorf("TimeoutDuration(%q) = %v, want %v", tt.timeout, got, tt.want)
		}
	}
}

func TestLoadConfig_FromPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "brand.yaml", `
template: elegant
codeTheme: nord
assets:
  basePath: ./assets
markdown:
  unsafeHTML: true
styles:
  base:
    themeColor: "#ff0000"
    fontSize: 15px
  block:
    h1:
      color: "#222222"
      fontSize: 26
diagrams:
  enabled: true
  timeout: 12s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Template != "elegant" {
		t.Errorf("Template = %q, want elegant", cfg.Template)
	}
	if cfg.CodeTheme != "nord" {
		t.Errorf("CodeTheme = %q, want nord", cfg.CodeTheme)
	}
	if cfg.Assets.BasePath != "./assets" {
		t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
	}
	if !cfg.Markdown.UnsafeHTML {
		t.Error("Markdown.UnsafeHTML = false, want true")
	}
	if cfg.Styles.Base.ThemeColor != "#ff0000" {
		t.Errorf("Styles.Base.ThemeColor = %q", cfg.Styles.Base.ThemeColor)
	}
	if got := cfg.Styles.Block["h1"]["color"]; got != "#222222" {
		t.Errorf("h1 color = %v", got)
	}
	if _, ok := cfg.Styles.Block["h1"]["fontSize"]; !ok {
		t.Error("h1 fontSize missing")
	}
	if !cfg.Diagrams.Enabled || cfg.Diagrams.TimeoutDuration() != 12*time.Second {
		t.Errorf("Diagrams = %+v", cfg.Diagrams)
	}
}

func TestLoadConfig_KeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "partial.yaml", "codeTheme: monokai\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Template != "default" {
		t.Errorf("Template = %q, want default kept from DefaultConfig", cfg.Template)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "empty.yaml", "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Template != "default" {
		t.Errorf("Template = %q, want default", cfg.Template)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := writeConfig(t, dir, "unknown.yaml", "template: default\ncolour: red\n")
	malformed := writeConfig(t, dir, "malformed.yaml", "template: [unclosed\n")
	invalid := writeConfig(t, dir, "invalid.yaml", "codeTheme: no-such-theme\n")

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing path", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"missing name", "neurapress-config-that-does-not-exist", ErrConfigNotFound},
		{"unknown field", unknown, ErrConfigParse},
		{"malformed yaml", malformed, ErrConfigParse},
		{"invalid value", invalid, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if cfg != nil {
				t.Error("LoadConfig() returned a config on error")
			}
		})
	}
}

func TestResolveConfigPath_UserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	userDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	dir := filepath.Join(userDir, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeConfig(t, dir, "team.yml", "template: minimal\n")

	got, err := resolveConfigPath("team")
	if err != nil {
		t.Fatalf("resolveConfigPath() error = %v", err)
	}
	if got != want {
		t.Errorf("resolveConfigPath() = %q, want %q", got, want)
	}

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(team) error = %v", err)
	}
	if cfg.Template != "minimal" {
		t.Errorf("Template = %q, want minimal", cfg.Template)
	}
}

func TestResolveConfigPath_ListsTriedPaths(t *testing.T) {
	t.Parallel()

	_, err := resolveConfigPath("neurapress-nowhere")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	for _, want := range []string{"neurapress-nowhere.yaml", "neurapress-nowhere.yml"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should list %q", err, want)
		}
	}
}
