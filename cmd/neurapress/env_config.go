package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tianyaxiang/neurapress-sub000/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "NEURAPRESS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // NEURAPRESS_CONFIG: config file name or path
	Template   string        // NEURAPRESS_TEMPLATE: template id
	CodeTheme  string        // NEURAPRESS_CODE_THEME: code theme id
	OutputDir  string        // NEURAPRESS_OUTPUT_DIR: default output directory
	Timeout    time.Duration // NEURAPRESS_TIMEOUT: per-diagram timeout
	Workers    int           // NEURAPRESS_WORKERS: parallel workers
}

// knownEnvVars lists valid NEURAPRESS_* environment variables.
var knownEnvVars = map[string]bool{
	"NEURAPRESS_CONFIG":     true,
	"NEURAPRESS_TEMPLATE":   true,
	"NEURAPRESS_CODE_THEME": true,
	"NEURAPRESS_OUTPUT_DIR": true,
	"NEURAPRESS_TIMEOUT":    true,
	"NEURAPRESS_WORKERS":    true,
}

// loadEnvConfig reads configuration through getenv.
// Malformed timeout and worker values are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("NEURAPRESS_CONFIG"),
		Template:   getenv("NEURAPRESS_TEMPLATE"),
		CodeTheme:  getenv("NEURAPRESS_CODE_THEME"),
		OutputDir:  getenv("NEURAPRESS_OUTPUT_DIR"),
	}

	if timeout := getenv("NEURAPRESS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("NEURAPRESS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized NEURAPRESS_* variables.
// Helps catch typos like NEURAPRESS_TEMPLTE.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config values the file left empty.
// Precedence: CLI flags > env vars > config file > defaults
// (flags are applied later via mergeFlags). The template always comes from
// DefaultConfig when the file omits it, so the env template only replaces
// the default id.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" && (cfg.Template == "" || cfg.Template == config.DefaultConfig().Template) {
		cfg.Template = env.Template
	}
	if env.CodeTheme != "" && cfg.CodeTheme == "" {
		cfg.CodeTheme = env.CodeTheme
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
