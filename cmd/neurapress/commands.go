package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/highlight"
	"github.com/tianyaxiang/neurapress-sub000/internal/yamlutil"
)

// runTemplates lists the available templates.
func runTemplates(args []string, env *Environment) error {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var assetPath string
	fs.StringVar(&assetPath, "asset-path", "", "custom template directory")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printTemplatesUsage(env.Stdout)
			return errHelpRequested
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	renderer, err := neurapress.NewRenderer(
		neurapress.WithAssetPath(assetPath),
		neurapress.WithLogger(newLogger(env.Stderr, commonFlags{})),
	)
	if err != nil {
		return err
	}
	list, err := renderer.Templates()
	if err != nil {
		return err
	}

	for _, t := range list {
		marker := ""
		if t.Custom {
			marker = " (custom)"
		}
		fmt.Fprintf(env.Stdout, "%-12s %s%s\n", t.ID, t.Name, marker)
		if t.Description != "" {
			fmt.Fprintf(env.Stdout, "%-12s %s\n", "", t.Description)
		}
	}
	return nil
}

// runThemes lists the built-in code themes.
func runThemes(args []string, env *Environment) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: themes takes no arguments", ErrUsage)
	}
	for _, th := range neurapress.Themes() {
		marker := ""
		if th.ID == highlight.DefaultThemeID {
			marker = " (default)"
		}
		fmt.Fprintf(env.Stdout, "%-16s %s%s\n", th.ID, th.Name, marker)
	}
	return nil
}

// runOptions prints the fully resolved style options as YAML.
// Useful as a starting point for the styles section of a config file.
func runOptions(args []string, env *Environment) error {
	flags, positional, err := parseOptionsFlags(args, env.Stdout)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: options takes no arguments", ErrUsage)
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}

	renderer, err := neurapress.NewRenderer(rendererOptions(cfg, newLogger(env.Stderr, flags.common))...)
	if err != nil {
		return err
	}
	opts, err := renderer.ResolveOptions(cfg.Template, overridesFrom(cfg))
	if err != nil {
		return err
	}

	out, err := yamlutil.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding options: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// templateIDs lists the embedded template ids for hints.
func templateIDs() []string {
	loader, err := neurapress.NewTemplateLoader("")
	if err != nil {
		return nil
	}
	list, err := loader.ListTemplates()
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(list))
	for _, t := range list {
		ids = append(ids, t.ID)
	}
	return ids
}

// themeIDs lists the code theme ids for hints.
func themeIDs() []string {
	themes := neurapress.Themes()
	ids := make([]string, 0, len(themes))
	for _, th := range themes {
		ids = append(ids, th.ID)
	}
	return ids
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
