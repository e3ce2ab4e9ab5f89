package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/config"
	"github.com/tianyaxiang/neurapress-sub000/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) && looksLikeMarkdown(cmd) {
		// "neurapress doc.md" is shorthand for "neurapress render doc.md".
		cmd, rest = "render", args[1:]
	}

	var err error
	switch cmd {
	case "render":
		err = runRender(ctx, rest, env)
	case "templates":
		err = runTemplates(rest, env)
	case "themes":
		err = runThemes(rest, env)
	case "options":
		err = runOptions(rest, env)
	case "doctor":
		err = runDoctor(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "neurapress %s\n", Version)
	case "help", "-h", "--help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, errHelpRequested) {
		return ExitSuccess
	}

	fmt.Fprintln(env.Stderr, "error: "+err.Error()+hintFor(err, env.Getenv))
	if errors.Is(err, ErrUnknownCommand) {
		printUsage(env.Stderr)
	}
	return exitCodeFor(err)
}

// commands lists the recognized subcommand names.
var commands = map[string]bool{
	"render":    true,
	"templates": true,
	"themes":    true,
	"options":   true,
	"doctor":    true,
	"version":   true,
	"help":      true,
}

// isCommand reports whether s names a subcommand. Matching is case sensitive.
func isCommand(s string) bool {
	return commands[s]
}

// looksLikeMarkdown reports whether s has a markdown file extension.
func looksLikeMarkdown(s string) bool {
	return validateMarkdownExtension(s) == nil
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, getenv func(string) string) string {
	switch {
	case errors.Is(err, neurapress.ErrBrowserConnect):
		return hints.ForBrowserConnect(getenv, hints.HasDockerEnv())
	case errors.Is(err, neurapress.ErrDiagramScript):
		return hints.ForDiagramScript()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, neurapress.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, neurapress.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(templateIDs())
	case errors.Is(err, ErrUnknownCodeTheme):
		return hints.ForCodeTheme(themeIDs())
	case errors.Is(err, ErrWriteHTML):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrInvalidExtension):
		return hints.ForMarkdownExtension()
	}
	return ""
}
