package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: neurapress <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to inline-styled HTML")
	fmt.Fprintln(w, "  templates  List available templates")
	fmt.Fprintln(w, "  themes     List code highlighting themes")
	fmt.Fprintln(w, "  options    Print resolved style options as YAML")
	fmt.Fprintln(w, "  doctor     Check the environment for --diagrams")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'neurapress help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: neurapress render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to HTML fragments with all styling inline,")
	fmt.Fprintln(w, "ready to paste into an editor that strips stylesheets.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --standalone          Write a complete HTML document")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -t, --template <id>       Template id (see 'neurapress templates')")
	fmt.Fprintln(w, "      --theme-color <c>     Primary color, e.g. #0F4C81")
	fmt.Fprintln(w, "      --font-size <s>       Base font size, e.g. 16px")
	fmt.Fprintln(w, "      --code-theme <id>     Code theme (see 'neurapress themes')")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --unsafe-html         Pass raw HTML through unchanged")
	fmt.Fprintln(w, "      --bullets             Turn \"•\" lines into list items")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagrams:")
	fmt.Fprintln(w, "      --diagrams            Render mermaid diagrams to SVG (needs Chrome)")
	fmt.Fprintln(w, "      --timeout <d>         Per-diagram timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NEURAPRESS_CONFIG, NEURAPRESS_TEMPLATE, NEURAPRESS_CODE_THEME,")
	fmt.Fprintln(w, "  NEURAPRESS_OUTPUT_DIR, NEURAPRESS_TIMEOUT, NEURAPRESS_WORKERS")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN, ROD_NO_SANDBOX")
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: neurapress templates [--asset-path <dir>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List available templates. Templates in --asset-path override")
	fmt.Fprintln(w, "embedded ones with the same id.")
}

// printOptionsUsage prints usage for the options command.
func printOptionsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: neurapress options [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the style options a render would use, as YAML.")
	fmt.Fprintln(w, "Accepts the config and styling flags of 'render'.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "templates":
		printTemplatesUsage(env.Stdout)
	case "themes":
		fmt.Fprintln(env.Stdout, "Usage: neurapress themes")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List code highlighting themes.")
	case "options":
		printOptionsUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: neurapress doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, sandbox settings and templates. Exits 1 only when")
		fmt.Fprintln(env.Stdout, "rendering itself cannot work; a missing browser is a warning.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: neurapress version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: neurapress help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
