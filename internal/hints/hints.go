// Package hints turns common neurapress failures into one-line suggestions.
// Every hint reads "\n  hint: <text>" so it can be appended to an error line.
package hints

import (
	"strings"

	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
)

// Env looks up an environment variable. os.Getenv satisfies it.
type Env func(key string) string

// HasDockerEnv reports whether /.dockerenv exists.
var HasDockerEnv = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by common CI runners.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// ContainerMarker names what marks the process as containerized, or returns
// "" outside a container. dockerEnv is the result of HasDockerEnv.
func ContainerMarker(getenv Env, dockerEnv bool) string {
	switch {
	case getenv("NEURAPRESS_CONTAINER") == "1":
		return "NEURAPRESS_CONTAINER=1"
	case dockerEnv:
		return "/.dockerenv"
	case getenv("container") != "":
		return "container=" + getenv("container")
	case getenv("KUBERNETES_SERVICE_HOST") != "":
		return "KUBERNETES_SERVICE_HOST"
	}
	return ""
}

// InCI reports whether a CI runner variable is set.
func InCI(getenv Env) bool {
	for _, v := range ciVars {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests how to get Chrome running for --diagrams.
func ForBrowserConnect(getenv Env, dockerEnv bool) string {
	var hints []string

	sandboxed := InCI(getenv) || ContainerMarker(getenv, dockerEnv) != ""
	if sandboxed && getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or drop --diagrams to keep diagram placeholders")

	return formatHints(hints)
}

// ForDiagramScript covers a mermaid script that failed to load in the page.
func ForDiagramScript() string {
	return format("check network access or point diagrams.scriptURL at a reachable mermaid.min.js")
}

// ForTimeout covers diagrams that did not finish in time.
func ForTimeout() string {
	return format("raise --timeout or diagrams.timeout for large diagrams")
}

// ForConfigNotFound suggests --config, or creating the user-level file among
// searchedPaths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(strings.ReplaceAll(p, "\\", "/"), ".config/neurapress") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory covers an HTML file that could not be written.
func ForOutputDirectory() string {
	return format("check that the -o directory exists or can be created and is writable")
}

// ForTemplateNotFound lists the available template ids.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") +
		"; custom templates go in <asset-path>/templates/<id>.yaml (see 'neurapress templates')")
}

// ForCodeTheme lists the available code theme ids.
func ForCodeTheme(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + " (see 'neurapress themes')")
}

// ForNoInput covers a render call without Markdown input.
func ForNoInput() string {
	return format("pass a .md file or a directory, e.g. 'neurapress render post.md'")
}

// ForMarkdownExtension covers an input that is not a Markdown file.
func ForMarkdownExtension() string {
	return format("inputs must end in .md or .markdown")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
