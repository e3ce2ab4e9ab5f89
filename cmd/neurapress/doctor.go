package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
	"github.com/tianyaxiang/neurapress-sub000/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorReport holds all diagnostic information.
// Markdown rendering needs nothing external; only --diagrams needs Chrome,
// so a missing browser is a warning, not an error.
type doctorReport struct {
	Status    string       `json:"status"`
	Chrome    chromeStatus `json:"chrome"`
	Env       hostStatus   `json:"environment"`
	Templates []string     `json:"templates"`
	System    systemStatus `json:"system"`
	Warnings  []string     `json:"warnings,omitempty"`
	Errors    []string     `json:"errors,omitempty"`
}

// chromeStatus holds Chrome/Chromium detection results.
type chromeStatus struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// hostStatus holds environment detection results.
type hostStatus struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemStatus holds system check results.
type systemStatus struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorChecks are the probes run by the doctor command; tests replace them.
type doctorChecks struct {
	lookPath    func() (string, bool)
	version     func(path string) (string, error)
	dockerEnv   func() bool
}

func defaultDoctorChecks() doctorChecks {
	return doctorChecks{
		lookPath: launcher.LookPath,
		version: func(path string) (string, error) {
			out, err := exec.Command(path, "--version").Output() // #nosec G204 -- browser path from env or rod lookup
			return strings.TrimSpace(string(out)), err
		},
		dockerEnv:   hints.HasDockerEnv,
	}
}

// runDoctor executes the doctor command.
// Returns an error only when rendering itself cannot work.
func runDoctor(args []string, env *Environment) error {
	return runDoctorWith(args, env, defaultDoctorChecks())
}

func runDoctorWith(args []string, env *Environment, checks doctorChecks) error {
	jsonOutput := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		default:
			return fmt.Errorf("%w: unknown doctor argument %q", ErrUsage, arg)
		}
	}

	report := diagnose(env, checks)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report)
	} else {
		printDoctorReport(env.Stdout, report)
	}

	if report.Status == statusErrors {
		return fmt.Errorf("doctor found %d error(s)", len(report.Errors))
	}
	return nil
}

// diagnose performs all diagnostic checks.
func diagnose(env *Environment, checks doctorChecks) *doctorReport {
	r := &doctorReport{
		Status: statusReady,
		Env: hostStatus{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  env.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: env.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(r, checks)
	checkHost(r, env, checks)
	checkTemplates(r)
	checkSystem(r)

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	}
	return r
}

// checkChrome locates the browser used by --diagrams.
func checkChrome(r *doctorReport, checks doctorChecks) {
	path := r.Env.BrowserBin
	if path == "" {
		var found bool
		path, found = checks.lookPath()
		if !found {
			r.Warnings = append(r.Warnings, "Chrome/Chromium not found; --diagrams unavailable. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	if !fileutil.FileExists(path) {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Chrome not found at %s; --diagrams unavailable", path))
		return
	}

	r.Chrome.Found = true
	r.Chrome.Path = path
	r.Chrome.Sandbox = r.Env.NoSandbox != "1"

	v, err := checks.version(path)
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
		return
	}
	r.Chrome.Version = v
}

// checkHost detects container and CI environments.
func checkHost(r *doctorReport, env *Environment, checks doctorChecks) {
	if marker := hints.ContainerMarker(env.Getenv, checks.dockerEnv()); marker != "" {
		r.Env.Container, r.Env.ContainerHint = true, marker
	}
	r.Env.CI = hints.InCI(env.Getenv)

	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.Warnings = append(r.Warnings, "Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for --diagrams")
	}
}

// checkTemplates verifies the embedded templates load.
func checkTemplates(r *doctorReport) {
	loader, err := neurapress.NewTemplateLoader("")
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("Template loader: %v", err))
		return
	}
	for _, id := range templateIDs() {
		if _, err := loader.LoadTemplate(id); err != nil {
			r.Errors = append(r.Errors, fmt.Sprintf("Template %s: %v", id, err))
			continue
		}
		r.Templates = append(r.Templates, id)
	}
	if len(r.Templates) == 0 {
		r.Errors = append(r.Errors, "No templates available")
	}
}

// checkSystem verifies the temp directory used for the diagram host page.
func checkSystem(r *doctorReport) {
	_, cleanup, err := fileutil.WriteTempFile("doctor", "html")
	if err != nil {
		r.Warnings = append(r.Warnings, fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	cleanup()
	r.System.TempWritable = true
}

// printDoctorReport outputs human-readable diagnostic results.
func printDoctorReport(w io.Writer, r *doctorReport) {
	fmt.Fprintln(w, "neurapress doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (for --diagrams)")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Templates")
	if len(r.Templates) > 0 {
		fmt.Fprintf(w, "  [OK] %s\n", strings.Join(r.Templates, ", "))
	} else {
		fmt.Fprintln(w, "  [ERROR] none loaded")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [WARN] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", e)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
