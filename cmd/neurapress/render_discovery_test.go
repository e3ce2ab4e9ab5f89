package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	md := writeFile(t, dir, "post.md", "# Post")

	tests := []struct {
		name      string
		outputDir string
		want      string
	}{
		{"next to input", "", filepath.Join(dir, "post.html")},
		{"into directory", filepath.Join(dir, "out"), filepath.Join(dir, "out", "post.html")},
		{"explicit file", filepath.Join(dir, "custom.html"), filepath.Join(dir, "custom.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			files, err := discoverFiles([]string{md}, tt.outputDir)
			if err != nil {
				t.Fatalf("discoverFiles() error = %v", err)
			}
			if len(files) != 1 {
				t.Fatalf("got %d files, want 1", len(files))
			}
			if files[0].InputPath != md || files[0].OutputPath != tt.want {
				t.Errorf("got %+v, want output %s", files[0], tt.want)
			}
		})
	}
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A")
	writeFile(t, dir, "nested/b.markdown", "# B")
	writeFile(t, dir, "nested/ignore.txt", "text")

	out := filepath.Join(t.TempDir(), "site")
	files, err := discoverFiles([]string{dir}, out)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}

	want := map[string]string{
		filepath.Join(dir, "a.md"):              filepath.Join(out, "a.html"),
		filepath.Join(dir, "nested/b.markdown"): filepath.Join(out, "nested", "b.html"),
	}
	for _, f := range files {
		if want[f.InputPath] != f.OutputPath {
			t.Errorf("%s -> %s, want %s", f.InputPath, f.OutputPath, want[f.InputPath])
		}
	}
}

func TestDiscoverFiles_MultipleInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.md", "# A")
	b := writeFile(t, dir, "b.md", "# B")

	files, err := discoverFiles([]string{a, b}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].InputPath != a || files[1].InputPath != b {
		t.Errorf("input order not preserved: %+v", files)
	}
}

func TestDiscoverFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	md := writeFile(t, dir, "a.md", "# A")
	md2 := writeFile(t, dir, "b.md", "# B")
	txt := writeFile(t, dir, "notes.txt", "text")
	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		inputs  []string
		output  string
		wantErr error
	}{
		{"no inputs", nil, "", ErrNoInput},
		{"missing file", []string{filepath.Join(dir, "nope.md")}, "", os.ErrNotExist},
		{"wrong extension", []string{txt}, "", ErrInvalidExtension},
		{"empty directory", []string{empty}, "", ErrNoInput},
		{"single output for many inputs", []string{md, md2}, filepath.Join(dir, "all.html"), ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := discoverFiles(tt.inputs, tt.output)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("discoverFiles() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		outputDir string
		baseDir   string
		want      string
	}{
		{"same directory", "docs/post.md", "", "", filepath.Join("docs", "post.html")},
		{"flat output", "docs/post.md", "out", "", filepath.Join("out", "post.html")},
		{"mirrored tree", "docs/a/b/post.md", "out", "docs", filepath.Join("out", "a", "b", "post.html")},
		{"html target", "docs/post.md", "page.html", "", "page.html"},
		{"htm target", "docs/post.md", "page.HTM", "", "page.HTM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateMarkdownExtension(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"a.md", "dir/b.markdown"} {
		if err := validateMarkdownExtension(path); err != nil {
			t.Errorf("validateMarkdownExtension(%q) = %v", path, err)
		}
	}
	for _, path := range []string{"a.txt", "a", "a.MD", "a.md.bak"} {
		if err := validateMarkdownExtension(path); !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("validateMarkdownExtension(%q) = %v, want ErrInvalidExtension", path, err)
		}
	}
}
