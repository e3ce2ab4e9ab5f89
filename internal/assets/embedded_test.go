package assets

import (
	"errors"
	"testing"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"loads default", "default", nil},
		{"loads elegant", "elegant", nil},
		{"loads minimal", "minimal", nil},
		{"returns ErrTemplateNotFound for nonexistent", "nonexistent-xyz", ErrTemplateNotFound},
		{"returns ErrInvalidAssetName for empty id", "", ErrInvalidAssetName},
		{"returns ErrInvalidAssetName for path traversal", "../secret", ErrInvalidAssetName},
		{"returns ErrInvalidAssetName for backslash traversal", "..\\secret", ErrInvalidAssetName},
		{"returns ErrInvalidAssetName for id with dot", "default.yaml", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.id, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) error = %v", tt.id, err)
			}
			if got.ID != tt.id {
				t.Errorf("ID = %q, want %q", got.ID, tt.id)
			}
			if got.Name == "" {
				t.Error("Name is empty")
			}
			if got.Options.Base.ThemeColor == "" {
				t.Error("built-in presets should set a theme color")
			}
		})
	}
}

func TestEmbeddedLoader_PresetValues(t *testing.T) {
	t.Parallel()

	minimal, err := LoadTemplate("minimal")
	if err != nil {
		t.Fatal(err)
	}
	if minimal.Options.BlockStyle(style.BlockCodePre).Flag(style.TitleBarKey, true) {
		t.Error("minimal preset should disable the code title bar")
	}

	elegant, err := LoadTemplate("elegant")
	if err != nil {
		t.Fatal(err)
	}
	if got := elegant.Options.CodeTheme; got != "atom-one-dark" {
		t.Errorf("elegant codeTheme = %q, want atom-one-dark", got)
	}
	if got := style.ToInlineStyleString(elegant.Options.BlockStyle(style.BlockH1)); got == "" {
		t.Error("elegant h1 style is empty")
	}
	if got := elegant.Options.BlockStyle(style.BlockH1)["borderBottom"]; got != "2px solid #8B5CF6" {
		t.Errorf("elegant h1 borderBottom = %v", got)
	}
}

func TestEmbeddedLoader_ListTemplates(t *testing.T) {
	t.Parallel()

	infos, err := ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates() error = %v", err)
	}

	want := []string{"default", "elegant", "minimal"}
	if len(infos) != len(want) {
		t.Fatalf("ListTemplates() returned %d templates, want %d", len(infos), len(want))
	}
	for i, id := range want {
		if infos[i].ID != id {
			t.Errorf("infos[%d].ID = %q, want %q", i, infos[i].ID, id)
		}
		if infos[i].Custom {
			t.Errorf("embedded template %q marked custom", id)
		}
	}
}

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
		wantID  string
	}{
		{"id defaults to file name", "name: X\noptions:\n  codeTheme: nord\n", nil, "t"},
		{"matching id", "id: t\n", nil, "t"},
		{"mismatched id", "id: other\n", ErrInvalidTemplate, ""},
		{"unknown field", "id: t\ncolour: red\n", ErrInvalidTemplate, ""},
		{"empty file", "", ErrInvalidTemplate, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseTemplate([]byte(tt.data), "t")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("parseTemplate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTemplate() error = %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if got.Name == "" {
				t.Error("Name should default to the id")
			}
		})
	}
}
