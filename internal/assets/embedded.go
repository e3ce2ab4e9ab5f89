package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed templates/*.yaml
var templates embed.FS

// EmbeddedLoader loads presets from the embedded filesystem.
// Implements TemplateLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a built-in preset by id.
func (e *EmbeddedLoader) LoadTemplate(id string) (*Template, error) {
	if err := ValidateAssetName(id); err != nil {
		return nil, err
	}

	content, err := templates.ReadFile("templates/" + id + templateExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}

	return parseTemplate(content, id)
}

// ListTemplates returns the built-in presets ordered by id.
func (e *EmbeddedLoader) ListTemplates() ([]TemplateInfo, error) {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	infos := make([]TemplateInfo, 0, len(entries))
	for _, entry := range entries {
		id, ok := strings.CutSuffix(entry.Name(), templateExt)
		if !ok || entry.IsDir() {
			continue
		}
		t, err := e.LoadTemplate(id)
		if err != nil {
			return nil, err
		}
		infos = append(infos, t.Info())
	}

	slices.SortFunc(infos, func(a, b TemplateInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos, nil
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
