package assets

import (
	"fmt"

	"github.com/tianyaxiang/neurapress-sub000/internal/style"
	"github.com/tianyaxiang/neurapress-sub000/internal/yamlutil"
)

// DefaultTemplateID is the id of the built-in template used when none is
// requested or the requested one is missing.
const DefaultTemplateID = "default"

// templateExt is the file extension of preset files.
const templateExt = ".yaml"

// Template is a named style preset.
type Template struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Description string                `yaml:"description,omitempty"`
	Options     style.RendererOptions `yaml:"options"`
}

// TemplateInfo describes a template without its options.
type TemplateInfo struct {
	ID          string
	Name        string
	Description string
	Custom      bool // loaded from the custom directory
}

// Info returns the template's listing entry.
func (t *Template) Info() TemplateInfo {
	return TemplateInfo{ID: t.ID, Name: t.Name, Description: t.Description}
}

// parseTemplate decodes a preset file. The id defaults to the file name and
// must match it when set.
func parseTemplate(data []byte, id string) (*Template, error) {
	var t Template
	if err := yamlutil.UnmarshalStrict(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, id, err)
	}
	if t.ID == "" {
		t.ID = id
	}
	if t.ID != id {
		return nil, fmt.Errorf("%w: %q declares id %q", ErrInvalidTemplate, id, t.ID)
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	return &t, nil
}
