package assets

import (
	"errors"
	"slices"
	"strings"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template is not found in the custom location.
type AssetResolver struct {
	custom   TemplateLoader // nil if no custom path configured
	embedded TemplateLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded presets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a preset, trying the custom loader first if available.
func (r *AssetResolver) LoadTemplate(id string) (*Template, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(id)
	}

	t, err := r.custom.LoadTemplate(id)
	if err == nil {
		return t, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrTemplateNotFound) {
		return nil, err
	}

	return r.embedded.LoadTemplate(id)
}

// ListTemplates returns embedded and custom presets ordered by id. A custom
// preset replaces the embedded one with the same id.
func (r *AssetResolver) ListTemplates() ([]TemplateInfo, error) {
	infos, err := r.embedded.ListTemplates()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return infos, nil
	}

	custom, err := r.custom.ListTemplates()
	if err != nil {
		return nil, err
	}
	for _, c := range custom {
		i := slices.IndexFunc(infos, func(e TemplateInfo) bool { return e.ID == c.ID })
		if i >= 0 {
			infos[i] = c
			continue
		}
		infos = append(infos, c)
	}

	slices.SortFunc(infos, func(a, b TemplateInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos, nil
}

// HasCustomLoader returns true if a custom template loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ TemplateLoader = (*AssetResolver)(nil)
