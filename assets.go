package neurapress

import (
	"errors"

	"github.com/tianyaxiang/neurapress-sub000/internal/assets"
)

// DefaultTemplate is the id of the built-in preset.
const DefaultTemplate = assets.DefaultTemplateID

// Template types shared with the preset loaders.
type (
	// Template is a named style preset.
	Template = assets.Template
	// TemplateInfo describes a preset for listings.
	TemplateInfo = assets.TemplateInfo
)

// TemplateLoader defines the contract for loading style presets.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewTemplateLoader() for filesystem-based loading with
// fallback to embedded presets. Implement this interface for custom backends.
type TemplateLoader interface {
	// LoadTemplate loads a preset by id.
	// Returns ErrTemplateNotFound if the preset doesn't exist.
	LoadTemplate(id string) (*Template, error)

	// ListTemplates lists the available presets ordered by id.
	ListTemplates() ([]TemplateInfo, error)
}

// NewTemplateLoader creates a TemplateLoader for the given base path.
// If basePath is empty, returns a loader using only embedded presets.
// If basePath is set, {basePath}/templates/{id}.yaml takes precedence with
// fallback to embedded.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewTemplateLoader(basePath string) (TemplateLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &templateLoaderAdapter{resolver: resolver}, nil
}

// templateLoaderAdapter wraps the internal resolver to return public errors.
type templateLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *templateLoaderAdapter) LoadTemplate(id string) (*Template, error) {
	t, err := a.resolver.LoadTemplate(id)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return t, nil
}

func (a *templateLoaderAdapter) ListTemplates() ([]TemplateInfo, error) {
	infos, err := a.resolver.ListTemplates()
	if err != nil {
		return nil, convertAssetError(err)
	}
	return infos, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrTemplateNotFound, err) // Invalid name means not found
	case errors.Is(err, assets.ErrInvalidTemplate):
		return wrapError(ErrInvalidTemplate, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
