package neurapress

import (
	"errors"

	"github.com/tianyaxiang/neurapress-sub000/internal/diagram"
)

// Sentinel errors for library operations.
var (
	// Template errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Diagram rasterization errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrDiagramScript  = errors.New("diagram script unavailable")
	ErrDiagramRender  = errors.New("diagram render failed")

	// ErrSuperseded is returned by a diagram pass whose render was replaced
	// by a newer one. Its result must be discarded.
	ErrSuperseded = diagram.ErrSuperseded
)
