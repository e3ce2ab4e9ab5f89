package assets

// TemplateLoader defines the contract for loading template presets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type TemplateLoader interface {
	// LoadTemplate loads a template by id (without extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the id contains invalid characters.
	LoadTemplate(id string) (*Template, error)

	// ListTemplates returns the available templates ordered by id.
	ListTemplates() ([]TemplateInfo, error)
}
