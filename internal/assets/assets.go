package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadTemplate loads a built-in preset by id.
// Returns ErrTemplateNotFound if the preset does not exist.
// Returns ErrInvalidAssetName if the id contains path separators or traversal.
func LoadTemplate(id string) (*Template, error) {
	return defaultLoader.LoadTemplate(id)
}

// ListTemplates returns the built-in presets ordered by id.
func ListTemplates() ([]TemplateInfo, error) {
	return defaultLoader.ListTemplates()
}
