package driving

import "github.com/custodia-labs/docfind/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings with defaults applied.
	Get() (*domain.Settings, error)

	// Save validates and persists application settings.
	Save(settings *domain.Settings) error

	// Set parses value for a single dotted key, e.g. "search.threshold",
	// and persists the result. Unknown keys and unparsable values are
	// rejected with domain.ErrInvalidInput.
	Set(key, value string) error

	// Path returns where settings are persisted.
	Path() string
}
