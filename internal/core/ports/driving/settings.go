package driving

import "github.com/custodia-labs/snippets-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, defaults filled in.
	Get() (*domain.AppSettings, error)

	// Set updates a single configuration key after validating it.
	Set(key, value string) error

	// Entries returns every known key with its effective value.
	Entries() ([]SettingEntry, error)

	// Path returns where settings are persisted.
	Path() string
}

// SettingEntry is a single key/value pair shown by `config show`.
type SettingEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}
