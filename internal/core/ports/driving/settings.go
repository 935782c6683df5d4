package driving

import "github.com/custodia-labs/docanalyzer/internal/core/domain"

// SettingsService reads and writes the simulation settings.
type SettingsService interface {
	// Get returns the effective settings: defaults overlaid with stored values.
	Get() (domain.Settings, error)

	// Set validates and stores one setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys.
	Keys() []string

	// Path returns where settings are persisted.
	Path() string
}
