package driving

import "github.com/custodia-labs/bookdex-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetGoogleAPIKey stores the commercial catalog API key.
	SetGoogleAPIKey(key string) error

	// SetProviderEnabled switches one catalog connector on or off.
	SetProviderEnabled(p domain.Provenance, enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
