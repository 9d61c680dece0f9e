package services

import (
	"fmt"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyGoogleEnabled       = "providers.google.enabled"
	keyGoogleAPIKey        = "providers.google.api_key"
	keyOpenLibraryEnabled  = "providers.open_library.enabled"
	keyLOCEnabled          = "providers.loc.enabled"
	keyReleaseWindowPast   = "releases.window_past_days"
	keyReleaseWindowFuture = "releases.window_future_days"
	keyCacheEnabled        = "cache.enabled"
	keyCacheSearchTTL      = "cache.search_ttl_minutes"
	keyCacheLookupTTL      = "cache.lookup_ttl_minutes"
	keyCacheReleasesTTL    = "cache.releases_ttl_minutes"
	keyTaggingMinSubjects  = "tagging.min_subjects"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Providers: domain.ProviderSettings{
			Google: domain.GoogleSettings{
				Enabled: s.getBool(keyGoogleEnabled, defaults.Providers.Google.Enabled),
				APIKey:  s.configStore.GetString(keyGoogleAPIKey), // No default - empty means unkeyed quota
			},
			OpenLibrary: domain.OpenLibrarySettings{
				Enabled: s.getBool(keyOpenLibraryEnabled, defaults.Providers.OpenLibrary.Enabled),
			},
			LOC: domain.LOCSettings{
				Enabled: s.getBool(keyLOCEnabled, defaults.Providers.LOC.Enabled),
			},
		},
		Releases: domain.ReleaseSettings{
			WindowPastDays:   s.getInt(keyReleaseWindowPast, defaults.Releases.WindowPastDays),
			WindowFutureDays: s.getInt(keyReleaseWindowFuture, defaults.Releases.WindowFutureDays),
		},
		Cache: domain.CacheSettings{
			Enabled:            s.getBool(keyCacheEnabled, defaults.Cache.Enabled),
			SearchTTLMinutes:   s.getInt(keyCacheSearchTTL, defaults.Cache.SearchTTLMinutes),
			LookupTTLMinutes:   s.getInt(keyCacheLookupTTL, defaults.Cache.LookupTTLMinutes),
			ReleasesTTLMinutes: s.getInt(keyCacheReleasesTTL, defaults.Cache.ReleasesTTLMinutes),
		},
		Tagging: domain.TaggingSettings{
			MinSubjects: s.getInt(keyTaggingMinSubjects, defaults.Tagging.MinSubjects),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save provider settings
	if err := s.configStore.Set(keyGoogleEnabled, settings.Providers.Google.Enabled); err != nil {
		return fmt.Errorf("save google enabled: %w", err)
	}
	if settings.Providers.Google.APIKey != "" {
		if err := s.configStore.Set(keyGoogleAPIKey, settings.Providers.Google.APIKey); err != nil {
			return fmt.Errorf("save google api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyOpenLibraryEnabled, settings.Providers.OpenLibrary.Enabled); err != nil {
		return fmt.Errorf("save open_library enabled: %w", err)
	}
	if err := s.configStore.Set(keyLOCEnabled, settings.Providers.LOC.Enabled); err != nil {
		return fmt.Errorf("save loc enabled: %w", err)
	}

	// Save release gate settings
	if err := s.configStore.Set(keyReleaseWindowPast, settings.Releases.WindowPastDays); err != nil {
		return fmt.Errorf("save release window_past_days: %w", err)
	}
	if err := s.configStore.Set(keyReleaseWindowFuture, settings.Releases.WindowFutureDays); err != nil {
		return fmt.Errorf("save release window_future_days: %w", err)
	}

	// Save cache settings
	if err := s.configStore.Set(keyCacheEnabled, settings.Cache.Enabled); err != nil {
		return fmt.Errorf("save cache enabled: %w", err)
	}
	if err := s.configStore.Set(keyCacheSearchTTL, settings.Cache.SearchTTLMinutes); err != nil {
		return fmt.Errorf("save cache search_ttl_minutes: %w", err)
	}
	if err := s.configStore.Set(keyCacheLookupTTL, settings.Cache.LookupTTLMinutes); err != nil {
		return fmt.Errorf("save cache lookup_ttl_minutes: %w", err)
	}
	if err := s.configStore.Set(keyCacheReleasesTTL, settings.Cache.ReleasesTTLMinutes); err != nil {
		return fmt.Errorf("save cache releases_ttl_minutes: %w", err)
	}

	// Save tagging settings
	if err := s.configStore.Set(keyTaggingMinSubjects, settings.Tagging.MinSubjects); err != nil {
		return fmt.Errorf("save tagging min_subjects: %w", err)
	}

	return nil
}

// SetGoogleAPIKey stores the commercial catalog API key.
func (s *SettingsService) SetGoogleAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("api key must not be empty")
	}
	return s.configStore.Set(keyGoogleAPIKey, key)
}

// SetProviderEnabled switches one catalog connector on or off.
func (s *SettingsService) SetProviderEnabled(p domain.Provenance, enabled bool) error {
	var key string
	switch p {
	case domain.ProvenanceGoogle:
		key = keyGoogleEnabled
	case domain.ProvenanceOpenLibrary:
		key = keyOpenLibraryEnabled
	case domain.ProvenanceLOC:
		key = keyLOCEnabled
	default:
		return fmt.Errorf("unknown provider: %s", p)
	}
	return s.configStore.Set(key, enabled)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
