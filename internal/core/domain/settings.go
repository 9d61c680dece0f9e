package domain

// GoogleSettings configures the commercial catalog connector.
type GoogleSettings struct {
	// Enabled switches the connector on.
	Enabled bool

	// APIKey is the Google Books API key. Empty works for public
	// volume queries but with tighter quotas.
	APIKey string
}

// OpenLibrarySettings configures the open catalog connector.
type OpenLibrarySettings struct {
	// Enabled switches the connector on.
	Enabled bool
}

// LOCSettings configures the archival catalog connector.
type LOCSettings struct {
	// Enabled switches the connector on.
	Enabled bool
}

// ProviderSettings groups the per-catalog connector switches.
type ProviderSettings struct {
	// Google holds commercial catalog settings.
	Google GoogleSettings

	// OpenLibrary holds open catalog settings.
	OpenLibrary OpenLibrarySettings

	// LOC holds archival catalog settings.
	LOC LOCSettings
}

// ReleaseSettings tunes the new-releases validity gate.
type ReleaseSettings struct {
	// WindowPastDays bounds how old a fully-dated release may be.
	WindowPastDays int

	// WindowFutureDays bounds how far ahead a fully-dated release may
	// be announced.
	WindowFutureDays int
}

// CacheSettings tunes the provider response cache.
type CacheSettings struct {
	// Enabled switches response caching on.
	Enabled bool

	// SearchTTLMinutes is the lifetime of cached search responses.
	SearchTTLMinutes int

	// LookupTTLMinutes is the lifetime of cached lookup responses.
	LookupTTLMinutes int

	// ReleasesTTLMinutes is the lifetime of cached releases batches.
	ReleasesTTLMinutes int
}

// TaggingSettings tunes the genre back-fill heuristic.
type TaggingSettings struct {
	// MinSubjects is the authoritative subject count below which the
	// keyword heuristic may back-fill genre tags. The heuristic never
	// runs against a richer taxonomy.
	MinSubjects int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Providers holds the per-catalog connector settings.
	Providers ProviderSettings

	// Releases holds the release gate settings.
	Releases ReleaseSettings

	// Cache holds the response cache settings.
	Cache CacheSettings

	// Tagging holds the genre back-fill settings.
	Tagging TaggingSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// All three catalogs are enabled; the Google API key is left for the
// user to set via the settings command.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Providers: ProviderSettings{
			Google:      GoogleSettings{Enabled: true},
			OpenLibrary: OpenLibrarySettings{Enabled: true},
			LOC:         LOCSettings{Enabled: true},
		},
		Releases: ReleaseSettings{
			WindowPastDays:   365,
			WindowFutureDays: 90,
		},
		Cache: CacheSettings{
			Enabled:            true,
			SearchTTLMinutes:   60,
			LookupTTLMinutes:   24 * 60,
			ReleasesTTLMinutes: 6 * 60,
		},
		Tagging: TaggingSettings{
			MinSubjects: 2,
		},
	}
}
