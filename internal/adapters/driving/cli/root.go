package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
)

// version is set at build time via ldflags.
var version = "dev"

// Core services injected by main before Execute.
var (
	searchService    driving.SearchService
	lookupService    driving.LookupService
	releaseService   driving.ReleaseService
	discoveryService driving.DiscoveryService
	genreCatalog     driving.GenreCatalog
	settingsService  driving.SettingsService
	cacheAdmin       driving.CacheAdmin
)

var rootCmd = &cobra.Command{
	Use:   "bookdex",
	Short: "Bibliographic search and identity resolution",
	Long: `Bookdex searches multiple book catalogs at once and merges their
records into one canonical result per book.

Records from Google Books, Open Library, and the Library of Congress
are grouped by identity (ISBN-13, or work key, or title/author),
merged field by field in catalog precedence order, and enriched with
normalised subjects, series detection, format and content tags.`,
	SilenceUsage: true,
}

// Services bundles the core services the CLI commands depend on.
type Services struct {
	Search    driving.SearchService
	Lookup    driving.LookupService
	Releases  driving.ReleaseService
	Discovery driving.DiscoveryService
	Genres    driving.GenreCatalog
	Settings  driving.SettingsService
	Cache     driving.CacheAdmin
}

// SetServices injects the core services into the CLI commands.
func SetServices(s Services) {
	searchService = s.Search
	lookupService = s.Lookup
	releaseService = s.Releases
	discoveryService = s.Discovery
	genreCatalog = s.Genres
	settingsService = s.Settings
	cacheAdmin = s.Cache
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// Cancelling the context aborts in-flight catalog requests.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
