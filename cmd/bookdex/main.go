package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/bookdex-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bookdex-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/connectors/googlebooks"
	"github.com/custodia-labs/bookdex-cli/internal/connectors/loc"
	"github.com/custodia-labs/bookdex-cli/internal/connectors/openlibrary"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/services"
	"github.com/custodia-labs/bookdex-cli/internal/enrichers"
	"github.com/custodia-labs/bookdex-cli/internal/logger"
	"github.com/custodia-labs/bookdex-cli/internal/normalisers"
	gbnorm "github.com/custodia-labs/bookdex-cli/internal/normalisers/googlebooks"
	locnorm "github.com/custodia-labs/bookdex-cli/internal/normalisers/loc"
	olnorm "github.com/custodia-labs/bookdex-cli/internal/normalisers/openlibrary"
	"github.com/custodia-labs/bookdex-cli/internal/taxonomy"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	if os.Getenv("BOOKDEX_VERBOSE") != "" {
		logger.SetVerbose(true)
	}

	configDir := os.Getenv("BOOKDEX_CONFIG_DIR")

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	vocabStore, err := file.NewVocabularyStore(configDir)
	if err != nil {
		return fmt.Errorf("open vocabulary store: %w", err)
	}
	vocab, err := vocabStore.Load()
	if err != nil {
		return fmt.Errorf("load vocabulary: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if key := os.Getenv("GOOGLE_BOOKS_API_KEY"); key != "" {
		settings.Providers.Google.APIKey = key
	}

	store, err := sqlite.NewStore(os.Getenv("BOOKDEX_DATA_DIR"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	var cache driven.CacheStore
	if settings.Cache.Enabled {
		cache = store.CacheStore()
	}
	policy := connectors.PolicyFromSettings(settings.Cache)

	var google *googlebooks.Connector
	if settings.Providers.Google.Enabled {
		google = googlebooks.New(googlebooks.Config{
			APIKey: settings.Providers.Google.APIKey,
			Cache:  cache,
			Policy: policy,
		})
	}
	var openLib *openlibrary.Connector
	if settings.Providers.OpenLibrary.Enabled {
		openLib = openlibrary.New(openlibrary.Config{Cache: cache, Policy: policy})
	}
	var locConn *loc.Connector
	if settings.Providers.LOC.Enabled {
		locConn = loc.New(loc.Config{Cache: cache, Policy: policy})
	}

	// Slice order is merge precedence: commercial catalog first, then
	// the open catalog, then the archival one.
	var catalogs []driven.Connector
	if google != nil {
		catalogs = append(catalogs, google)
	}
	if openLib != nil {
		catalogs = append(catalogs, openLib)
	}
	if locConn != nil {
		catalogs = append(catalogs, locConn)
	}

	registry := normalisers.NewRegistry()
	registry.Register(gbnorm.New())
	registry.Register(olnorm.New())
	registry.Register(locnorm.New())

	merger := services.NewMerger(enrichers.DefaultPipeline(vocab, settings.Tagging))

	fiction, err := taxonomy.Fiction()
	if err != nil {
		return fmt.Errorf("load fiction taxonomy: %w", err)
	}
	nonFiction, err := taxonomy.NonFiction()
	if err != nil {
		return fmt.Errorf("load non-fiction taxonomy: %w", err)
	}

	// Interface handles must stay nil when a provider is disabled.
	// Assigning a nil concrete pointer would make them non-nil and
	// defeat the services' optional-dependency checks.
	var (
		discovery driven.DiscoveryConnector
		discNorm  driven.DiscoveryNormaliser
		control   driven.ControlNumberLookup
		rescue    driven.Connector
		fallback  driven.Connector
	)
	if openLib != nil {
		discovery = openLib
		discNorm = olnorm.New()
	}
	if locConn != nil {
		control = locConn
	}
	if google != nil {
		rescue = google
		fallback = google
	}

	searchService := services.NewSearchService(catalogs, registry, merger)
	lookupService := services.NewLookupService(
		catalogs, registry, merger, discovery, discNorm, control,
	)

	svc := cli.Services{
		Search:   searchService,
		Lookup:   lookupService,
		Genres:   services.NewGenreService(fiction, nonFiction),
		Settings: settingsService,
		Cache:    services.NewCacheAdminService(store.CacheStore()),
	}

	// Release dredging and author discovery are built on the open
	// catalog's feeds, so they are only offered when it is enabled.
	if openLib != nil {
		gate := services.NewReleaseGate(vocab, settings.Releases)
		svc.Releases = services.NewReleaseService(
			openLib, rescue, registry, merger, gate, store.RunStore(),
		)
		svc.Discovery = services.NewDiscoveryService(
			openLib, olnorm.New(), fallback, registry, merger,
		)
	}

	cli.SetServices(svc)
	cli.SetTUIConfig(&cli.TUIConfig{
		SearchService: searchService,
		LookupService: lookupService,
	})
	cli.SetVersion(version)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cli.ExecuteContext(ctx)
}
