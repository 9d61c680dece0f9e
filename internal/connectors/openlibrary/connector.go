package openlibrary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://openlibrary.org"
	DefaultTimeout = 30 * time.Second
)

const (
	// searchFields trims search docs down to the fields the
	// normaliser reads.
	searchFields = "title,subtitle,author_name,author_key,isbn,key," +
		"publisher,subject,first_publish_year,cover_i"

	// searchLanguage restricts search results to English editions.
	searchLanguage = "eng"

	// releasesQuery matches everything when no subject restricts the
	// feed.
	releasesQuery = "language:eng"
)

// Ensure Connector implements the interfaces.
var (
	_ driven.Connector          = (*Connector)(nil)
	_ driven.DiscoveryConnector = (*Connector)(nil)
)

// Config holds settings for the Open Library connector.
type Config struct {
	// BaseURL overrides the production API host. Used by tests.
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// Cache is the optional response cache. Nil disables caching.
	Cache driven.CacheStore

	// Policy sets cache entry lifetimes.
	Policy connectors.CachePolicy
}

// Connector fetches raw records from the Open Library API.
type Connector struct {
	config  Config
	client  *http.Client
	limiter *connectors.RateLimiter
}

// New creates an Open Library connector.
func New(cfg Config) *Connector {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Connector{
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: connectors.NewRateLimiter(domain.ProvenanceOpenLibrary),
	}
}

// Provenance returns the catalog origin tag this connector emits.
func (c *Connector) Provenance() domain.Provenance {
	return domain.ProvenanceOpenLibrary
}

// Capabilities returns what this connector supports.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		SupportsISBNLookup:    true,
		SupportsNewReleases:   true,
		SupportsSubjectFilter: true,
		RequiresAPIKey:        false,
		SupportsRateLimiting:  true,
		SupportsPagination:    true,
	}
}

// Search queries search.json with free text. Each hit becomes one
// search-shaped raw record.
func (c *Connector) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RawRecord, error) {
	key := connectors.CacheKey("ol", "search", query, opts.Subject,
		strconv.Itoa(opts.Limit), strconv.Itoa(opts.Offset))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, key); ok {
		return records, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(opts.Limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	params.Set("language", searchLanguage)
	if opts.Subject != "" {
		params.Set("subject", opts.Subject)
	}

	records, err := c.searchDocs(ctx, params)
	if err != nil {
		return nil, err
	}

	connectors.StoreRecords(ctx, c.config.Cache, key, records, c.config.Policy.SearchTTL)
	return records, nil
}

// FetchByISBN retrieves the data-mode record for a canonical ISBN-13.
func (c *Connector) FetchByISBN(ctx context.Context, isbn string) (domain.RawRecord, error) {
	key := connectors.CacheKey("ol", "lookup", isbn)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, key); ok {
		return record, nil
	}

	bibkey := "ISBN:" + isbn
	params := url.Values{}
	params.Set("bibkeys", bibkey)
	params.Set("format", "json")
	params.Set("jscmd", "data")

	var page map[string]json.RawMessage
	if err := c.getJSON(ctx, "/api/books", params, &page); err != nil {
		return domain.RawRecord{}, err
	}

	// The books API answers 200 with an empty object for unknown
	// ISBNs.
	payload, ok := page[bibkey]
	if !ok {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceOpenLibrary,
		SourceID:   isbn,
		Shape:      domain.ShapeDataRecord,
		Payload:    payload,
	}
	connectors.StoreRecord(ctx, c.config.Cache, key, record, c.config.Policy.LookupTTL)
	return record, nil
}

// NewReleases fetches one page of search.json sorted newest first.
func (c *Connector) NewReleases(ctx context.Context, opts domain.ReleaseOptions) ([]domain.RawRecord, error) {
	key := connectors.CacheKey("ol", "releases", opts.Subject,
		strconv.Itoa(opts.Limit), strconv.Itoa(opts.Offset))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, key); ok {
		return records, nil
	}

	query := releasesQuery
	if opts.Subject != "" {
		query = "subject:" + opts.Subject
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "new")
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(opts.Limit))
	params.Set("offset", strconv.Itoa(opts.Offset))

	records, err := c.searchDocs(ctx, params)
	if err != nil {
		return nil, err
	}

	connectors.StoreRecords(ctx, c.config.Cache, key, records, c.config.Policy.ReleasesTTL)
	return records, nil
}

// Close releases resources.
func (c *Connector) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// searchPage is the JSON content of a search.json response. Docs stay
// raw so each one can travel as its own record payload.
type searchPage struct {
	NumFound int               `json:"numFound"`
	Docs     []json.RawMessage `json:"docs"`
}

// searchDocs runs one search.json page and wraps each doc as a
// search-shaped raw record.
func (c *Connector) searchDocs(ctx context.Context, params url.Values) ([]domain.RawRecord, error) {
	var page searchPage
	if err := c.getJSON(ctx, "/search.json", params, &page); err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(page.Docs))
	for _, doc := range page.Docs {
		records = append(records, domain.RawRecord{
			Provenance: domain.ProvenanceOpenLibrary,
			SourceID:   docKey(doc),
			Shape:      domain.ShapeSearchDoc,
			Payload:    doc,
		})
	}
	return records, nil
}

// docKey pulls the work key out of a search doc to identify the
// record.
func docKey(doc json.RawMessage) string {
	var probe struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return ""
	}
	return lastSegment(probe.Key)
}

// lastSegment strips the path prefix from keys like "/works/OL45804W".
func lastSegment(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}
