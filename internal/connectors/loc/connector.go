package loc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
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
	DefaultBaseURL = "https://www.loc.gov"
	DefaultTimeout = 10 * time.Second
)

// userAgent identifies the client. The API blocks anonymous requests.
const userAgent = "bookdex/1.0 (+https://github.com/custodia-labs/bookdex-cli)"

// webPageFormat marks results that are loc.gov pages, not catalog
// items.
const webPageFormat = "web page"

// Ensure Connector implements the interfaces.
var (
	_ driven.Connector           = (*Connector)(nil)
	_ driven.ControlNumberLookup = (*Connector)(nil)
)

// Config holds settings for the Library of Congress connector.
type Config struct {
	// BaseURL overrides the production API host. Used by tests.
	BaseURL string

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration

	// Cache is the optional response cache. Nil disables caching.
	Cache driven.CacheStore

	// Policy sets cache entry lifetimes.
	Policy connectors.CachePolicy
}

// Connector fetches raw records from the Library of Congress API.
type Connector struct {
	config  Config
	client  *http.Client
	limiter *connectors.RateLimiter
}

// New creates a Library of Congress connector.
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
		limiter: connectors.NewRateLimiter(domain.ProvenanceLOC),
	}
}

// Provenance returns the catalog origin tag this connector emits.
func (c *Connector) Provenance() domain.Provenance {
	return domain.ProvenanceLOC
}

// Capabilities returns what this connector supports.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		SupportsISBNLookup:    true,
		SupportsNewReleases:   false,
		SupportsSubjectFilter: false,
		RequiresAPIKey:        false,
		SupportsRateLimiting:  true,
		SupportsPagination:    false,
	}
}

// Search queries the general search endpoint. Every emitted record is
// tagged as primary source material.
func (c *Connector) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RawRecord, error) {
	key := connectors.CacheKey("loc", "search", query, strconv.Itoa(opts.Limit))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, key); ok {
		return records, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("fo", "json")
	params.Set("c", strconv.Itoa(opts.Limit))
	params.Set("at", "results")

	var page resultsPage
	if err := c.getJSON(ctx, "/search", params, &page); err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(page.Results))
	for _, item := range page.Results {
		if isWebPage(item) {
			continue
		}
		records = append(records, domain.RawRecord{
			Provenance:    domain.ProvenanceLOC,
			SourceID:      itemID(item),
			Payload:       item,
			PrimarySource: true,
		})
	}

	connectors.StoreRecords(ctx, c.config.Cache, key, records, c.config.Policy.SearchTTL)
	return records, nil
}

// FetchByISBN retrieves the most relevant result for a canonical
// ISBN-13 from the books endpoint.
func (c *Connector) FetchByISBN(ctx context.Context, isbn string) (domain.RawRecord, error) {
	key := connectors.CacheKey("loc", "lookup", isbn)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, key); ok {
		return record, nil
	}

	params := url.Values{}
	params.Set("q", "isbn:"+isbn)
	params.Set("fo", "json")
	params.Set("at", "results,pagination")

	var page resultsPage
	if err := c.getJSON(ctx, "/books", params, &page); err != nil {
		return domain.RawRecord{}, err
	}
	if len(page.Results) == 0 {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceLOC,
		SourceID:   isbn,
		Payload:    page.Results[0],
	}
	connectors.StoreRecord(ctx, c.config.Cache, key, record, c.config.Policy.LookupTTL)
	return record, nil
}

// FetchByControlNumber retrieves the record for an LCCN through the
// direct item endpoint.
func (c *Connector) FetchByControlNumber(ctx context.Context, number string) (domain.RawRecord, error) {
	lccn := strings.TrimSpace(number)
	key := connectors.CacheKey("loc", "item", lccn)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, key); ok {
		return record, nil
	}

	params := url.Values{}
	params.Set("fo", "json")

	var page itemPage
	if err := c.getJSON(ctx, "/item/"+lccn+"/", params, &page); err != nil {
		return domain.RawRecord{}, err
	}

	// The endpoint can answer 200 with an absent or empty item.
	item := strings.TrimSpace(string(page.Item))
	if item == "" || item == "null" || item == "{}" {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceLOC,
		SourceID:   lccn,
		Payload:    page.Item,
	}
	connectors.StoreRecord(ctx, c.config.Cache, key, record, c.config.Policy.LookupTTL)
	return record, nil
}

// NewReleases is not supported. The catalog has no recency feed.
func (c *Connector) NewReleases(ctx context.Context, opts domain.ReleaseOptions) ([]domain.RawRecord, error) {
	return nil, fmt.Errorf("%w: library of congress new releases", domain.ErrNotSupported)
}

// Close releases resources.
func (c *Connector) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// resultsPage is the JSON content of a results-trimmed response.
// Results stay raw so each one can travel as its own record payload.
type resultsPage struct {
	Results []json.RawMessage `json:"results"`
}

// itemPage is the JSON content of a direct item response.
type itemPage struct {
	Item json.RawMessage `json:"item"`
}

// getJSON performs a rate-limited GET against the API and decodes the
// response body into v.
func (c *Connector) getJSON(ctx context.Context, path string, params url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.config.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		c.limiter.RecordRateLimitError(connectors.RetryAfter(resp))
		return fmt.Errorf("%w: library of congress", domain.ErrRateLimited)
	default:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("library of congress error (status %d): failed to read response", resp.StatusCode)
		}
		return fmt.Errorf("library of congress error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isWebPage reports whether a search result is a loc.gov web page
// rather than a catalog item.
func isWebPage(item json.RawMessage) bool {
	var probe struct {
		OriginalFormat []string `json:"original_format"`
	}
	if err := json.Unmarshal(item, &probe); err != nil {
		return false
	}
	for _, format := range probe.OriginalFormat {
		if format == webPageFormat {
			return true
		}
	}
	return false
}

// itemID pulls the loc.gov identifier out of a search result.
func itemID(item json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(item, &probe); err != nil {
		return ""
	}
	return probe.ID
}
