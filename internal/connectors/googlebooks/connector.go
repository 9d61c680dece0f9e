package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	books "google.golang.org/api/books/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Field projections keep volume responses down to what the normaliser
// reads. Lookups request the full image set and sale info; searches
// stay thumbnail-sized.
const (
	searchFields = "items(id,volumeInfo(title,subtitle,authors,publisher," +
		"publishedDate,averageRating,ratingsCount,categories," +
		"imageLinks(thumbnail,smallThumbnail),industryIdentifiers,description,pageCount))"

	lookupFields = "totalItems,items(id,volumeInfo(title,subtitle,authors,publisher," +
		"publishedDate,description,pageCount,averageRating,ratingsCount,categories," +
		"imageLinks,industryIdentifiers,language),saleInfo)"
)

// language restriction applied to every volume query.
const langRestrict = "en"

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Config holds the Google Books connector configuration.
type Config struct {
	// APIKey is the Google Books API key. Optional.
	APIKey string

	// Endpoint overrides the API base URL. Used by tests.
	Endpoint string

	// Cache is the response cache. Nil disables caching.
	Cache driven.CacheStore

	// Policy carries the cache lifetimes.
	Policy connectors.CachePolicy
}

// Connector fetches volumes from the Google Books API.
type Connector struct {
	config  Config
	limiter *connectors.RateLimiter

	mu  sync.Mutex
	svc *books.Service
}

// New creates a new Google Books connector.
func New(cfg Config) *Connector {
	return &Connector{
		config:  cfg,
		limiter: connectors.NewRateLimiter(domain.ProvenanceGoogle),
	}
}

// ensureService initialises the books client if not already done.
// Construction is lazy so the first caller's context governs it.
func (c *Connector) ensureService(ctx context.Context) (*books.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.svc != nil {
		return c.svc, nil
	}

	opts := []option.ClientOption{}
	if c.config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(c.config.APIKey))
	} else {
		opts = append(opts, option.WithoutAuthentication())
	}
	if c.config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.config.Endpoint))
	}

	svc, err := books.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create books service: %w", err)
	}
	c.svc = svc
	return svc, nil
}

// Provenance returns the catalog origin tag this connector emits.
func (c *Connector) Provenance() domain.Provenance {
	return domain.ProvenanceGoogle
}

// Capabilities returns what this connector supports.
func (c *Connector) Capabilities() driven.ConnectorCapabilities {
	return driven.ConnectorCapabilities{
		SupportsISBNLookup:    true,
		SupportsNewReleases:   true,
		SupportsSubjectFilter: true,
		RequiresAPIKey:        false, // Optional, raises quota
		SupportsRateLimiting:  true,
		SupportsPagination:    true,
	}
}

// Search queries the volumes API with free text.
func (c *Connector) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.RawRecord, error) {
	key := connectors.CacheKey("google", "search", query, opts.Subject,
		strconv.Itoa(opts.Limit), strconv.Itoa(opts.Offset))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, key); ok {
		return records, nil
	}

	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := svc.Volumes.List(searchQuery(query, opts.Subject)).
		MaxResults(int64(opts.Limit)).
		StartIndex(int64(opts.Offset)).
		LangRestrict(langRestrict).
		Fields(googleapi.Field(searchFields)).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, c.wrapError("search volumes", err)
	}

	records, err := volumeRecords(resp.Items)
	if err != nil {
		return nil, err
	}
	connectors.StoreRecords(ctx, c.config.Cache, key, records, c.config.Policy.SearchTTL)
	return records, nil
}

// FetchByISBN retrieves the single volume for a canonical ISBN-13.
func (c *Connector) FetchByISBN(ctx context.Context, isbn string) (domain.RawRecord, error) {
	key := connectors.CacheKey("google", "lookup", isbn)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, key); ok {
		return record, nil
	}

	svc, err := c.ensureService(ctx)
	if err != nil {
		return domain.RawRecord{}, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.RawRecord{}, err
	}

	call := svc.Volumes.List("isbn:" + isbn).
		MaxResults(1).
		Fields(googleapi.Field(lookupFields)).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return domain.RawRecord{}, c.wrapError("fetch volume", err)
	}
	if resp.TotalItems == 0 || len(resp.Items) == 0 {
		return domain.RawRecord{}, domain.ErrNotFound
	}

	records, err := volumeRecords(resp.Items[:1])
	if err != nil {
		return domain.RawRecord{}, err
	}
	connectors.StoreRecord(ctx, c.config.Cache, key, records[0], c.config.Policy.LookupTTL)
	return records[0], nil
}

// NewReleases fetches one page of the newest-first volume feed.
func (c *Connector) NewReleases(ctx context.Context, opts domain.ReleaseOptions) ([]domain.RawRecord, error) {
	key := connectors.CacheKey("google", "releases", opts.Subject,
		strconv.Itoa(opts.Limit), strconv.Itoa(opts.Offset))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, key); ok {
		return records, nil
	}

	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	call := svc.Volumes.List(releasesQuery(opts.Subject)).
		OrderBy("newest").
		MaxResults(int64(opts.Limit)).
		StartIndex(int64(opts.Offset)).
		LangRestrict(langRestrict).
		Fields(googleapi.Field(searchFields)).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, c.wrapError("fetch releases", err)
	}

	records, err := volumeRecords(resp.Items)
	if err != nil {
		return nil, err
	}
	connectors.StoreRecords(ctx, c.config.Cache, key, records, c.config.Policy.ReleasesTTL)
	return records, nil
}

// Close releases resources.
func (c *Connector) Close() error {
	return nil
}

// wrapError converts googleapi errors to domain error types.
func (c *Connector) wrapError(operation string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return domain.ErrNotFound
		case http.StatusTooManyRequests:
			c.limiter.RecordRateLimitError(0)
			return fmt.Errorf("%w: google books", domain.ErrRateLimited)
		}
	}
	return fmt.Errorf("google books: %s: %w", operation, err)
}

// searchQuery appends the subject restriction to a free-text query.
func searchQuery(query, subject string) string {
	if subject == "" {
		return query
	}
	return fmt.Sprintf("%s subject:%s", query, subject)
}

// releasesQuery builds the feed query: a subject restriction alone, or
// the match-everything query.
func releasesQuery(subject string) string {
	if subject == "" {
		return "*"
	}
	return "subject:" + subject
}

// volumeRecords re-encodes volumes to their wire shape, one raw record
// each.
func volumeRecords(items []*books.Volume) ([]domain.RawRecord, error) {
	records := make([]domain.RawRecord, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		payload, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode volume: %w", err)
		}
		records = append(records, domain.RawRecord{
			Provenance: domain.ProvenanceGoogle,
			SourceID:   item.Id,
			Payload:    payload,
		})
	}
	return records, nil
}
