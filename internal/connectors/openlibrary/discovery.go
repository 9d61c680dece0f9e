package openlibrary

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// editionsPageLimit caps one editions listing at a single page.
const editionsPageLimit = 50

// FetchAuthor retrieves an author entity by its Open Library key.
func (c *Connector) FetchAuthor(ctx context.Context, key string) (domain.RawRecord, error) {
	authorKey := lastSegment(key)
	cacheKey := connectors.CacheKey("ol", "author", authorKey)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, cacheKey); ok {
		return record, nil
	}

	var payload json.RawMessage
	if err := c.getJSON(ctx, "/authors/"+authorKey+".json", nil, &payload); err != nil {
		return domain.RawRecord{}, err
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceOpenLibrary,
		SourceID:   authorKey,
		Payload:    payload,
	}
	connectors.StoreRecord(ctx, c.config.Cache, cacheKey, record, c.config.Policy.LookupTTL)
	return record, nil
}

// FetchWorkDetails retrieves the work-level record for a work key.
func (c *Connector) FetchWorkDetails(ctx context.Context, workKey string) (domain.RawRecord, error) {
	key := lastSegment(workKey)
	cacheKey := connectors.CacheKey("ol", "work", key)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, cacheKey); ok {
		return record, nil
	}

	var payload json.RawMessage
	if err := c.getJSON(ctx, "/works/"+key+".json", nil, &payload); err != nil {
		return domain.RawRecord{}, err
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceOpenLibrary,
		SourceID:   key,
		Payload:    payload,
	}
	connectors.StoreRecord(ctx, c.config.Cache, cacheKey, record, c.config.Policy.LookupTTL)
	return record, nil
}

// FetchWorkEditions retrieves one page of the editions list for a work
// key.
func (c *Connector) FetchWorkEditions(ctx context.Context, workKey string) (domain.RawRecord, error) {
	key := lastSegment(workKey)
	cacheKey := connectors.CacheKey("ol", "editions", key)
	if record, ok := connectors.CachedRecord(ctx, c.config.Cache, cacheKey); ok {
		return record, nil
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(editionsPageLimit))

	var payload json.RawMessage
	if err := c.getJSON(ctx, "/works/"+key+"/editions.json", params, &payload); err != nil {
		return domain.RawRecord{}, err
	}

	record := domain.RawRecord{
		Provenance: domain.ProvenanceOpenLibrary,
		SourceID:   key,
		Payload:    payload,
	}
	connectors.StoreRecord(ctx, c.config.Cache, cacheKey, record, c.config.Policy.LookupTTL)
	return record, nil
}

// SearchByAuthorKey returns the catalog records attributed to the
// author key, most relevant first.
func (c *Connector) SearchByAuthorKey(ctx context.Context, key string, limit int) ([]domain.RawRecord, error) {
	authorKey := lastSegment(key)
	cacheKey := connectors.CacheKey("ol", "author_works", authorKey, strconv.Itoa(limit))
	if records, ok := connectors.CachedRecords(ctx, c.config.Cache, cacheKey); ok {
		return records, nil
	}

	params := url.Values{}
	params.Set("q", "author_key:"+authorKey)
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", "0")
	params.Set("language", searchLanguage)

	records, err := c.searchDocs(ctx, params)
	if err != nil {
		return nil, err
	}

	connectors.StoreRecords(ctx, c.config.Cache, cacheKey, records, c.config.Policy.LookupTTL)
	return records, nil
}
