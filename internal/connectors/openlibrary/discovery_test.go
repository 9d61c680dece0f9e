package openlibrary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/connectors"
	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

func TestFetchAuthor(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/authors/OL31353A.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"key": "/authors/OL31353A",
			"name": "Ursula K. Le Guin",
			"birth_date": "21 October 1929"
		}`))
	})

	record, err := connector.FetchAuthor(context.Background(), "/authors/OL31353A")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceOpenLibrary, record.Provenance)
	assert.Equal(t, "OL31353A", record.SourceID)

	var author struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(record.Payload, &author))
	assert.Equal(t, "Ursula K. Le Guin", author.Name)
}

func TestFetchAuthor_BareKey(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/authors/OL31353A.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"name": "Ursula K. Le Guin"}`))
	})

	record, err := connector.FetchAuthor(context.Background(), "OL31353A")
	require.NoError(t, err)
	assert.Equal(t, "OL31353A", record.SourceID)
}

func TestFetchAuthor_NotFound(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := connector.FetchAuthor(context.Background(), "OL99999999A")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchWorkDetails(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/works/OL45804W.json", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"key": "/works/OL45804W",
			"description": "An ambivalent utopia.",
			"subjects": ["Science fiction"]
		}`))
	})

	record, err := connector.FetchWorkDetails(context.Background(), "/works/OL45804W")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceOpenLibrary, record.Provenance)
	assert.Equal(t, "OL45804W", record.SourceID)

	var work struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(record.Payload, &work))
	assert.Equal(t, "An ambivalent utopia.", work.Description)
}

func TestFetchWorkEditions(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/works/OL45804W/editions.json", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"size": 24,
			"entries": [
				{"key": "/books/OL7353617M", "title": "The Dispossessed"}
			]
		}`))
	})

	record, err := connector.FetchWorkEditions(context.Background(), "OL45804W")
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceOpenLibrary, record.Provenance)
	assert.Equal(t, "OL45804W", record.SourceID)

	var editions struct {
		Size int `json:"size"`
	}
	require.NoError(t, json.Unmarshal(record.Payload, &editions))
	assert.Equal(t, 24, editions.Size)
}

func TestSearchByAuthorKey(t *testing.T) {
	connector := testConnector(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search.json", r.URL.Path)

		params := r.URL.Query()
		assert.Equal(t, "author_key:OL31353A", params.Get("q"))
		assert.Equal(t, searchFields, params.Get("fields"))
		assert.Equal(t, "20", params.Get("limit"))
		assert.Equal(t, "0", params.Get("offset"))
		assert.Equal(t, "eng", params.Get("language"))

		_, _ = w.Write([]byte(searchResponse))
	})

	records, err := connector.SearchByAuthorKey(context.Background(), "OL31353A", 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ShapeSearchDoc, records[0].Shape)
}

func TestDiscoveryUsesCache(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"name": "Ursula K. Le Guin"}`))
	}))
	t.Cleanup(srv.Close)

	connector := New(Config{
		BaseURL: srv.URL,
		Cache:   newFakeCache(),
		Policy:  connectors.CachePolicy{LookupTTL: time.Hour},
	})
	defer connector.Close()

	first, err := connector.FetchAuthor(context.Background(), "OL31353A")
	require.NoError(t, err)

	second, err := connector.FetchAuthor(context.Background(), "OL31353A")
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "second fetch should be served from cache")
	assert.Equal(t, first, second)
}
