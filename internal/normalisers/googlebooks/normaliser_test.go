package googlebooks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

const volumePayload = `{
	"id": "QVn-CgAAQBAJ",
	"volumeInfo": {
		"title": "The Way of Kings",
		"subtitle": "Book One of the Stormlight Archive",
		"authors": ["Brandon Sanderson"],
		"publisher": "Tor Books",
		"publishedDate": "2010-08-31",
		"description": "<p>An <b>epic</b> of kings &amp; knights.</p>",
		"pageCount": 1008,
		"averageRating": 4.5,
		"ratingsCount": 2413,
		"categories": ["Fiction / Fantasy / Epic"],
		"imageLinks": {
			"smallThumbnail": "http://books.google.com/books/content?id=QVn-CgAAQBAJ&img=1&zoom=5&edge=curl",
			"thumbnail": "http://books.google.com/books/content?id=QVn-CgAAQBAJ&img=1&zoom=1&edge=curl"
		},
		"industryIdentifiers": [
			{"type": "ISBN_13", "identifier": "9780765326355"},
			{"type": "ISBN_10", "identifier": "0765326353"},
			{"type": "OTHER", "identifier": "OCLC:495596000"}
		]
	},
	"saleInfo": {"isEbook": true}
}`

func TestNormalise_Volume(t *testing.T) {
	normaliser := New()

	raw := domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
		Payload:    []byte(volumePayload),
	}

	record, err := normaliser.Normalise(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, domain.ProvenanceGoogle, record.Provenance)
	assert.Equal(t, "QVn-CgAAQBAJ", record.SourceID)
	assert.Equal(t, "The Way of Kings", record.Title)
	assert.Equal(t, "Book One of the Stormlight Archive", record.Subtitle)
	require.Len(t, record.Authors, 1)
	assert.Equal(t, "Brandon Sanderson", record.Authors[0].Name)
	assert.Equal(t, "9780765326355", record.ISBN13)
	assert.Equal(t, "0765326353", record.ISBN10)
	assert.Equal(t, []string{"Fiction / Fantasy / Epic"}, record.Categories)
	assert.Equal(t, "An epic of kings & knights.", record.Description)
	assert.Equal(t, "Tor Books", record.Publisher)
	assert.Equal(t, "2010-08-31", record.PublishedDate)
	assert.Equal(t, 1008, record.PageCount)
	assert.True(t, record.IsEbook)
	assert.Equal(t, 4.5, record.Rating)
	assert.Equal(t, 2413, record.RatingCount)
	assert.Equal(t, []string{"9780765326355", "0765326353", "OCLC:495596000"}, record.RelatedISBNs)
}

func TestNormalise_CoverLinksSecured(t *testing.T) {
	normaliser := New()

	record, err := normaliser.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
		Payload:    []byte(volumePayload),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://books.google.com/books/content?id=QVn-CgAAQBAJ&img=1&zoom=1", record.CoverURL)
	assert.Equal(t, "https://books.google.com/books/content?id=QVn-CgAAQBAJ&img=1&zoom=5", record.Covers.SmallThumbnail)
	assert.Equal(t, "https://books.google.com/books/content?id=QVn-CgAAQBAJ&img=1&zoom=1", record.Covers.Thumbnail)
	assert.Empty(t, record.Covers.Large)
}

func TestNormalise_CoverFallsBackToISBN(t *testing.T) {
	normaliser := New()

	payload := `{
		"id": "abc123",
		"volumeInfo": {
			"title": "Uncovered",
			"industryIdentifiers": [{"type": "ISBN_13", "identifier": "9780765326355"}]
		}
	}`

	record, err := normaliser.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
		Payload:    []byte(payload),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780765326355-M.jpg", record.CoverURL)
}

func TestNormalise_NoCoverNoIdentifiers(t *testing.T) {
	normaliser := New()

	payload := `{"id": "abc123", "volumeInfo": {"title": "Bare"}}`

	record, err := normaliser.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
		Payload:    []byte(payload),
	})
	require.NoError(t, err)

	assert.Empty(t, record.CoverURL)
	assert.Empty(t, record.ISBN13)
	assert.Empty(t, record.ISBN10)
	assert.Empty(t, record.Authors)
}

func TestNormalise_InvalidPayload(t *testing.T) {
	normaliser := New()

	_, err := normaliser.Normalise(context.Background(), domain.RawRecord{
		Provenance: domain.ProvenanceGoogle,
		Payload:    []byte("{not json"),
	})
	assert.Error(t, err)
}

func TestProvenance(t *testing.T) {
	assert.Equal(t, domain.ProvenanceGoogle, New().Provenance())
}

func TestSplitIdentifiers(t *testing.T) {
	ids := []identifier{
		{Type: "ISBN_10", Identifier: "0765326353"},
		{Type: "ISBN_13", Identifier: "9780765326355"},
		{Type: "ISBN_13", Identifier: "9780765365279"},
	}

	isbn13, isbn10, related := splitIdentifiers(ids)
	assert.Equal(t, "9780765326355", isbn13)
	assert.Equal(t, "0765326353", isbn10)
	assert.Len(t, related, 3)
}
