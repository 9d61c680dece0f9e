package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// Base completeness weights. Every present signal adds its weight.
const (
	scoreCover    = 10
	scoreISBN13   = 5
	scoreRating   = 2
	scoreDate     = 1
	scoreArchival = 3
)

// Query-relevance boosts. Exact matches outrank substring matches;
// the indie rescue keeps an exact-match record without a cover from
// being buried under covered near-misses.
const (
	boostTitleExact    = 500
	boostTitlePartial  = 20
	boostAuthorExact   = 600
	boostAuthorPartial = 100
	boostIndieRescue   = 200
)

// rankBooks stable-sorts books by descending relevance score.
// Ties preserve the merge-phase insertion order.
func rankBooks(books []domain.Book, query string) {
	normQuery := normalizeForComparison(query)
	sort.SliceStable(books, func(i, j int) bool {
		return scoreBook(books[i], normQuery) > scoreBook(books[j], normQuery)
	})
}

// scoreBook computes the additive relevance score for one book.
// normQuery must already be normalised; empty skips the query boosts.
func scoreBook(book domain.Book, normQuery string) int {
	score := 0

	if book.CoverURL != "" {
		score += scoreCover
	}
	if book.ISBN13 != "" {
		score += scoreISBN13
	}
	if book.Rating > 0 {
		score += scoreRating
	}
	if book.PublishedDate != "" {
		score += scoreDate
	}
	if book.HasSource(domain.ProvenanceLOC) {
		score += scoreArchival
	}

	if normQuery == "" {
		return score
	}

	normTitle := normalizeForComparison(book.Title)
	switch {
	case normTitle != "" && normTitle == normQuery:
		score += boostTitleExact
		if book.CoverURL == "" {
			score += boostIndieRescue
		}
	case len(normQuery) > 5 && strings.Contains(normTitle, normQuery):
		score += boostTitlePartial
	}

	exact, partial := false, false
	for _, author := range book.Authors {
		normAuthor := normalizeForComparison(author.Name)
		if normAuthor == "" {
			continue
		}
		if normAuthor == normQuery {
			exact = true
			break
		}
		if len(normQuery) > 4 && strings.Contains(normAuthor, normQuery) {
			partial = true
		}
	}
	switch {
	case exact:
		score += boostAuthorExact
	case partial:
		score += boostAuthorPartial
	}

	return score
}

// normalizeForComparison lowercases the input, folds "&" and "+" to
// "and", and strips everything that is not a letter or digit.
func normalizeForComparison(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	normalized := strings.ToLower(input)
	normalized = strings.ReplaceAll(normalized, "&", "and")
	normalized = strings.ReplaceAll(normalized, "+", "and")

	var builder strings.Builder
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
