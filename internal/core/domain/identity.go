package domain

import "strings"

// untitledKey stands in for a missing title so records without one
// still group instead of vanishing.
const untitledKey = "untitled"

// IdentityKey derives the deterministic grouping key for this record.
//
// An ISBN-13 (reported directly, or derived from a valid ISBN-10) is
// the strongest identity signal and wins outright: two records sharing
// it are the same work even when their titles disagree. Without one,
// the key falls back to normalised title plus first author, and when
// no author exists either, to a "noauth-" title key.
func (r SourceRecord) IdentityKey() string {
	if r.ISBN13 != "" {
		return r.ISBN13
	}
	if ValidISBN10(r.ISBN10) {
		return ConvertISBN10(r.ISBN10)
	}

	title := normalizeKeyPart(r.Title)
	if title == "" {
		title = untitledKey
	}
	if len(r.Authors) > 0 {
		return title + "|" + normalizeKeyPart(r.Authors[0].Name)
	}
	return "noauth-" + title
}

// normalizeKeyPart lowercases, trims, and collapses internal
// whitespace so key comparison is case and spacing insensitive.
func normalizeKeyPart(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
