// Package htmltext cleans catalog-supplied rich text. Synopses and
// biographies arrive with embedded markup and entity escapes; Strip
// flattens them to plain prose for display and classification.
package htmltext

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for text cleaning.
var (
	tags       = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Strip removes markup from catalog text: tags are dropped, entities
// decoded, and whitespace runs collapsed to single spaces.
func Strip(text string) string {
	if text == "" {
		return ""
	}

	clean := tags.ReplaceAllString(text, "")
	clean = html.UnescapeString(clean)
	clean = whitespace.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// EnsureHTTPS upgrades a catalog image link to https and drops the
// page-curl effect Google Books appends to thumbnail links.
func EnsureHTTPS(url string) string {
	if url == "" {
		return ""
	}

	secure := strings.Replace(url, "http://", "https://", 1)
	if strings.Contains(secure, "books.google.com") {
		secure = strings.ReplaceAll(secure, "&edge=curl", "")
	}
	return secure
}
