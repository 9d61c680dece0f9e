package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// maxReleaseTitleLength rejects feed entries with runaway titles,
// usually OCR garbage or concatenated metadata.
const maxReleaseTitleLength = 150

// yearPattern extracts the first 4-digit year from a date string.
var yearPattern = regexp.MustCompile(`\d{4}`)

// ReleaseGate decides whether a feed candidate is a plausible new
// release. It is a short-circuiting predicate chain: structural checks
// (cover, identifier, author, title) run before the vocabulary checks,
// which run before the date checks. Every reject reason is independent
// so each can be unit-tested on its own.
type ReleaseGate struct {
	blacklist    []string
	reprints     []string
	windowPast   time.Duration
	windowFuture time.Duration
}

// NewReleaseGate creates a gate from the junk-title vocabulary and the
// configured date windows.
func NewReleaseGate(vocab domain.Vocabulary, settings domain.ReleaseSettings) *ReleaseGate {
	return &ReleaseGate{
		blacklist:    foldAll(vocab.TitleBlacklist),
		reprints:     foldAll(vocab.ReprintTriggers),
		windowPast:   time.Duration(settings.WindowPastDays) * 24 * time.Hour,
		windowFuture: time.Duration(settings.WindowFutureDays) * 24 * time.Hour,
	}
}

// IsValid reports whether the candidate passes every release check,
// evaluated against now. Unparseable dates fail closed.
func (g *ReleaseGate) IsValid(record domain.SourceRecord, now time.Time) bool {
	if record.CoverURL == "" {
		return false
	}
	if record.ISBN13 == "" && record.ISBN10 == "" {
		return false
	}
	if len(record.Authors) == 0 || record.Authors[0].Name == "Unknown" {
		return false
	}

	title := strings.ToLower(record.Title)
	if strings.ContainsAny(title, "<{") {
		return false
	}
	if utf8.RuneCountInString(record.Title) > maxReleaseTitleLength {
		return false
	}
	for _, banned := range g.blacklist {
		if strings.Contains(title, banned) {
			return false
		}
	}
	for _, trigger := range g.reprints {
		if strings.Contains(title, trigger) {
			return false
		}
	}

	return g.dateInWindow(record.PublishedDate, now)
}

// dateInWindow checks the publication date against the current year
// and, for fully-dated records, the rolling release window.
func (g *ReleaseGate) dateInWindow(published string, now time.Time) bool {
	if published == "" {
		return false
	}

	match := yearPattern.FindString(published)
	if match == "" {
		return false
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return false
	}
	if year < now.Year()-1 || year > now.Year()+1 {
		return false
	}

	// A bare year or year-month passes on the year check alone; only a
	// full date is held to the rolling window.
	date, err := time.Parse("2006-01-02", published)
	if err != nil {
		return true
	}
	if date.Before(now.Add(-g.windowPast)) {
		return false
	}
	if date.After(now.Add(g.windowFuture)) {
		return false
	}
	return true
}

// foldAll lowercases every vocabulary entry once at construction.
func foldAll(entries []string) []string {
	folded := make([]string, 0, len(entries))
	for _, entry := range entries {
		folded = append(folded, strings.ToLower(entry))
	}
	return folded
}
