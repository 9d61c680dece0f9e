package mcp

import (
	"context"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	resp *domain.SearchResponse
	err  error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) (*domain.SearchResponse, error) {
	return m.resp, m.err
}

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	book *domain.Book
	err  error
}

func (m *mockLookupService) Lookup(_ context.Context, _ string) (*domain.Book, error) {
	return m.book, m.err
}

// mockReleaseService is a mock implementation of driving.ReleaseService.
type mockReleaseService struct {
	feed *domain.ReleaseFeed
	run  domain.DredgeRun
	err  error
}

func (m *mockReleaseService) NewReleases(
	_ context.Context,
	_ domain.ReleaseOptions,
) (*domain.ReleaseFeed, error) {
	return m.feed, m.err
}

func (m *mockReleaseService) LastRun(_ context.Context) (domain.DredgeRun, error) {
	return m.run, m.err
}

// mockDiscoveryService is a mock implementation of driving.DiscoveryService.
type mockDiscoveryService struct {
	profile  *domain.AuthorProfile
	editions *domain.WorkEditions
	err      error
}

func (m *mockDiscoveryService) AuthorProfile(
	_ context.Context,
	_ string,
) (*domain.AuthorProfile, error) {
	return m.profile, m.err
}

func (m *mockDiscoveryService) WorkEditions(
	_ context.Context,
	_ string,
) (*domain.WorkEditions, error) {
	return m.editions, m.err
}

// mockGenreCatalog is a mock implementation of driving.GenreCatalog.
type mockGenreCatalog struct {
	fiction    []domain.Genre
	nonFiction []domain.Genre
}

func (m *mockGenreCatalog) Fiction() []domain.Genre {
	return m.fiction
}

func (m *mockGenreCatalog) NonFiction() []domain.Genre {
	return m.nonFiction
}
