package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// Scripted doubles shared by the service tests. Raw payloads are
// JSON-encoded SourceRecords so the stub registry can decode them
// without a real normaliser.

// rawFor wraps a source record in the payload shape the stub registry
// decodes.
func rawFor(t *testing.T, record domain.SourceRecord) domain.RawRecord {
	t.Helper()
	payload, err := json.Marshal(record)
	require.NoError(t, err)
	return domain.RawRecord{
		Provenance: record.Provenance,
		SourceID:   record.SourceID,
		Payload:    payload,
	}
}

// --- Mock connector ---

type mockConnector struct {
	provenance   domain.Provenance
	capabilities driven.ConnectorCapabilities

	searchRaws  []domain.RawRecord
	searchErr   error
	searchCalls []string
	searchOpts  []domain.SearchOptions

	fetchRaws map[string]domain.RawRecord
	fetchErr  error

	releaseBatches [][]domain.RawRecord
	releaseErr     error
	releaseOpts    []domain.ReleaseOptions
}

func (m *mockConnector) Provenance() domain.Provenance { return m.provenance }

func (m *mockConnector) Capabilities() driven.ConnectorCapabilities { return m.capabilities }

func (m *mockConnector) Search(_ context.Context, query string, opts domain.SearchOptions) ([]domain.RawRecord, error) {
	m.searchCalls = append(m.searchCalls, query)
	m.searchOpts = append(m.searchOpts, opts)
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.searchRaws, nil
}

func (m *mockConnector) FetchByISBN(_ context.Context, isbn string) (domain.RawRecord, error) {
	if m.fetchErr != nil {
		return domain.RawRecord{}, m.fetchErr
	}
	raw, ok := m.fetchRaws[isbn]
	if !ok {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	return raw, nil
}

func (m *mockConnector) NewReleases(_ context.Context, opts domain.ReleaseOptions) ([]domain.RawRecord, error) {
	m.releaseOpts = append(m.releaseOpts, opts)
	if m.releaseErr != nil {
		return nil, m.releaseErr
	}
	if len(m.releaseBatches) == 0 {
		return nil, nil
	}
	batch := m.releaseBatches[0]
	m.releaseBatches = m.releaseBatches[1:]
	return batch, nil
}

func (m *mockConnector) Close() error { return nil }

// --- Stub normaliser registry ---

// stubRegistry decodes SourceRecords straight out of the raw payload.
// Setting failID makes the record with that SourceID unparseable.
type stubRegistry struct {
	failID string
}

func (r *stubRegistry) Normalise(_ context.Context, raw domain.RawRecord) (domain.SourceRecord, error) {
	if r.failID != "" && raw.SourceID == r.failID {
		return domain.SourceRecord{}, errors.New("malformed payload")
	}
	var record domain.SourceRecord
	if err := json.Unmarshal(raw.Payload, &record); err != nil {
		return domain.SourceRecord{}, err
	}
	return record, nil
}

func (r *stubRegistry) Register(driven.Normaliser) {}

func (r *stubRegistry) SupportedProvenances() []domain.Provenance {
	return []domain.Provenance{
		domain.ProvenanceGoogle,
		domain.ProvenanceOpenLibrary,
		domain.ProvenanceLOC,
	}
}

// --- Mock control number lookup ---

type mockControlLookup struct {
	raw   domain.RawRecord
	err   error
	calls []string
}

func (m *mockControlLookup) FetchByControlNumber(_ context.Context, number string) (domain.RawRecord, error) {
	m.calls = append(m.calls, number)
	if m.err != nil {
		return domain.RawRecord{}, m.err
	}
	return m.raw, nil
}

// --- Mock discovery connector ---

// mockDiscovery serves author and work payloads from keyed maps.
// FetchAuthor runs concurrently during bio enrichment, so the methods
// only read.
type mockDiscovery struct {
	authors      map[string]domain.RawRecord
	workDetails  map[string]domain.RawRecord
	workEditions map[string]domain.RawRecord

	byKeyRaws  []domain.RawRecord
	byKeyErr   error
	byKeyLimit int
}

func (m *mockDiscovery) FetchAuthor(_ context.Context, key string) (domain.RawRecord, error) {
	raw, ok := m.authors[key]
	if !ok {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	return raw, nil
}

func (m *mockDiscovery) FetchWorkDetails(_ context.Context, workKey string) (domain.RawRecord, error) {
	raw, ok := m.workDetails[workKey]
	if !ok {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	return raw, nil
}

func (m *mockDiscovery) FetchWorkEditions(_ context.Context, workKey string) (domain.RawRecord, error) {
	raw, ok := m.workEditions[workKey]
	if !ok {
		return domain.RawRecord{}, domain.ErrNotFound
	}
	return raw, nil
}

func (m *mockDiscovery) SearchByAuthorKey(_ context.Context, key string, limit int) ([]domain.RawRecord, error) {
	m.byKeyLimit = limit
	if m.byKeyErr != nil {
		return nil, m.byKeyErr
	}
	return m.byKeyRaws, nil
}

// --- Stub discovery normaliser ---

// stubDiscNorm decodes profiles, work details, and editions straight
// out of the raw payload.
type stubDiscNorm struct{}

func (stubDiscNorm) NormaliseAuthor(raw domain.RawRecord) (domain.AuthorProfile, error) {
	var profile domain.AuthorProfile
	if err := json.Unmarshal(raw.Payload, &profile); err != nil {
		return domain.AuthorProfile{}, err
	}
	return profile, nil
}

func (stubDiscNorm) NormaliseWorkDetails(raw domain.RawRecord) (domain.WorkDetails, error) {
	var details domain.WorkDetails
	if err := json.Unmarshal(raw.Payload, &details); err != nil {
		return domain.WorkDetails{}, err
	}
	return details, nil
}

func (stubDiscNorm) NormaliseWorkEditions(raw domain.RawRecord) (domain.WorkEditions, error) {
	var editions domain.WorkEditions
	if err := json.Unmarshal(raw.Payload, &editions); err != nil {
		return domain.WorkEditions{}, err
	}
	return editions, nil
}

// --- Mock run store ---

type mockRunStore struct {
	recorded  []domain.DredgeRun
	recordErr error
	lastErr   error
}

func (m *mockRunStore) Record(_ context.Context, run domain.DredgeRun) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, run)
	return nil
}

func (m *mockRunStore) Last(_ context.Context) (domain.DredgeRun, error) {
	if m.lastErr != nil {
		return domain.DredgeRun{}, m.lastErr
	}
	if len(m.recorded) == 0 {
		return domain.DredgeRun{}, domain.ErrNotFound
	}
	return m.recorded[len(m.recorded)-1], nil
}

func (m *mockRunStore) List(_ context.Context, limit int) ([]domain.DredgeRun, error) {
	runs := make([]domain.DredgeRun, 0, limit)
	for i := len(m.recorded) - 1; i >= 0 && len(runs) < limit; i-- {
		runs = append(runs, m.recorded[i])
	}
	return runs, nil
}

func (m *mockRunStore) Close() error { return nil }

// --- Mock config store ---

type mockConfigStore struct {
	values map[string]any
	setErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	s, _ := m.values[key].(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.values[key].(bool)
	return b
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	s, _ := m.values[key].([]string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return nil }

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/bookdex-test/config.toml" }

// --- Mock cache store ---

type mockCacheStore struct {
	stats    domain.CacheStats
	statsErr error
	purged   bool
	purgeErr error
}

func (m *mockCacheStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (m *mockCacheStore) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (m *mockCacheStore) Stats(context.Context) (domain.CacheStats, error) {
	if m.statsErr != nil {
		return domain.CacheStats{}, m.statsErr
	}
	return m.stats, nil
}

func (m *mockCacheStore) Purge(context.Context) error {
	if m.purgeErr != nil {
		return m.purgeErr
	}
	m.purged = true
	return nil
}

func (m *mockCacheStore) Close() error { return nil }
