package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bookdex-cli/internal/logger"
)

// DefaultReleaseLimit is the feed size used when the caller gives none.
const DefaultReleaseLimit = 10

// dredgePolicy bounds one widening pass over the releases feed.
// The loop stops at whichever bound is hit first: enough valid
// candidates, the depth cap, or an empty batch from the source.
type dredgePolicy struct {
	// Limit is the number of valid releases wanted.
	Limit int

	// BatchSize is the internal fetch size per iteration. It is larger
	// than typical limits because most feed entries fail the gate.
	BatchSize int

	// MaxDepth caps the number of batches fetched.
	MaxDepth int
}

// defaultDredgePolicy matches the observed feed quality: five batches
// of forty raw entries are usually enough to fill a ten-item page.
func defaultDredgePolicy(limit int) dredgePolicy {
	if limit <= 0 {
		limit = DefaultReleaseLimit
	}
	return dredgePolicy{
		Limit:     limit,
		BatchSize: 40,
		MaxDepth:  5,
	}
}

// ReleaseService implements the driving.ReleaseService interface.
// It dredges the open catalog's recency feed through the validity
// gate, rescuing missing covers from the commercial catalog before
// gating, and records each run.
type ReleaseService struct {
	feed     driven.Connector
	rescue   driven.Connector
	registry driven.NormaliserRegistry
	merger   *Merger
	gate     *ReleaseGate
	runs     driven.RunStore
}

// Interface compliance check.
var _ driving.ReleaseService = (*ReleaseService)(nil)

// NewReleaseService creates a release service. The rescue connector
// and the run store are optional; nil disables cover rescue and run
// recording respectively.
func NewReleaseService(
	feed driven.Connector,
	rescue driven.Connector,
	registry driven.NormaliserRegistry,
	merger *Merger,
	gate *ReleaseGate,
	runs driven.RunStore,
) *ReleaseService {
	return &ReleaseService{
		feed:     feed,
		rescue:   rescue,
		registry: registry,
		merger:   merger,
		gate:     gate,
		runs:     runs,
	}
}

// NewReleases runs one bounded dredge over the recency feed and
// returns the valid releases in feed order.
func (s *ReleaseService) NewReleases(ctx context.Context, opts domain.ReleaseOptions) (*domain.ReleaseFeed, error) {
	logger.Section("New Releases Dredge")

	if s.feed == nil {
		return nil, fmt.Errorf("releases: %w", domain.ErrNoSources)
	}
	if !s.feed.Capabilities().SupportsNewReleases {
		return nil, fmt.Errorf("releases: %w", domain.ErrNoSources)
	}

	policy := defaultDredgePolicy(opts.Limit)
	run := domain.DredgeRun{
		ID:        uuid.New().String(),
		Subject:   opts.Subject,
		StartedAt: time.Now(),
	}
	logger.Info("Run %s: subject=%q limit=%d", run.ID, opts.Subject, policy.Limit)

	var valid []domain.SourceRecord
	offset := opts.Offset

	for len(valid) < policy.Limit && run.Depth < policy.MaxDepth {
		batch, err := s.fetchBatch(ctx, offset, policy.BatchSize, opts.Subject)
		if err != nil {
			return nil, fmt.Errorf("releases: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for _, record := range batch {
			run.Scanned++
			if record.CoverURL == "" {
				if s.rescueCover(ctx, &record) {
					run.Rescued++
				}
			}
			if s.gate.IsValid(record, time.Now()) {
				valid = append(valid, record)
				run.Kept++
			}
		}

		offset += policy.BatchSize
		run.Depth++
	}

	books, err := s.finalise(valid, policy.Limit)
	if err != nil {
		return nil, fmt.Errorf("releases: %w", err)
	}

	run.Duration = time.Since(run.StartedAt)
	logger.Info("Run %s: scanned=%d rescued=%d kept=%d returned=%d depth=%d",
		run.ID, run.Scanned, run.Rescued, run.Kept, len(books), run.Depth)
	s.recordRun(ctx, run)

	return &domain.ReleaseFeed{
		Subject:  opts.Subject,
		NumFound: len(books),
		Results:  books,
		Run:      run,
	}, nil
}

// LastRun returns the most recent recorded dredge run.
func (s *ReleaseService) LastRun(ctx context.Context) (domain.DredgeRun, error) {
	if s.runs == nil {
		return domain.DredgeRun{}, fmt.Errorf("releases: %w", domain.ErrNotFound)
	}
	run, err := s.runs.Last(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DredgeRun{}, fmt.Errorf("releases: %w", domain.ErrNotFound)
		}
		return domain.DredgeRun{}, fmt.Errorf("releases: %w", err)
	}
	return run, nil
}

// fetchBatch pulls one page of the recency feed and normalises it.
func (s *ReleaseService) fetchBatch(ctx context.Context, offset, size int, subject string) ([]domain.SourceRecord, error) {
	raws, err := s.feed.NewReleases(ctx, domain.ReleaseOptions{
		Limit:   size,
		Offset:  offset,
		Subject: subject,
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.SourceRecord, 0, len(raws))
	for _, raw := range raws {
		record, err := s.registry.Normalise(ctx, raw)
		if err != nil {
			logger.Warn("Skipping unparseable %s record: %v", raw.Provenance, err)
			continue
		}
		records = append(records, record)
	}

	logger.Debug("Batch at offset %d: %d entries", offset, len(records))
	return records, nil
}

// rescueCover attempts a best-effort cover fill from the commercial
// catalog before the record faces the gate. Failures are silent; the
// record simply keeps its missing cover.
func (s *ReleaseService) rescueCover(ctx context.Context, record *domain.SourceRecord) bool {
	if s.rescue == nil {
		return false
	}
	isbn := record.ISBN13
	if isbn == "" {
		isbn = record.ISBN10
	}
	if isbn == "" {
		return false
	}

	raw, err := s.rescue.FetchByISBN(ctx, isbn)
	if err != nil {
		return false
	}
	rescued, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return false
	}

	cover := rescued.Covers.Thumbnail
	if cover == "" {
		cover = rescued.Covers.SmallThumbnail
	}
	if cover == "" {
		cover = rescued.CoverURL
	}
	if cover == "" {
		return false
	}

	record.CoverURL = cover
	return true
}

// finalise deduplicates the gated records by identity key, truncates
// to the limit, and merges each survivor into a canonical book.
func (s *ReleaseService) finalise(valid []domain.SourceRecord, limit int) ([]domain.Book, error) {
	keys, groups := groupRecords(valid)
	if len(keys) > limit {
		keys = keys[:limit]
	}

	books := make([]domain.Book, 0, len(keys))
	for _, key := range keys {
		// Duplicate feed entries under one key collapse into the
		// first; the merger keeps the earliest record's fields.
		book, err := s.merger.Merge(key, groups[key])
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, nil
}

// recordRun persists the run when a store is configured.
func (s *ReleaseService) recordRun(ctx context.Context, run domain.DredgeRun) {
	if s.runs == nil {
		return
	}
	if err := s.runs.Record(ctx, run); err != nil {
		logger.Warn("Failed to record dredge run %s: %v", run.ID, err)
	}
}
