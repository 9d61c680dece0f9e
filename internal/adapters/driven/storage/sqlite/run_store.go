package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/bookdex-cli/internal/core/domain"
	"github.com/custodia-labs/bookdex-cli/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Record stores one completed dredge run.
func (r *runStore) Record(ctx context.Context, run domain.DredgeRun) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO dredge_runs (id, subject, depth, scanned, rescued, kept, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Subject, run.Depth, run.Scanned, run.Rescued, run.Kept,
		run.StartedAt.UTC().Format(time.RFC3339), run.Duration.Milliseconds())

	if err != nil {
		return fmt.Errorf("recording dredge run: %w", err)
	}
	return nil
}

// Last returns the most recently recorded run.
// Ties on the second are broken by insertion order.
func (r *runStore) Last(ctx context.Context) (domain.DredgeRun, error) {
	row := r.store.db.QueryRowContext(ctx, `
		SELECT id, subject, depth, scanned, rescued, kept, started_at, duration_ms
		FROM dredge_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT 1
	`)

	run, err := scanDredgeRun(row)
	if err == sql.ErrNoRows {
		return domain.DredgeRun{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.DredgeRun{}, err
	}
	return run, nil
}

// List returns up to limit runs, newest first.
func (r *runStore) List(ctx context.Context, limit int) ([]domain.DredgeRun, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, subject, depth, scanned, rescued, kept, started_at, duration_ms
		FROM dredge_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying dredge runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.DredgeRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanDredgeRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dredge runs: %w", err)
	}

	return runs, nil
}

// Close closes the underlying store.
func (r *runStore) Close() error {
	return r.store.Close()
}

// rowScanner abstracts sql.Row and sql.Rows for the scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanDredgeRun scans one dredge run row.
func scanDredgeRun(row rowScanner) (domain.DredgeRun, error) {
	var run domain.DredgeRun
	var startedAt string
	var durationMS int64

	if err := row.Scan(&run.ID, &run.Subject, &run.Depth, &run.Scanned,
		&run.Rescued, &run.Kept, &startedAt, &durationMS); err != nil {
		if err == sql.ErrNoRows {
			return domain.DredgeRun{}, err
		}
		return domain.DredgeRun{}, fmt.Errorf("scanning dredge run: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
		run.StartedAt = t
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond

	return run, nil
}
