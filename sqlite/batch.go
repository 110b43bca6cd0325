package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/k1-c/shiftwatch"
)

// Compile-time interface verification.
var _ shiftwatch.BatchService = (*BatchService)(nil)

// BatchService implements shiftwatch.BatchService using SQLite.
type BatchService struct {
	db *DB
}

// NewBatchService creates a new BatchService.
func NewBatchService(db *DB) *BatchService {
	return &BatchService{db: db}
}

// StartBatch records the start of a new pass.
func (s *BatchService) StartBatch(ctx context.Context) (*shiftwatch.Batch, error) {
	batch := &shiftwatch.Batch{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO batches (id, started_at)
		VALUES (?, ?)
	`, batch.ID, batch.StartedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return batch, nil
}

// FinishBatch records the result of a pass.
func (s *BatchService) FinishBatch(ctx context.Context, id string, result shiftwatch.BatchResult, errMsg string) (*shiftwatch.Batch, error) {
	if result != shiftwatch.BatchSuccess && result != shiftwatch.BatchFailure {
		return nil, shiftwatch.Errorf(shiftwatch.EINVALID, "invalid batch result %q", result)
	}

	finishedAt := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
		UPDATE batches
		SET finished_at = ?, result = ?, error = ?
		WHERE id = ?
	`, finishedAt.Format(time.RFC3339), string(result), errMsg, id)
	if err != nil {
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, shiftwatch.Errorf(shiftwatch.ENOTFOUND, "batch not found")
	}

	batches, err := s.FindBatches(ctx, shiftwatch.BatchFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	return batches[0], nil
}

// FindBatches retrieves batches, most recent first.
func (s *BatchService) FindBatches(ctx context.Context, filter shiftwatch.BatchFilter) ([]*shiftwatch.Batch, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, started_at, finished_at, result, error FROM batches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY started_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*shiftwatch.Batch
	for rows.Next() {
		var batch shiftwatch.Batch
		var startedAt, finishedAt, result string

		if err := rows.Scan(&batch.ID, &startedAt, &finishedAt, &result, &batch.Error); err != nil {
			return nil, err
		}
		batch.Result = shiftwatch.BatchResult(result)

		if batch.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if batch.FinishedAt, err = parseOptionalRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		batches = append(batches, &batch)
	}

	return batches, rows.Err()
}
