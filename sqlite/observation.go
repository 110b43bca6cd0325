package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/k1-c/shiftwatch"
)

// Compile-time interface verification.
var _ shiftwatch.ObservationService = (*ObservationService)(nil)

// ObservationService implements shiftwatch.ObservationService using SQLite.
type ObservationService struct {
	db *DB
}

// NewObservationService creates a new ObservationService.
func NewObservationService(db *DB) *ObservationService {
	return &ObservationService{db: db}
}

// CreateObservation records an observation. Two observations share a
// ContentHash exactly when their kind and schedule are equal.
func (s *ObservationService) CreateObservation(ctx context.Context, obs *shiftwatch.Observation) error {
	if err := obs.Validate(); err != nil {
		return err
	}

	obs.ID = uuid.New().String()
	obs.ObservedAt = time.Now().UTC()
	obs.ContentHash = hashContent(obs.Kind.String() + "\n" + obs.Schedule)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO observations (id, batch_id, row, kind, schedule, content_hash, observed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, obs.ID, obs.BatchID, obs.Row, obs.Kind.String(), obs.Schedule, obs.ContentHash,
		obs.ObservedAt.Format(time.RFC3339))

	return err
}

// FindObservations retrieves observations, most recent first.
func (s *ObservationService) FindObservations(ctx context.Context, filter shiftwatch.ObservationFilter) ([]*shiftwatch.Observation, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, batch_id, row, kind, schedule, content_hash, observed_at FROM observations WHERE 1=1")

	if filter.Row != nil {
		query.WriteString(" AND row = ?")
		args = append(args, *filter.Row)
	}
	if filter.BatchID != nil {
		query.WriteString(" AND batch_id = ?")
		args = append(args, *filter.BatchID)
	}

	query.WriteString(" ORDER BY observed_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []*shiftwatch.Observation
	for rows.Next() {
		var obs shiftwatch.Observation
		var kind, observedAt string

		if err := rows.Scan(&obs.ID, &obs.BatchID, &obs.Row, &kind, &obs.Schedule, &obs.ContentHash, &observedAt); err != nil {
			return nil, err
		}

		if obs.Kind, err = shiftwatch.ParseOutcomeKind(kind); err != nil {
			return nil, err
		}
		if obs.ObservedAt, err = parseRFC3339(observedAt, "observed_at"); err != nil {
			return nil, err
		}

		observations = append(observations, &obs)
	}

	return observations, rows.Err()
}
