package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/k1-c/shiftwatch"
)

// Ensure LoggingEntityService implements shiftwatch.EntityService.
var _ shiftwatch.EntityService = (*LoggingEntityService)(nil)

// LoggingEntityService wraps an EntityService and logs every cell write.
// Reads are delegated without logging.
type LoggingEntityService struct {
	next   shiftwatch.EntityService
	logger *slog.Logger
}

// NewLoggingEntityService creates a new LoggingEntityService.
func NewLoggingEntityService(next shiftwatch.EntityService, logger *slog.Logger) *LoggingEntityService {
	return &LoggingEntityService{next: next, logger: logger}
}

// CreateEntity delegates to the wrapped service and logs the assigned row.
func (s *LoggingEntityService) CreateEntity(ctx context.Context, entity *shiftwatch.Entity) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create entity",
			"row", entity.Row,
			"url", entity.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateEntity(ctx, entity)
}

// FindEntityByRow delegates to the wrapped service.
func (s *LoggingEntityService) FindEntityByRow(ctx context.Context, row int) (*shiftwatch.Entity, error) {
	return s.next.FindEntityByRow(ctx, row)
}

// FindEntities delegates to the wrapped service.
func (s *LoggingEntityService) FindEntities(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
	return s.next.FindEntities(ctx, filter)
}

// UpdateEntity delegates to the wrapped service and logs the written cells.
func (s *LoggingEntityService) UpdateEntity(ctx context.Context, row int, upd shiftwatch.EntityUpdate) (entity *shiftwatch.Entity, err error) {
	defer func(begin time.Time) {
		attrs := []any{"row", row}
		if upd.PriorStatus != nil {
			attrs = append(attrs, "prior", *upd.PriorStatus)
		}
		if upd.NextStatus != nil {
			attrs = append(attrs, "next", *upd.NextStatus)
		}
		if upd.NextStyle != nil {
			attrs = append(attrs, "style", string(*upd.NextStyle))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		s.logger.Info("update entity", attrs...)
	}(time.Now())
	return s.next.UpdateEntity(ctx, row, upd)
}

// DeleteEntity delegates to the wrapped service and logs the removal.
func (s *LoggingEntityService) DeleteEntity(ctx context.Context, row int) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete entity",
			"row", row,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntity(ctx, row)
}
