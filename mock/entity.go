package mock

import (
	"context"

	"github.com/k1-c/shiftwatch"
)

var _ shiftwatch.EntityService = (*EntityService)(nil)

// EntityService is a mock implementation of shiftwatch.EntityService.
type EntityService struct {
	CreateEntityFn    func(ctx context.Context, entity *shiftwatch.Entity) error
	FindEntityByRowFn func(ctx context.Context, row int) (*shiftwatch.Entity, error)
	FindEntitiesFn    func(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error)
	UpdateEntityFn    func(ctx context.Context, row int, upd shiftwatch.EntityUpdate) (*shiftwatch.Entity, error)
	DeleteEntityFn    func(ctx context.Context, row int) error
}

func (s *EntityService) CreateEntity(ctx context.Context, entity *shiftwatch.Entity) error {
	return s.CreateEntityFn(ctx, entity)
}

func (s *EntityService) FindEntityByRow(ctx context.Context, row int) (*shiftwatch.Entity, error) {
	return s.FindEntityByRowFn(ctx, row)
}

func (s *EntityService) FindEntities(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
	return s.FindEntitiesFn(ctx, filter)
}

func (s *EntityService) UpdateEntity(ctx context.Context, row int, upd shiftwatch.EntityUpdate) (*shiftwatch.Entity, error) {
	return s.UpdateEntityFn(ctx, row, upd)
}

func (s *EntityService) DeleteEntity(ctx context.Context, row int) error {
	return s.DeleteEntityFn(ctx, row)
}
