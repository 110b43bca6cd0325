package mock

import (
	"context"

	"github.com/k1-c/shiftwatch"
)

var _ shiftwatch.ObservationService = (*ObservationService)(nil)

// ObservationService is a mock implementation of shiftwatch.ObservationService.
type ObservationService struct {
	CreateObservationFn func(ctx context.Context, obs *shiftwatch.Observation) error
	FindObservationsFn  func(ctx context.Context, filter shiftwatch.ObservationFilter) ([]*shiftwatch.Observation, error)
}

func (s *ObservationService) CreateObservation(ctx context.Context, obs *shiftwatch.Observation) error {
	return s.CreateObservationFn(ctx, obs)
}

func (s *ObservationService) FindObservations(ctx context.Context, filter shiftwatch.ObservationFilter) ([]*shiftwatch.Observation, error) {
	return s.FindObservationsFn(ctx, filter)
}
