package mock

import (
	"context"

	"github.com/k1-c/shiftwatch"
)

var _ shiftwatch.BatchService = (*BatchService)(nil)

// BatchService is a mock implementation of shiftwatch.BatchService.
type BatchService struct {
	StartBatchFn  func(ctx context.Context) (*shiftwatch.Batch, error)
	FinishBatchFn func(ctx context.Context, id string, result shiftwatch.BatchResult, errMsg string) (*shiftwatch.Batch, error)
	FindBatchesFn func(ctx context.Context, filter shiftwatch.BatchFilter) ([]*shiftwatch.Batch, error)
}

func (s *BatchService) StartBatch(ctx context.Context) (*shiftwatch.Batch, error) {
	return s.StartBatchFn(ctx)
}

func (s *BatchService) FinishBatch(ctx context.Context, id string, result shiftwatch.BatchResult, errMsg string) (*shiftwatch.Batch, error) {
	return s.FinishBatchFn(ctx, id, result, errMsg)
}

func (s *BatchService) FindBatches(ctx context.Context, filter shiftwatch.BatchFilter) ([]*shiftwatch.Batch, error) {
	return s.FindBatchesFn(ctx, filter)
}
