package shiftwatch

import (
	"context"
	"time"
)

// BatchResult is the recorded outcome of a whole reconciliation pass.
type BatchResult string

// Batch results. A batch without a result has not finished.
const (
	BatchPending BatchResult = ""
	BatchSuccess BatchResult = "SUCCESS"
	BatchFailure BatchResult = "FAILURE"
)

// Style returns the background marker for the result.
func (r BatchResult) Style() Style {
	switch r {
	case BatchSuccess:
		return StyleSuccess
	case BatchFailure:
		return StyleFailure
	}
	return StyleDefault
}

// Batch records one reconciliation pass.
type Batch struct {
	ID         string      `json:"id"`
	StartedAt  time.Time   `json:"startedAt"`
	FinishedAt time.Time   `json:"finishedAt"`
	Result     BatchResult `json:"result"`
	Error      string      `json:"error,omitempty"`
}

// BatchService represents a service for batch bookkeeping.
type BatchService interface {
	// StartBatch records the start timestamp of a new pass.
	StartBatch(ctx context.Context) (*Batch, error)

	// FinishBatch records the result of a pass. errMsg may be empty.
	// Returns ENOTFOUND if the batch does not exist.
	FinishBatch(ctx context.Context, id string, result BatchResult, errMsg string) (*Batch, error)

	// FindBatches retrieves batches, most recent first.
	FindBatches(ctx context.Context, filter BatchFilter) ([]*Batch, error)
}

// BatchFilter represents a filter for FindBatches.
type BatchFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
