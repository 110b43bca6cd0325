package shiftwatch

import (
	"context"
	"strings"
	"time"
)

// Observation records what one batch pass saw for one entity.
type Observation struct {
	ID          string      `json:"id"`
	BatchID     string      `json:"batchId"`
	Row         int         `json:"row"`
	Kind        OutcomeKind `json:"kind"`
	Schedule    string      `json:"schedule"`
	ContentHash string      `json:"contentHash"`
	ObservedAt  time.Time   `json:"observedAt"`
}

// NewObservation builds an observation for an outcome. The schedule is kept
// in display form, one record per line.
func NewObservation(batchID string, row int, outcome Outcome) *Observation {
	lines := make([]string, 0, len(outcome.Records))
	for _, r := range outcome.Records {
		lines = append(lines, r.String())
	}
	return &Observation{
		BatchID:  batchID,
		Row:      row,
		Kind:     outcome.Kind,
		Schedule: strings.Join(lines, "\n"),
	}
}

// Validate returns an error if the observation contains invalid fields.
func (o *Observation) Validate() error {
	if o.BatchID == "" {
		return Errorf(EINVALID, "observation batch ID required")
	}
	if o.Row <= 0 {
		return Errorf(EINVALID, "observation row required")
	}
	return nil
}

// ObservationService represents a service for the observation log.
type ObservationService interface {
	// CreateObservation records an observation. ID, ContentHash and
	// ObservedAt are assigned by the service.
	CreateObservation(ctx context.Context, obs *Observation) error

	// FindObservations retrieves observations, most recent first.
	FindObservations(ctx context.Context, filter ObservationFilter) ([]*Observation, error)
}

// ObservationFilter represents a filter for FindObservations.
type ObservationFilter struct {
	Row     *int    `json:"row"`
	BatchID *string `json:"batchId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
