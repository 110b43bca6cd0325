package shiftwatch

import (
	"context"
	"net/url"
	"time"
)

// Entity represents a tracked subject: one row of the row store with a
// schedule page URL and two output cells.
type Entity struct {
	Row         int       `json:"row"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	PriorStatus string    `json:"priorStatus"`
	NextStatus  string    `json:"nextStatus"`
	NextStyle   Style     `json:"nextStyle"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate returns an error if the entity contains invalid fields.
// An empty URL is allowed; such rows are skipped by a batch pass.
func (e *Entity) Validate() error {
	if e.Row < 0 {
		return Errorf(EINVALID, "entity row must not be negative")
	}
	if e.URL == "" {
		return nil
	}
	u, err := url.Parse(e.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "entity URL %q must be an absolute http(s) URL", e.URL)
	}
	return nil
}

// EntityService represents the row store.
type EntityService interface {
	// CreateEntity creates a new entity. A zero Row is assigned the next
	// free row. Returns ECONFLICT if the row is already taken.
	CreateEntity(ctx context.Context, entity *Entity) error

	// FindEntityByRow retrieves an entity by row.
	// Returns ENOTFOUND if the row does not exist.
	FindEntityByRow(ctx context.Context, row int) (*Entity, error)

	// FindEntities retrieves entities matching the filter in ascending row order.
	FindEntities(ctx context.Context, filter EntityFilter) ([]*Entity, error)

	// UpdateEntity updates an existing entity.
	// Returns ENOTFOUND if the row does not exist.
	UpdateEntity(ctx context.Context, row int, upd EntityUpdate) (*Entity, error)

	// DeleteEntity permanently removes an entity and its observations.
	// Returns ENOTFOUND if the row does not exist.
	DeleteEntity(ctx context.Context, row int) error
}

// EntityFilter represents a filter for FindEntities.
type EntityFilter struct {
	Row *int `json:"row"`

	// StartRow skips rows before it (header rows in a sheet layout).
	StartRow int `json:"startRow"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EntityUpdate represents fields that can be updated on an entity.
type EntityUpdate struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	PriorStatus *string `json:"priorStatus"`
	NextStatus  *string `json:"nextStatus"`
	NextStyle   *Style  `json:"nextStyle"`
}
