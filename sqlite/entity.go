package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/k1-c/shiftwatch"
)

// Compile-time interface verification.
var _ shiftwatch.EntityService = (*EntityService)(nil)

// EntityService implements shiftwatch.EntityService using SQLite.
type EntityService struct {
	db *DB
}

// NewEntityService creates a new EntityService.
func NewEntityService(db *DB) *EntityService {
	return &EntityService{db: db}
}

const entityColumns = "row, name, url, prior_status, next_status, next_style, created_at, updated_at"

// CreateEntity creates a new entity, assigning the next free row if Row is zero.
func (s *EntityService) CreateEntity(ctx context.Context, entity *shiftwatch.Entity) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	if entity.Row == 0 {
		var maxRow int
		if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(row), 0) FROM entities").Scan(&maxRow); err != nil {
			return err
		}
		entity.Row = maxRow + 1
	} else {
		var exists int
		err := s.db.QueryRowContext(ctx, "SELECT 1 FROM entities WHERE row = ?", entity.Row).Scan(&exists)
		if err == nil {
			return shiftwatch.Errorf(shiftwatch.ECONFLICT, "row %d already exists", entity.Row)
		} else if err != sql.ErrNoRows {
			return err
		}
	}

	now := time.Now().UTC()
	entity.CreatedAt = now
	entity.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entities (`+entityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entity.Row, entity.Name, entity.URL, entity.PriorStatus, entity.NextStatus, string(entity.NextStyle),
		entity.CreatedAt.Format(time.RFC3339), entity.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindEntityByRow retrieves an entity by row.
func (s *EntityService) FindEntityByRow(ctx context.Context, row int) (*shiftwatch.Entity, error) {
	entity, err := scanEntity(s.db.QueryRowContext(ctx, `
		SELECT `+entityColumns+`
		FROM entities
		WHERE row = ?
	`, row))
	if err == sql.ErrNoRows {
		return nil, shiftwatch.Errorf(shiftwatch.ENOTFOUND, "entity not found")
	}
	return entity, err
}

// FindEntities retrieves entities matching the filter in ascending row order.
func (s *EntityService) FindEntities(ctx context.Context, filter shiftwatch.EntityFilter) ([]*shiftwatch.Entity, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + entityColumns + " FROM entities WHERE 1=1")

	if filter.Row != nil {
		query.WriteString(" AND row = ?")
		args = append(args, *filter.Row)
	}
	if filter.StartRow > 0 {
		query.WriteString(" AND row >= ?")
		args = append(args, filter.StartRow)
	}

	query.WriteString(" ORDER BY row ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []*shiftwatch.Entity
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, rows.Err()
}

// UpdateEntity updates an existing entity.
func (s *EntityService) UpdateEntity(ctx context.Context, row int, upd shiftwatch.EntityUpdate) (*shiftwatch.Entity, error) {
	entity, err := s.FindEntityByRow(ctx, row)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		entity.Name = *upd.Name
	}
	if upd.URL != nil {
		entity.URL = *upd.URL
	}
	if upd.PriorStatus != nil {
		entity.PriorStatus = *upd.PriorStatus
	}
	if upd.NextStatus != nil {
		entity.NextStatus = *upd.NextStatus
	}
	if upd.NextStyle != nil {
		entity.NextStyle = *upd.NextStyle
	}

	if err := entity.Validate(); err != nil {
		return nil, err
	}

	entity.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE entities
		SET name = ?, url = ?, prior_status = ?, next_status = ?, next_style = ?, updated_at = ?
		WHERE row = ?
	`, entity.Name, entity.URL, entity.PriorStatus, entity.NextStatus, string(entity.NextStyle),
		entity.UpdatedAt.Format(time.RFC3339), row)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// DeleteEntity permanently removes an entity. Its observations go with it.
func (s *EntityService) DeleteEntity(ctx context.Context, row int) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM entities WHERE row = ?", row)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shiftwatch.Errorf(shiftwatch.ENOTFOUND, "entity not found")
	}

	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntity(sc scanner) (*shiftwatch.Entity, error) {
	var entity shiftwatch.Entity
	var style, createdAt, updatedAt string

	if err := sc.Scan(&entity.Row, &entity.Name, &entity.URL, &entity.PriorStatus, &entity.NextStatus,
		&style, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	entity.NextStyle = shiftwatch.Style(style)

	var err error
	if entity.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if entity.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &entity, nil
}
