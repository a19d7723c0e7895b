package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
)

type MySQLStatsRepository struct {
	db *sql.DB
}

func NewMySQLStatsRepository(db *sql.DB) *MySQLStatsRepository {
	return &MySQLStatsRepository{db: db}
}

// CountAll counts rows per entity kind. Table names come from the typed
// enum, never from callers.
func (r *MySQLStatsRepository) CountAll(ctx context.Context) ([]dto.EntityCountRow, error) {
	kinds := domain.AllEntityKinds()
	counts := make([]dto.EntityCountRow, 0, len(kinds))

	for _, kind := range kinds {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, kind.Table())

		var count int
		if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return nil, fmt.Errorf("counting %s: %w", kind.Label(), err)
		}

		counts = append(counts, dto.EntityCountRow{Entity: kind.Label(), Count: count})
	}

	return counts, nil
}
