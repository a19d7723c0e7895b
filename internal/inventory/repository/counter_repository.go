package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLCounterRepository struct {
	db *sql.DB
}

func NewMySQLCounterRepository(db *sql.DB) *MySQLCounterRepository {
	return &MySQLCounterRepository{db: db}
}

func (r *MySQLCounterRepository) FindByID(ctx context.Context, id int) (*domain.Counter, error) {
	query := `
		SELECT C.CounterID, C.CounterName, C.CategoryID, CAT.CategoryName
		FROM COUNTER C
		JOIN CATEGORY CAT ON C.CategoryID = CAT.CategoryID
		WHERE C.CounterID = ?
	`

	var counter domain.Counter
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&counter.ID, &counter.Name, &counter.CategoryID, &counter.Category,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("counter with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("scanning counter row: %w", err)
	}

	return &counter, nil
}

func (r *MySQLCounterRepository) ListAll(ctx context.Context) ([]domain.Counter, error) {
	query := `
		SELECT C.CounterID, C.CounterName, C.CategoryID, CAT.CategoryName
		FROM COUNTER C
		JOIN CATEGORY CAT ON C.CategoryID = CAT.CategoryID
		ORDER BY C.CounterName
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying counters: %w", err)
	}
	defer rows.Close()

	var counters []domain.Counter
	for rows.Next() {
		var c domain.Counter
		if err := rows.Scan(&c.ID, &c.Name, &c.CategoryID, &c.Category); err != nil {
			return nil, fmt.Errorf("scanning counter row: %w", err)
		}
		counters = append(counters, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counter rows: %w", err)
	}

	return counters, nil
}
