package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLLotRepository struct {
	db *sql.DB
}

func NewMySQLLotRepository(db *sql.DB) *MySQLLotRepository {
	return &MySQLLotRepository{db: db}
}

// Create inserts a new lot. Receipts never merge into an existing lot for
// the same product: distinct import dates must stay distinguishable.
func (r *MySQLLotRepository) Create(ctx context.Context, productID, quantity int, importDate time.Time) (int, error) {
	query := `INSERT INTO INVENTORY (ProductID, Quantity, ImportDate) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, productID, quantity, importDate)
	if err != nil {
		return 0, fmt.Errorf("inserting lot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting lot insert id: %w", err)
	}

	return int(id), nil
}

func (r *MySQLLotRepository) FindByID(ctx context.Context, id int) (*domain.Lot, error) {
	query := `
		SELECT InventoryID, ProductID, Quantity, ImportDate
		FROM INVENTORY
		WHERE InventoryID = ?
	`
	return r.scanLot(r.db.QueryRowContext(ctx, query, id), id)
}

// FindByIDForUpdate locks the lot row for the duration of the surrounding
// transaction so the read-then-write sequence cannot interleave with a
// concurrent mutation.
func (r *MySQLLotRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Lot, error) {
	query := `
		SELECT InventoryID, ProductID, Quantity, ImportDate
		FROM INVENTORY
		WHERE InventoryID = ?
		FOR UPDATE
	`
	return r.scanLot(tx.QueryRowContext(ctx, query, id), id)
}

func (r *MySQLLotRepository) scanLot(row *sql.Row, id int) (*domain.Lot, error) {
	var lot domain.Lot
	err := row.Scan(&lot.ID, &lot.ProductID, &lot.Quantity, &lot.ImportDate)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("lot with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("scanning lot row: %w", err)
	}
	return &lot, nil
}

// Decrement assumes the caller holds the row lock and has already checked
// availability.
func (r *MySQLLotRepository) Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error {
	query := `UPDATE INVENTORY SET Quantity = Quantity - ? WHERE InventoryID = ?`

	result, err := tx.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("decrementing lot: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("lot with id %d not found", id))
	}

	return nil
}

func (r *MySQLLotRepository) TotalForProduct(ctx context.Context, productID int) (int, error) {
	query := `SELECT IFNULL(SUM(Quantity), 0) FROM INVENTORY WHERE ProductID = ?`

	var total int
	if err := r.db.QueryRowContext(ctx, query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing warehouse quantity: %w", err)
	}

	return total, nil
}

// ListWithStock returns lots still holding stock, oldest import first, the
// order stock-room staff transfer them out in.
func (r *MySQLLotRepository) ListWithStock(ctx context.Context) ([]dto.LotStockRow, error) {
	query := `
		SELECT I.InventoryID, P.ProductID, P.ProductName, I.Quantity, I.ImportDate
		FROM INVENTORY I
		JOIN PRODUCT P ON I.ProductID = P.ProductID
		WHERE I.Quantity > 0
		ORDER BY I.ImportDate ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying lots with stock: %w", err)
	}
	defer rows.Close()

	var lots []dto.LotStockRow
	for rows.Next() {
		var row dto.LotStockRow
		err := rows.Scan(&row.LotID, &row.ProductID, &row.ProductName, &row.Quantity, &row.ImportDate)
		if err != nil {
			return nil, fmt.Errorf("scanning lot stock row: %w", err)
		}
		lots = append(lots, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lot stock rows: %w", err)
	}

	return lots, nil
}
