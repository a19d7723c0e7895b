package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/dto"
)

// MySQLAlertsRepository computes the dashboard's derived stock
// projections. Read-only: none of these queries mutate ledger state, so
// repeated calls with unchanged state return identical results.
type MySQLAlertsRepository struct {
	db *sql.DB
}

func NewMySQLAlertsRepository(db *sql.DB) *MySQLAlertsRepository {
	return &MySQLAlertsRepository{db: db}
}

// LowStockOnCounter lists displays with 0 < quantity < threshold.
func (r *MySQLAlertsRepository) LowStockOnCounter(ctx context.Context, threshold int) ([]dto.LowStockRow, error) {
	query := `
		SELECT D.DisplayID, D.CounterID, C.CounterName, P.ProductID, P.ProductName, D.Position, D.CurrentQuantity
		FROM DISPLAYS D
		JOIN INVENTORY I ON D.InventoryID = I.InventoryID
		JOIN PRODUCT P ON I.ProductID = P.ProductID
		JOIN COUNTER C ON D.CounterID = C.CounterID
		WHERE D.CurrentQuantity > 0 AND D.CurrentQuantity < ?
		ORDER BY D.CurrentQuantity ASC
	`

	rows, err := r.db.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("querying low stock displays: %w", err)
	}
	defer rows.Close()

	var out []dto.LowStockRow
	for rows.Next() {
		var row dto.LowStockRow
		err := rows.Scan(&row.DisplayID, &row.CounterID, &row.CounterName, &row.ProductID, &row.ProductName, &row.Position, &row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scanning low stock row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating low stock rows: %w", err)
	}

	return out, nil
}

// NeedsRefill lists products whose counter total fell below threshold
// while warehouse stock remains to transfer from.
func (r *MySQLAlertsRepository) NeedsRefill(ctx context.Context, threshold int) ([]dto.RefillRow, error) {
	query := `
		SELECT
			P.ProductID,
			P.ProductName,
			IFNULL(SUM(D.CurrentQuantity), 0) AS OnCounter,
			IFNULL((SELECT SUM(I2.Quantity) FROM INVENTORY I2 WHERE I2.ProductID = P.ProductID), 0) AS InWarehouse
		FROM PRODUCT P
		JOIN INVENTORY I ON P.ProductID = I.ProductID
		JOIN DISPLAYS D ON I.InventoryID = D.InventoryID
		GROUP BY P.ProductID, P.ProductName
		HAVING OnCounter < ? AND InWarehouse > 0
		ORDER BY OnCounter ASC
	`

	rows, err := r.db.QueryContext(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("querying refill candidates: %w", err)
	}
	defer rows.Close()

	var out []dto.RefillRow
	for rows.Next() {
		var row dto.RefillRow
		err := rows.Scan(&row.ProductID, &row.ProductName, &row.OnCounter, &row.InWarehouse)
		if err != nil {
			return nil, fmt.Errorf("scanning refill row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating refill rows: %w", err)
	}

	return out, nil
}

// WarehouseExhausted lists products with zero warehouse stock but still
// available on a counter.
func (r *MySQLAlertsRepository) WarehouseExhausted(ctx context.Context) ([]dto.ExhaustedRow, error) {
	query := `
		SELECT P.ProductID, P.ProductName, SUM(D.CurrentQuantity) AS OnCounter
		FROM DISPLAYS D
		JOIN INVENTORY I ON D.InventoryID = I.InventoryID
		JOIN PRODUCT P ON I.ProductID = P.ProductID
		WHERE D.CurrentQuantity > 0
		  AND NOT EXISTS (
			SELECT 1 FROM INVENTORY IW
			WHERE IW.ProductID = P.ProductID AND IW.Quantity > 0
		  )
		GROUP BY P.ProductID, P.ProductName
		ORDER BY OnCounter ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying exhausted products: %w", err)
	}
	defer rows.Close()

	var out []dto.ExhaustedRow
	for rows.Next() {
		var row dto.ExhaustedRow
		err := rows.Scan(&row.ProductID, &row.ProductName, &row.OnCounter)
		if err != nil {
			return nil, fmt.Errorf("scanning exhausted row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exhausted rows: %w", err)
	}

	return out, nil
}
