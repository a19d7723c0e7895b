package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/dto"
)

// MySQLStockOverviewRepository is a read model over both stock tiers.
type MySQLStockOverviewRepository struct {
	db *sql.DB
}

func NewMySQLStockOverviewRepository(db *sql.DB) *MySQLStockOverviewRepository {
	return &MySQLStockOverviewRepository{db: db}
}

// StockOverview aggregates warehouse and counter stock per product,
// thinnest totals first.
func (r *MySQLStockOverviewRepository) StockOverview(ctx context.Context) ([]dto.StockOverviewRow, error) {
	query := `
		SELECT
			P.ProductID,
			P.ProductName,
			IFNULL(CAT.CategoryName, '') AS CategoryName,
			IFNULL(SUM(I.Quantity), 0) AS WarehouseQty,
			IFNULL((
				SELECT SUM(D2.CurrentQuantity)
				FROM DISPLAYS D2
				JOIN INVENTORY I2 ON D2.InventoryID = I2.InventoryID
				WHERE I2.ProductID = P.ProductID
			), 0) AS CounterQty
		FROM PRODUCT P
		LEFT JOIN INVENTORY I ON P.ProductID = I.ProductID
		LEFT JOIN CATEGORY CAT ON P.CategoryID = CAT.CategoryID
		GROUP BY P.ProductID, P.ProductName, CAT.CategoryName
		ORDER BY WarehouseQty + CounterQty ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying stock overview: %w", err)
	}
	defer rows.Close()

	var overview []dto.StockOverviewRow
	for rows.Next() {
		var row dto.StockOverviewRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Category, &row.WarehouseQty, &row.CounterQty); err != nil {
			return nil, fmt.Errorf("scanning stock overview row: %w", err)
		}
		row.TotalQty = row.WarehouseQty + row.CounterQty
		overview = append(overview, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock overview rows: %w", err)
	}

	return overview, nil
}
