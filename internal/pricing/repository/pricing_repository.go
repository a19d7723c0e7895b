package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/dto"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLPricingRepository struct {
	db *sql.DB
}

func NewMySQLPricingRepository(db *sql.DB) *MySQLPricingRepository {
	return &MySQLPricingRepository{db: db}
}

// ListPerishableLots returns every lot with stock whose product carries
// shelf-life attributes. Expiry classification is left to the caller so
// the rules stay in one place.
func (r *MySQLPricingRepository) ListPerishableLots(ctx context.Context) ([]dto.PerishableLot, error) {
	query := `
		SELECT I.InventoryID, P.ProductID, P.ProductName, P.SellingPrice,
		       F.ExpiryDays, F.SafetyThreshold, I.ImportDate, I.Quantity
		FROM INVENTORY I
		JOIN PRODUCT P ON I.ProductID = P.ProductID
		JOIN FOOD_ITEM F ON P.ProductID = F.ProductID
		WHERE I.Quantity > 0
		ORDER BY I.ImportDate ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying perishable lots: %w", err)
	}
	defer rows.Close()

	var lots []dto.PerishableLot
	for rows.Next() {
		var lot dto.PerishableLot
		err := rows.Scan(
			&lot.LotID, &lot.ProductID, &lot.ProductName, &lot.SellingPrice,
			&lot.ExpiryDays, &lot.SafetyThreshold, &lot.ImportDate, &lot.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning perishable lot row: %w", err)
		}
		lots = append(lots, lot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating perishable lot rows: %w", err)
	}

	return lots, nil
}

// ApplyDiscount cuts the current selling price by percent. The mutation
// compounds when repeated; deduplication per eligibility window is the
// caller's responsibility.
func (r *MySQLPricingRepository) ApplyDiscount(ctx context.Context, productID, percent int) error {
	query := `UPDATE PRODUCT SET SellingPrice = SellingPrice * (100 - ?) / 100 WHERE ProductID = ?`

	result, err := r.db.ExecContext(ctx, query, percent, productID)
	if err != nil {
		return fmt.Errorf("applying discount: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Zero affected rows also happens when the update matched but
		// left the price unchanged, so check existence before reporting
		// NotFound.
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM PRODUCT WHERE ProductID = ?`, productID).Scan(&exists)
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", productID))
		}
		if err != nil {
			return fmt.Errorf("checking product existence: %w", err)
		}
	}

	return nil
}
