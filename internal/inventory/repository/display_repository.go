package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLDisplayRepository struct {
	db *sql.DB
}

func NewMySQLDisplayRepository(db *sql.DB) *MySQLDisplayRepository {
	return &MySQLDisplayRepository{db: db}
}

const displayColumns = `DisplayID, InventoryID, CounterID, Position, MaxQuantity, CurrentQuantity`

func (r *MySQLDisplayRepository) Create(ctx context.Context, tx *sql.Tx, d domain.Display) (int, error) {
	query := `
		INSERT INTO DISPLAYS (InventoryID, CounterID, Position, MaxQuantity, CurrentQuantity)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query, d.LotID, d.CounterID, d.Position, d.MaxQuantity, d.CurrentQuantity)
	if err != nil {
		return 0, fmt.Errorf("inserting display: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting display insert id: %w", err)
	}

	return int(id), nil
}

func (r *MySQLDisplayRepository) FindByID(ctx context.Context, id int) (*domain.Display, error) {
	query := fmt.Sprintf(`SELECT %s FROM DISPLAYS WHERE DisplayID = ?`, displayColumns)
	return r.scanDisplay(r.db.QueryRowContext(ctx, query, id), id)
}

func (r *MySQLDisplayRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Display, error) {
	query := fmt.Sprintf(`SELECT %s FROM DISPLAYS WHERE DisplayID = ? FOR UPDATE`, displayColumns)
	return r.scanDisplay(tx.QueryRowContext(ctx, query, id), id)
}

// FindSlotForUpdate locates the display a transfer would top up: same lot,
// same counter, same shelf position. NotFound means the transfer creates a
// new display instead.
func (r *MySQLDisplayRepository) FindSlotForUpdate(ctx context.Context, tx *sql.Tx, lotID, counterID int, position string) (*domain.Display, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM DISPLAYS
		WHERE InventoryID = ? AND CounterID = ? AND Position = ?
		FOR UPDATE
	`, displayColumns)

	var d domain.Display
	err := tx.QueryRowContext(ctx, query, lotID, counterID, position).Scan(
		&d.ID, &d.LotID, &d.CounterID, &d.Position, &d.MaxQuantity, &d.CurrentQuantity,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no display for lot %d at counter %d position %q", lotID, counterID, position))
	}
	if err != nil {
		return nil, fmt.Errorf("scanning display row: %w", err)
	}

	return &d, nil
}

func (r *MySQLDisplayRepository) scanDisplay(row *sql.Row, id int) (*domain.Display, error) {
	var d domain.Display
	err := row.Scan(&d.ID, &d.LotID, &d.CounterID, &d.Position, &d.MaxQuantity, &d.CurrentQuantity)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("display with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("scanning display row: %w", err)
	}
	return &d, nil
}

// Increment assumes the caller holds the row lock and has already checked
// capacity.
func (r *MySQLDisplayRepository) Increment(ctx context.Context, tx *sql.Tx, id, amount int) error {
	query := `UPDATE DISPLAYS SET CurrentQuantity = CurrentQuantity + ? WHERE DisplayID = ?`

	result, err := tx.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("incrementing display: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("display with id %d not found", id))
	}

	return nil
}

// Decrement clamps at zero: removing more than is present removes what is
// there.
func (r *MySQLDisplayRepository) Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error {
	query := `UPDATE DISPLAYS SET CurrentQuantity = GREATEST(CurrentQuantity - ?, 0) WHERE DisplayID = ?`

	result, err := tx.ExecContext(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("decrementing display: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("display with id %d not found", id))
	}

	return nil
}

// ListForProductForUpdate returns all displays holding the product, fullest
// first, with every row locked. The sale allocator walks this set inside
// one transaction so a partial deduction is never visible.
func (r *MySQLDisplayRepository) ListForProductForUpdate(ctx context.Context, tx *sql.Tx, productID int) ([]domain.Display, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM DISPLAYS D
		WHERE D.InventoryID IN (SELECT InventoryID FROM INVENTORY WHERE ProductID = ?)
		  AND D.CurrentQuantity > 0
		ORDER BY D.CurrentQuantity DESC
		FOR UPDATE
	`, qualifyDisplayColumns("D"))

	rows, err := tx.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("querying displays for product: %w", err)
	}
	return collectDisplays(rows)
}

func (r *MySQLDisplayRepository) ListForProduct(ctx context.Context, productID int) ([]domain.Display, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM DISPLAYS D
		WHERE D.InventoryID IN (SELECT InventoryID FROM INVENTORY WHERE ProductID = ?)
		  AND D.CurrentQuantity > 0
		ORDER BY D.CurrentQuantity DESC
	`, qualifyDisplayColumns("D"))

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("querying displays for product: %w", err)
	}
	return collectDisplays(rows)
}

func (r *MySQLDisplayRepository) TotalForProduct(ctx context.Context, productID int) (int, error) {
	query := `
		SELECT IFNULL(SUM(D.CurrentQuantity), 0)
		FROM DISPLAYS D
		JOIN INVENTORY I ON D.InventoryID = I.InventoryID
		WHERE I.ProductID = ?
	`

	var total int
	if err := r.db.QueryRowContext(ctx, query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing counter quantity: %w", err)
	}

	return total, nil
}

func qualifyDisplayColumns(alias string) string {
	return fmt.Sprintf("%s.DisplayID, %s.InventoryID, %s.CounterID, %s.Position, %s.MaxQuantity, %s.CurrentQuantity",
		alias, alias, alias, alias, alias, alias)
}

func collectDisplays(rows *sql.Rows) ([]domain.Display, error) {
	defer rows.Close()

	var displays []domain.Display
	for rows.Next() {
		var d domain.Display
		err := rows.Scan(&d.ID, &d.LotID, &d.CounterID, &d.Position, &d.MaxQuantity, &d.CurrentQuantity)
		if err != nil {
			return nil, fmt.Errorf("scanning display row: %w", err)
		}
		displays = append(displays, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating display rows: %w", err)
	}

	return displays, nil
}
