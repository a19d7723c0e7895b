package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLProductsRepository struct {
	db *sql.DB
}

func NewMySQLProductsRepository(db *sql.DB) *MySQLProductsRepository {
	return &MySQLProductsRepository{db: db}
}

const productColumns = `
	P.ProductID, P.ProductName, P.Unit, P.ImportPrice, P.SellingPrice,
	P.CategoryID, IFNULL(C.CategoryName, ''),
	F.ExpiryDays, F.SafetyThreshold,
	P.CreatedAt, P.UpdatedAt
`

func (r *MySQLProductsRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM PRODUCT P
		LEFT JOIN CATEGORY C ON P.CategoryID = C.CategoryID
		LEFT JOIN FOOD_ITEM F ON P.ProductID = F.ProductID
		WHERE P.ProductID = ?
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("scanning product row: %w", err)
	}

	return product, nil
}

// Create inserts the product and, for perishables, its FOOD_ITEM row in one
// transaction so a product can never exist half-written.
func (r *MySQLProductsRepository) Create(ctx context.Context, product domain.Product) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning product insert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO PRODUCT (ProductName, Unit, ImportPrice, SellingPrice, CategoryID)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		product.Name, product.Unit, product.ImportPrice, product.SellingPrice, product.CategoryID)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting product insert id: %w", err)
	}

	if product.Perishable() {
		foodQuery := `INSERT INTO FOOD_ITEM (ProductID, ExpiryDays, SafetyThreshold) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, foodQuery, id, product.ExpiryDays, product.SafetyThreshold); err != nil {
			return 0, fmt.Errorf("inserting perishable attributes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing product insert: %w", err)
	}

	return int(id), nil
}

// Update rewrites the product row and reconciles the FOOD_ITEM subtype: an
// upsert when the product is perishable, a delete when it no longer is.
func (r *MySQLProductsRepository) Update(ctx context.Context, product domain.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning product update: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE PRODUCT
		SET ProductName = ?, Unit = ?, ImportPrice = ?, SellingPrice = ?, CategoryID = ?
		WHERE ProductID = ?
	`
	result, err := tx.ExecContext(ctx, query,
		product.Name, product.Unit, product.ImportPrice, product.SellingPrice, product.CategoryID, product.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM PRODUCT WHERE ProductID = ?`, product.ID).Scan(&exists)
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", product.ID))
		}
		if err != nil {
			return fmt.Errorf("checking product existence: %w", err)
		}
	}

	if product.Perishable() {
		foodQuery := `
			INSERT INTO FOOD_ITEM (ProductID, ExpiryDays, SafetyThreshold)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE ExpiryDays = VALUES(ExpiryDays), SafetyThreshold = VALUES(SafetyThreshold)
		`
		if _, err := tx.ExecContext(ctx, foodQuery, product.ID, product.ExpiryDays, product.SafetyThreshold); err != nil {
			return fmt.Errorf("upserting perishable attributes: %w", err)
		}
	} else {
		if _, err := tx.ExecContext(ctx, `DELETE FROM FOOD_ITEM WHERE ProductID = ?`, product.ID); err != nil {
			return fmt.Errorf("removing perishable attributes: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product update: %w", err)
	}

	return nil
}

func (r *MySQLProductsRepository) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM PRODUCT P
		LEFT JOIN CATEGORY C ON P.CategoryID = C.CategoryID
		LEFT JOIN FOOD_ITEM F ON P.ProductID = F.ProductID
		WHERE P.ProductName LIKE ? OR C.CategoryName LIKE ?
		ORDER BY P.ProductName ASC
	`

	pattern := "%" + keyword + "%"
	rows, err := r.db.QueryContext(ctx, query, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *MySQLProductsRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM PRODUCT P
		LEFT JOIN CATEGORY C ON P.CategoryID = C.CategoryID
		LEFT JOIN FOOD_ITEM F ON P.ProductID = F.ProductID
		ORDER BY P.ProductID ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID, &product.Name, &product.Unit, &product.ImportPrice, &product.SellingPrice,
		&product.CategoryID, &product.Category,
		&product.ExpiryDays, &product.SafetyThreshold,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func collectProducts(rows *sql.Rows) ([]domain.Product, error) {
	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}
