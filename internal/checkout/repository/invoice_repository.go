package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type MySQLInvoiceRepository struct {
	db *sql.DB
}

func NewMySQLInvoiceRepository(db *sql.DB) *MySQLInvoiceRepository {
	return &MySQLInvoiceRepository{db: db}
}

// Create writes the invoice and all its detail lines in one transaction.
// The invoice is the financial record of the sale; display mirroring runs
// afterwards and never touches these rows.
func (r *MySQLInvoiceRepository) Create(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning invoice insert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO INVOICE (CustomerID, EmployeeID, PaymentMethod, TotalAmount)
		VALUES (?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		invoice.CustomerID, invoice.EmployeeID, invoice.PaymentMethod, invoice.TotalAmount)
	if err != nil {
		return 0, fmt.Errorf("inserting invoice: %w", err)
	}

	invoiceID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting invoice insert id: %w", err)
	}

	detailQuery := `
		INSERT INTO INVOICE_DETAIL (InvoiceID, ProductID, Quantity, SellingPrice)
		VALUES (?, ?, ?, ?)
	`
	for _, detail := range details {
		_, err := tx.ExecContext(ctx, detailQuery,
			invoiceID, detail.ProductID, detail.Quantity, detail.SellingPrice)
		if err != nil {
			return 0, fmt.Errorf("inserting invoice detail for product %d: %w", detail.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing invoice: %w", err)
	}

	return int(invoiceID), nil
}

func (r *MySQLInvoiceRepository) FindByID(ctx context.Context, id int) (*domain.Invoice, []domain.InvoiceDetail, error) {
	query := `
		SELECT InvoiceID, CustomerID, EmployeeID, PaymentMethod, TotalAmount, CreatedAt
		FROM INVOICE
		WHERE InvoiceID = ?
	`

	var invoice domain.Invoice
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID, &invoice.CustomerID, &invoice.EmployeeID,
		&invoice.PaymentMethod, &invoice.TotalAmount, &invoice.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("invoice with id %d not found", id))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("scanning invoice row: %w", err)
	}

	detailQuery := `
		SELECT InvoiceDetailID, InvoiceID, ProductID, Quantity, SellingPrice
		FROM INVOICE_DETAIL
		WHERE InvoiceID = ?
		ORDER BY InvoiceDetailID ASC
	`
	rows, err := r.db.QueryContext(ctx, detailQuery, id)
	if err != nil {
		return nil, nil, fmt.Errorf("querying invoice details: %w", err)
	}
	defer rows.Close()

	var details []domain.InvoiceDetail
	for rows.Next() {
		var detail domain.InvoiceDetail
		err := rows.Scan(&detail.ID, &detail.InvoiceID, &detail.ProductID, &detail.Quantity, &detail.SellingPrice)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning invoice detail row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating invoice detail rows: %w", err)
	}

	return &invoice, details, nil
}
