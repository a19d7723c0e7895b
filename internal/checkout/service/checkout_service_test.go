package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type mockInvoiceRepository struct {
	createFn func(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error)
}

func (m *mockInvoiceRepository) Create(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error) {
	return m.createFn(ctx, invoice, details)
}

type mockProductCatalog struct {
	products map[int]*domain.Product
}

func (m *mockProductCatalog) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFoundError("product not found")
}

type mockSaleMirror struct {
	recordFn func(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error)
}

func (m *mockSaleMirror) RecordSaleDeduction(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error) {
	return m.recordFn(ctx, productID, quantitySold)
}

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestCheckout_TotalsAndMirrorsEachLine(t *testing.T) {
	var committed domain.Invoice
	var committedDetails []domain.InvoiceDetail
	invoices := &mockInvoiceRepository{
		createFn: func(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error) {
			committed = invoice
			committedDetails = details
			return 42, nil
		},
	}
	catalog := &mockProductCatalog{products: map[int]*domain.Product{
		1: {ID: 1, Name: "Milk", SellingPrice: price(18)},
		2: {ID: 2, Name: "Bread", SellingPrice: price(25)},
	}}
	mirror := &mockSaleMirror{
		recordFn: func(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error) {
			return &dto.DeductionResult{ProductID: productID, Requested: quantitySold, Deducted: quantitySold}, nil
		},
	}
	svc := NewCheckoutService(invoices, catalog, mirror, zap.NewNop())

	result, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: domain.PaymentMethodCash,
		Items: []dto.CheckoutItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result.InvoiceID)
	assert.Equal(t, "61", result.TotalAmount)
	assert.Equal(t, "61", committed.TotalAmount.String())
	require.Len(t, committedDetails, 2)
	require.Len(t, result.Lines, 2)
	assert.True(t, result.Lines[0].Mirrored)
	assert.Equal(t, 2, result.Lines[0].Deducted)
}

func TestCheckout_MissingDisplaysDoNotBlockSale(t *testing.T) {
	invoices := &mockInvoiceRepository{
		createFn: func(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error) {
			return 7, nil
		},
	}
	catalog := &mockProductCatalog{products: map[int]*domain.Product{
		1: {ID: 1, Name: "Milk", SellingPrice: price(18)},
	}}
	mirror := &mockSaleMirror{
		recordFn: func(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error) {
			return nil, apperrors.NewNothingToDeductError(productID)
		},
	}
	svc := NewCheckoutService(invoices, catalog, mirror, zap.NewNop())

	result, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: domain.PaymentMethodCard,
		Items:         []dto.CheckoutItem{{ProductID: 1, Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, 7, result.InvoiceID)
	require.Len(t, result.Lines, 1)
	assert.False(t, result.Lines[0].Mirrored)
	assert.Equal(t, 0, result.Lines[0].Deducted)
	assert.Equal(t, 3, result.Lines[0].Shortfall)
}

func TestCheckout_UnknownProductFailsBeforeInvoice(t *testing.T) {
	invoices := &mockInvoiceRepository{
		createFn: func(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error) {
			t.Fatal("invoice should not be committed")
			return 0, nil
		},
	}
	catalog := &mockProductCatalog{products: map[int]*domain.Product{}}
	svc := NewCheckoutService(invoices, catalog, &mockSaleMirror{}, zap.NewNop())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: domain.PaymentMethodCash,
		Items:         []dto.CheckoutItem{{ProductID: 99, Quantity: 1}},
	})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCheckout_ValidatesRequest(t *testing.T) {
	svc := NewCheckoutService(&mockInvoiceRepository{}, &mockProductCatalog{}, &mockSaleMirror{}, zap.NewNop())

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		PaymentMethod: "IOU",
		Items:         []dto.CheckoutItem{{ProductID: 1, Quantity: 0}},
	})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"paymentMethod", "items[0].quantity"}, fields)
}
