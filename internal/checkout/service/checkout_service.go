package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice domain.Invoice, details []domain.InvoiceDetail) (int, error)
}

type ProductCatalog interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type SaleMirror interface {
	RecordSaleDeduction(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error)
}

// CheckoutService turns a cart into an invoice, then mirrors each sold line
// onto the counter displays. The invoice commit and the display mirroring
// are deliberately separate: once the customer has paid, nothing about
// display state may undo the sale.
type CheckoutService struct {
	invoices InvoiceRepository
	products ProductCatalog
	mirror   SaleMirror
	logger   *zap.Logger
}

func NewCheckoutService(
	invoices InvoiceRepository,
	products ProductCatalog,
	mirror SaleMirror,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		invoices: invoices,
		products: products,
		mirror:   mirror,
		logger:   logger,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	// Prices are read at checkout time, so discounts already applied to the
	// product carry straight into the invoice.
	prices := make(map[int]decimal.Decimal, len(req.Items))
	total := decimal.Zero
	details := make([]domain.InvoiceDetail, 0, len(req.Items))
	for _, item := range req.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		prices[item.ProductID] = product.SellingPrice
		lineTotal := product.SellingPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		details = append(details, domain.InvoiceDetail{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SellingPrice: product.SellingPrice,
		})
	}

	invoiceID, err := s.invoices.Create(ctx, domain.Invoice{
		CustomerID:    req.CustomerID,
		EmployeeID:    req.EmployeeID,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   total,
	}, details)
	if err != nil {
		return nil, err
	}

	logger := s.logger.With(zap.Int("invoiceId", invoiceID))
	logger.Info("invoice committed",
		zap.String("totalAmount", total.String()),
		zap.Int("lines", len(req.Items)))

	result := &dto.CheckoutResult{
		InvoiceID:   invoiceID,
		TotalAmount: total.String(),
		Lines:       make([]dto.CheckoutLineResult, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		line := dto.CheckoutLineResult{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: prices[item.ProductID].String(),
		}

		deduction, err := s.mirror.RecordSaleDeduction(ctx, item.ProductID, item.Quantity)
		switch {
		case err == nil:
			line.Mirrored = true
			line.Deducted = deduction.Deducted
			line.Shortfall = deduction.Shortfall
		default:
			if _, ok := apperrors.IsNothingToDeductError(err); ok {
				logger.Warn("sold product absent from displays", zap.Int("productId", item.ProductID))
			} else {
				logger.Error("display mirroring failed",
					zap.Int("productId", item.ProductID), zap.Error(err))
			}
			line.Shortfall = item.Quantity
		}

		result.Lines = append(result.Lines, line)
	}

	return result, nil
}

func validateCheckout(req dto.CheckoutRequest) error {
	var details []apperrors.ValidationDetail

	switch req.PaymentMethod {
	case domain.PaymentMethodCash, domain.PaymentMethodCard, domain.PaymentMethodTransfer:
	default:
		details = append(details, apperrors.ValidationDetail{
			Field:   "paymentMethod",
			Message: "paymentMethod must be one of CASH, CARD, TRANSFER",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}
	for i, item := range req.Items {
		if item.ProductID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].productId", i),
				Message: "productId must be a positive integer",
			})
		}
		if item.Quantity <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid checkout request", details...)
	}
	return nil
}
