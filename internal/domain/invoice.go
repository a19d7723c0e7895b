package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID            int
	CustomerID    *int
	EmployeeID    *int
	PaymentMethod string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
}

type InvoiceDetail struct {
	ID           int
	InvoiceID    int
	ProductID    int
	Quantity     int
	SellingPrice decimal.Decimal
}

const (
	PaymentMethodCash     = "CASH"
	PaymentMethodCard     = "CARD"
	PaymentMethodTransfer = "TRANSFER"
)
