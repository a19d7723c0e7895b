package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerishableLot is a lot of a perishable product joined with its shelf
// life attributes, as read from storage. Classification against a given
// day happens in the pricing service, not in SQL.
type PerishableLot struct {
	LotID           int
	ProductID       int
	ProductName     string
	SellingPrice    decimal.Decimal
	ExpiryDays      int
	SafetyThreshold *int
	ImportDate      time.Time
	Quantity        int
}

// ExpiryRow is one lot in a near-expiry or expired listing.
type ExpiryRow struct {
	ProductID     int       `json:"productId"`
	LotID         int       `json:"lotId"`
	ProductName   string    `json:"productName"`
	ImportDate    time.Time `json:"importDate"`
	DaysRemaining int       `json:"daysRemaining"`
	Quantity      int       `json:"quantity"`
}

// DiscountCandidate is one lot whose remaining shelf life makes its
// product eligible for an automatic discount.
type DiscountCandidate struct {
	ProductID        int    `json:"productId"`
	LotID            int    `json:"lotId"`
	ProductName      string `json:"productName"`
	DaysRemaining    int    `json:"daysRemaining"`
	SuggestedPercent int    `json:"suggestedPercent"`
	SellingPrice     string `json:"sellingPrice"`
}
