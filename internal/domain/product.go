package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int
	Name         string
	Unit         string
	ImportPrice  decimal.Decimal
	SellingPrice decimal.Decimal
	CategoryID   int
	Category     string
	// Perishable attributes, nil for non-perishable products.
	ExpiryDays      *int
	SafetyThreshold *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p Product) Perishable() bool {
	return p.ExpiryDays != nil
}

// HasValidMargin reports whether the selling price is strictly above the
// import price. Enforced when products are created or edited, never by the
// stock engine itself.
func (p Product) HasValidMargin() bool {
	return p.SellingPrice.GreaterThan(p.ImportPrice)
}

// slowMoverSafetyThreshold splits perishables into the two discount tiers:
// dry goods with a large (or unset) safety threshold get discounted earlier
// than fast-moving produce.
const slowMoverSafetyThreshold = 30

const nearExpiryDiscountPercent = 50

// DiscountCutoffDays returns the days-remaining cutoff below which the
// product becomes eligible for the near-expiry discount.
func (p Product) DiscountCutoffDays() int {
	if p.SafetyThreshold == nil || *p.SafetyThreshold >= slowMoverSafetyThreshold {
		return 5
	}
	return 1
}

// SuggestedDiscountPercent returns the discount percentage for a lot of this
// product with the given remaining shelf life, or 0 when not eligible.
func (p Product) SuggestedDiscountPercent(daysRemaining int) int {
	if !p.Perishable() {
		return 0
	}
	if daysRemaining < p.DiscountCutoffDays() {
		return nearExpiryDiscountPercent
	}
	return 0
}

// DiscountedPrice applies percent off the current selling price. Repeated
// application compounds; callers apply at most once per eligibility event.
func (p Product) DiscountedPrice(percent int) decimal.Decimal {
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return p.SellingPrice.Mul(factor)
}
