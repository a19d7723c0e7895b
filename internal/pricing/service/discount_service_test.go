package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type mockPricingRepository struct {
	ListPerishableLotsFunc func(ctx context.Context) ([]dto.PerishableLot, error)
	ApplyDiscountFunc      func(ctx context.Context, productID, percent int) error
}

func (m *mockPricingRepository) ListPerishableLots(ctx context.Context) ([]dto.PerishableLot, error) {
	return m.ListPerishableLotsFunc(ctx)
}

func (m *mockPricingRepository) ApplyDiscount(ctx context.Context, productID, percent int) error {
	return m.ApplyDiscountFunc(ctx, productID, percent)
}

func intPtr(i int) *int {
	return &i
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func perishableLot(lotID, productID, expiryDays int, safetyThreshold *int, imported time.Time, qty int) dto.PerishableLot {
	return dto.PerishableLot{
		LotID:           lotID,
		ProductID:       productID,
		ProductName:     "product",
		SellingPrice:    decimal.NewFromInt(100),
		ExpiryDays:      expiryDays,
		SafetyThreshold: safetyThreshold,
		ImportDate:      imported,
		Quantity:        qty,
	}
}

func TestListNearExpiry_ExcludesExpired(t *testing.T) {
	today := day(2026, 6, 20)
	repo := &mockPricingRepository{
		ListPerishableLotsFunc: func(ctx context.Context) ([]dto.PerishableLot, error) {
			return []dto.PerishableLot{
				// 10-day shelf life imported 11 days ago: expired.
				perishableLot(1, 10, 10, intPtr(5), day(2026, 6, 9), 5),
				// 10-day shelf life imported 8 days ago: 2 days remaining.
				perishableLot(2, 11, 10, intPtr(5), day(2026, 6, 12), 5),
				// 90-day shelf life imported yesterday: fresh.
				perishableLot(3, 12, 90, nil, day(2026, 6, 19), 5),
			}, nil
		},
	}

	svc := NewDiscountService(repo, zap.NewNop())

	rows, err := svc.ListNearExpiry(context.Background(), 7, today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].LotID)
	assert.Equal(t, 2, rows[0].DaysRemaining)
}

func TestListExpired_OnlyNegativeDaysRemaining(t *testing.T) {
	today := day(2026, 6, 20)
	repo := &mockPricingRepository{
		ListPerishableLotsFunc: func(ctx context.Context) ([]dto.PerishableLot, error) {
			return []dto.PerishableLot{
				perishableLot(1, 10, 10, intPtr(5), day(2026, 6, 9), 5),  // -1 day
				perishableLot(2, 11, 10, intPtr(5), day(2026, 6, 10), 5), // 0 days
			}, nil
		},
	}

	svc := NewDiscountService(repo, zap.NewNop())

	rows, err := svc.ListExpired(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].LotID)
	assert.Equal(t, -1, rows[0].DaysRemaining)
}

func TestListNearExpiry_MostUrgentFirst(t *testing.T) {
	today := day(2026, 6, 20)
	repo := &mockPricingRepository{
		ListPerishableLotsFunc: func(ctx context.Context) ([]dto.PerishableLot, error) {
			return []dto.PerishableLot{
				perishableLot(1, 10, 10, nil, day(2026, 6, 14), 5), // 4 days
				perishableLot(2, 11, 10, nil, day(2026, 6, 12), 5), // 2 days
			}, nil
		},
	}

	svc := NewDiscountService(repo, zap.NewNop())

	rows, err := svc.ListNearExpiry(context.Background(), 7, today)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].DaysRemaining)
	assert.Equal(t, 4, rows[1].DaysRemaining)
}

func TestListEligibleForDiscount_TwoTierRule(t *testing.T) {
	today := day(2026, 6, 20)
	repo := &mockPricingRepository{
		ListPerishableLotsFunc: func(ctx context.Context) ([]dto.PerishableLot, error) {
			return []dto.PerishableLot{
				// Dry good (threshold 180), 4 days remaining: eligible.
				perishableLot(1, 10, 180, intPtr(180), day(2025, 12, 26), 5),
				// Dry good, 6 days remaining: not eligible.
				perishableLot(2, 11, 180, intPtr(180), day(2025, 12, 28), 5),
				// Produce (threshold 5), 0 days remaining: eligible.
				perishableLot(3, 12, 7, intPtr(5), day(2026, 6, 13), 5),
				// Produce, 1 day remaining: not eligible.
				perishableLot(4, 13, 7, intPtr(5), day(2026, 6, 14), 5),
			}, nil
		},
	}

	svc := NewDiscountService(repo, zap.NewNop())

	candidates, err := svc.ListEligibleForDiscount(context.Background(), today)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	// Most urgent first.
	assert.Equal(t, 3, candidates[0].LotID)
	assert.Equal(t, 0, candidates[0].DaysRemaining)
	assert.Equal(t, 50, candidates[0].SuggestedPercent)

	assert.Equal(t, 1, candidates[1].LotID)
	assert.Equal(t, 4, candidates[1].DaysRemaining)
	assert.Equal(t, 50, candidates[1].SuggestedPercent)
}

func TestApplyDiscount_ValidatesPercent(t *testing.T) {
	called := false
	repo := &mockPricingRepository{
		ApplyDiscountFunc: func(ctx context.Context, productID, percent int) error {
			called = true
			return nil
		},
	}

	svc := NewDiscountService(repo, zap.NewNop())

	for _, percent := range []int{0, -5, 101} {
		err := svc.ApplyDiscount(context.Background(), 1, percent)
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, "percent %d should be rejected", percent)
	}
	assert.False(t, called)

	require.NoError(t, svc.ApplyDiscount(context.Background(), 1, 50))
	assert.True(t, called)
}
