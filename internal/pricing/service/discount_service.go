package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type PricingRepository interface {
	ListPerishableLots(ctx context.Context) ([]dto.PerishableLot, error)
	ApplyDiscount(ctx context.Context, productID, percent int) error
}

// DiscountService derives remaining shelf life per lot and decides
// discount eligibility. It reads ledger state and mutates only the
// product's selling price, never stock.
type DiscountService struct {
	repo   PricingRepository
	logger *zap.Logger
}

func NewDiscountService(repo PricingRepository, logger *zap.Logger) *DiscountService {
	return &DiscountService{
		repo:   repo,
		logger: logger,
	}
}

// ListNearExpiry returns lots with 0 to thresholdDays of shelf life left,
// most urgent first. Expired lots are excluded; they belong to
// ListExpired.
func (s *DiscountService) ListNearExpiry(ctx context.Context, thresholdDays int, today time.Time) ([]dto.ExpiryRow, error) {
	return s.listByStatus(ctx, domain.ExpiryNear, thresholdDays, today)
}

// ListExpired returns lots already past their shelf life: unsellable
// stock awaiting removal.
func (s *DiscountService) ListExpired(ctx context.Context, today time.Time) ([]dto.ExpiryRow, error) {
	return s.listByStatus(ctx, domain.ExpiryExpired, 0, today)
}

func (s *DiscountService) listByStatus(ctx context.Context, status domain.ExpiryStatus, thresholdDays int, today time.Time) ([]dto.ExpiryRow, error) {
	lots, err := s.repo.ListPerishableLots(ctx)
	if err != nil {
		return nil, err
	}

	var out []dto.ExpiryRow
	for _, lot := range lots {
		daysRemaining := domain.DaysRemaining(lot.ExpiryDays, lot.ImportDate, today)
		if domain.ClassifyExpiry(daysRemaining, thresholdDays) != status {
			continue
		}
		out = append(out, dto.ExpiryRow{
			ProductID:     lot.ProductID,
			LotID:         lot.LotID,
			ProductName:   lot.ProductName,
			ImportDate:    lot.ImportDate,
			DaysRemaining: daysRemaining,
			Quantity:      lot.Quantity,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})

	return out, nil
}

// ListEligibleForDiscount applies the two-tier rule per lot: slow movers
// (safety threshold unset or large) qualify under 5 days remaining, fast
// movers under 1.
func (s *DiscountService) ListEligibleForDiscount(ctx context.Context, today time.Time) ([]dto.DiscountCandidate, error) {
	lots, err := s.repo.ListPerishableLots(ctx)
	if err != nil {
		return nil, err
	}

	var out []dto.DiscountCandidate
	for _, lot := range lots {
		product := domain.Product{
			ID:              lot.ProductID,
			ExpiryDays:      &lot.ExpiryDays,
			SafetyThreshold: lot.SafetyThreshold,
		}

		daysRemaining := domain.DaysRemaining(lot.ExpiryDays, lot.ImportDate, today)
		percent := product.SuggestedDiscountPercent(daysRemaining)
		if percent == 0 {
			continue
		}

		out = append(out, dto.DiscountCandidate{
			ProductID:        lot.ProductID,
			LotID:            lot.LotID,
			ProductName:      lot.ProductName,
			DaysRemaining:    daysRemaining,
			SuggestedPercent: percent,
			SellingPrice:     lot.SellingPrice.String(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})

	return out, nil
}

// ApplyDiscount cuts the product's selling price. Each call compounds on
// the current price; the engine keeps no record of past applications, so
// callers apply at most once per eligibility event.
func (s *DiscountService) ApplyDiscount(ctx context.Context, productID, percent int) error {
	if percent <= 0 || percent > 100 {
		return apperrors.NewValidationError("percent out of range", apperrors.ValidationDetail{
			Field:   "percent",
			Message: "percent must be between 1 and 100",
		})
	}

	if err := s.repo.ApplyDiscount(ctx, productID, percent); err != nil {
		return err
	}

	s.logger.Info("discount applied", zap.Int("productId", productID), zap.Int("percent", percent))
	return nil
}
