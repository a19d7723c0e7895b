package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type DisplayRepository interface {
	ListForProductForUpdate(ctx context.Context, tx *sql.Tx, productID int) ([]domain.Display, error)
	Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error
}

// DeductionService mirrors a recorded sale onto the counter displays. The
// sale itself is already final when this runs, so display mismatches are
// reported, never raised as hard failures that could block a checkout.
type DeductionService struct {
	db        TransactionManager
	displays  DisplayRepository
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewDeductionService(
	db TransactionManager,
	displays DisplayRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *DeductionService {
	return &DeductionService{
		db:        db,
		displays:  displays,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// RecordSaleDeduction decrements the product's displays, fullest first,
// inside one transaction: a partial deduction is never visible while the
// remainder is still being decided. Overselling yields a shortfall, not an
// error. NothingToDeduct is returned when no display holds the product.
func (s *DeductionService) RecordSaleDeduction(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error) {
	if quantitySold <= 0 {
		return nil, apperrors.NewValidationError("quantitySold must be positive", apperrors.ValidationDetail{
			Field:   "quantitySold",
			Message: "quantitySold must be greater than zero",
		})
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	displays, err := s.displays.ListForProductForUpdate(txCtx, tx, productID)
	if err != nil {
		return nil, err
	}

	if len(displays) == 0 {
		s.logger.Warn("sale deduction found no displays", zap.Int("productId", productID), zap.Int("quantitySold", quantitySold))
		return nil, apperrors.NewNothingToDeductError(productID)
	}

	steps, shortfall := planAllocation(displays, quantitySold)

	lines := make([]dto.DeductionLine, 0, len(steps))
	for _, step := range steps {
		if err := s.displays.Decrement(txCtx, tx, step.DisplayID, step.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, dto.DeductionLine{
			DisplayID: step.DisplayID,
			CounterID: step.CounterID,
			Deducted:  step.Amount,
			Remaining: step.Remaining,
		})
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit sale deduction", zap.Int("productId", productID), zap.Error(err))
		return nil, err
	}

	if shortfall > 0 {
		s.logger.Warn("sale deduction shortfall",
			zap.Int("productId", productID),
			zap.Int("quantitySold", quantitySold),
			zap.Int("shortfall", shortfall))
	} else {
		s.logger.Info("sale deduction recorded",
			zap.Int("productId", productID),
			zap.Int("quantitySold", quantitySold),
			zap.Int("displays", len(lines)))
	}

	return &dto.DeductionResult{
		ProductID: productID,
		Requested: quantitySold,
		Deducted:  quantitySold - shortfall,
		Shortfall: shortfall,
		Lines:     lines,
	}, nil
}
