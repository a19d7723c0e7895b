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

type LotRepository interface {
	Create(ctx context.Context, productID, quantity int, importDate time.Time) (int, error)
	FindByID(ctx context.Context, id int) (*domain.Lot, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Lot, error)
	Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error
	TotalForProduct(ctx context.Context, productID int) (int, error)
	ListWithStock(ctx context.Context) ([]dto.LotStockRow, error)
}

type DisplayRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Display, error)
	Increment(ctx context.Context, tx *sql.Tx, id, amount int) error
	Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error
	ListForProduct(ctx context.Context, productID int) ([]domain.Display, error)
	TotalForProduct(ctx context.Context, productID int) (int, error)
}

type CounterRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Counter, error)
	ListAll(ctx context.Context) ([]domain.Counter, error)
}

type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

// LedgerService owns the two physical stock tiers and the primitives that
// keep their invariants: lot quantities never go negative, display
// quantities stay within capacity.
type LedgerService struct {
	db        TransactionManager
	lots      LotRepository
	displays  DisplayRepository
	counters  CounterRepository
	products  ProductFinder
	logger    *zap.Logger
	txTimeout time.Duration
}

func NewLedgerService(
	db TransactionManager,
	lots LotRepository,
	displays DisplayRepository,
	counters CounterRepository,
	products ProductFinder,
	logger *zap.Logger,
	txTimeout time.Duration,
) *LedgerService {
	return &LedgerService{
		db:        db,
		lots:      lots,
		displays:  displays,
		counters:  counters,
		products:  products,
		logger:    logger,
		txTimeout: txTimeout,
	}
}

// ReceiveLot records a goods receipt as a fresh lot. Receipts for the same
// product are never merged.
func (s *LedgerService) ReceiveLot(ctx context.Context, productID, quantity int, importDate time.Time) (*dto.ReceiveLotResult, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	lotID, err := s.lots.Create(ctx, productID, quantity, importDate)
	if err != nil {
		s.logger.Error("failed to create lot", zap.Int("productId", productID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("lot received",
		zap.Int("lotId", lotID),
		zap.Int("productId", productID),
		zap.Int("quantity", quantity),
		zap.Time("importDate", importDate))

	return &dto.ReceiveLotResult{
		LotID:      lotID,
		ProductID:  productID,
		Quantity:   quantity,
		ImportDate: importDate,
	}, nil
}

// DecrementLot removes quantity from a single lot under a row lock,
// failing with InsufficientStock when the lot does not hold enough.
func (s *LedgerService) DecrementLot(ctx context.Context, lotID, amount int) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lot, err := s.lots.FindByIDForUpdate(txCtx, tx, lotID)
	if err != nil {
		return err
	}

	if !lot.CanDecrement(amount) {
		return apperrors.NewInsufficientStockError(lotID, amount, lot.Quantity)
	}

	if err := s.lots.Decrement(txCtx, tx, lotID, amount); err != nil {
		return err
	}

	return tx.Commit()
}

// IncrementDisplay tops up a display under a row lock, failing with
// CapacityExceeded when the amount does not fit.
func (s *LedgerService) IncrementDisplay(ctx context.Context, displayID, amount int) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	display, err := s.displays.FindByIDForUpdate(txCtx, tx, displayID)
	if err != nil {
		return err
	}

	if !display.CanAbsorb(amount) {
		return apperrors.NewCapacityExceededError(displayID, amount, display.FreeCapacity())
	}

	if err := s.displays.Increment(txCtx, tx, displayID, amount); err != nil {
		return err
	}

	return tx.Commit()
}

// DecrementDisplay removes up to amount from a display, clamping at zero,
// and returns the quantity actually removed. It never fails on an
// over-large request; that leniency is what the sale allocator builds on.
func (s *LedgerService) DecrementDisplay(ctx context.Context, displayID, amount int) (int, error) {
	if amount <= 0 {
		return 0, apperrors.NewValidationError("amount must be positive", apperrors.ValidationDetail{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	display, err := s.displays.FindByIDForUpdate(txCtx, tx, displayID)
	if err != nil {
		return 0, err
	}

	removed := amount
	if removed > display.CurrentQuantity {
		removed = display.CurrentQuantity
	}

	if removed > 0 {
		if err := s.displays.Decrement(txCtx, tx, displayID, removed); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return removed, nil
}

// ListDisplaysForProduct returns the product's nonzero displays, fullest
// first.
func (s *LedgerService) ListDisplaysForProduct(ctx context.Context, productID int) ([]domain.Display, error) {
	return s.displays.ListForProduct(ctx, productID)
}

func (s *LedgerService) StockTotals(ctx context.Context, productID int) (*dto.ProductStockTotals, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	warehouse, err := s.lots.TotalForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	counter, err := s.displays.TotalForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.ProductStockTotals{
		ProductID:    productID,
		WarehouseQty: warehouse,
		CounterQty:   counter,
	}, nil
}

func (s *LedgerService) ListLots(ctx context.Context) ([]dto.LotStockRow, error) {
	return s.lots.ListWithStock(ctx)
}

func (s *LedgerService) ListCounters(ctx context.Context) ([]domain.Counter, error) {
	return s.counters.ListAll(ctx)
}
