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
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id int) (*domain.Lot, error)
	Decrement(ctx context.Context, tx *sql.Tx, id, amount int) error
}

type DisplayRepository interface {
	FindSlotForUpdate(ctx context.Context, tx *sql.Tx, lotID, counterID int, position string) (*domain.Display, error)
	Create(ctx context.Context, tx *sql.Tx, d domain.Display) (int, error)
	Increment(ctx context.Context, tx *sql.Tx, id, amount int) error
}

type CounterRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Counter, error)
}

// TransferService moves stock from a warehouse lot onto a counter display.
// The whole move is one transaction: a capacity failure on the display side
// rolls back the lot decrement, so no stock is ever lost in between.
type TransferService struct {
	db            TransactionManager
	lots          LotRepository
	displays      DisplayRepository
	counters      CounterRepository
	logger        *zap.Logger
	txTimeout     time.Duration
	displayMaxQty int
}

func NewTransferService(
	db TransactionManager,
	lots LotRepository,
	displays DisplayRepository,
	counters CounterRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
	displayMaxQty int,
) *TransferService {
	return &TransferService{
		db:            db,
		lots:          lots,
		displays:      displays,
		counters:      counters,
		logger:        logger,
		txTimeout:     txTimeout,
		displayMaxQty: displayMaxQty,
	}
}

func (s *TransferService) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be positive", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be greater than zero",
		})
	}

	// Counter existence is checked outside the transaction; counters are
	// static lookup data.
	counter, err := s.counters.FindByID(ctx, req.CounterID)
	if err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback()

	lot, err := s.lots.FindByIDForUpdate(txCtx, tx, req.LotID)
	if err != nil {
		return nil, err
	}

	if !lot.CanDecrement(req.Quantity) {
		s.logger.Warn("transfer rejected: insufficient lot stock",
			zap.Int("lotId", req.LotID),
			zap.Int("requested", req.Quantity),
			zap.Int("available", lot.Quantity))
		return nil, apperrors.NewInsufficientStockError(req.LotID, req.Quantity, lot.Quantity)
	}

	if err := s.lots.Decrement(txCtx, tx, req.LotID, req.Quantity); err != nil {
		return nil, err
	}

	displayID, displayQty, created, err := s.placeOnDisplay(txCtx, tx, lot, req)
	if err != nil {
		// The deferred rollback undoes the lot decrement.
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transfer", zap.Int("lotId", req.LotID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("transfer committed",
		zap.Int("lotId", req.LotID),
		zap.Int("counterId", counter.ID),
		zap.String("position", req.Position),
		zap.Int("quantity", req.Quantity),
		zap.Int("displayId", displayID),
		zap.Bool("displayCreated", created))

	return &dto.TransferResult{
		LotID:           req.LotID,
		DisplayID:       displayID,
		DisplayCreated:  created,
		Position:        req.Position,
		LotRemaining:    lot.Quantity - req.Quantity,
		DisplayQuantity: displayQty,
	}, nil
}

// placeOnDisplay tops up the existing display for (lot, counter, position)
// or creates a new one with the configured capacity. Either way the full
// requested quantity must fit.
func (s *TransferService) placeOnDisplay(ctx context.Context, tx *sql.Tx, lot *domain.Lot, req dto.TransferRequest) (displayID, displayQty int, created bool, err error) {
	display, err := s.displays.FindSlotForUpdate(ctx, tx, req.LotID, req.CounterID, req.Position)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); !ok {
			return 0, 0, false, err
		}

		if req.Quantity > s.displayMaxQty {
			return 0, 0, false, apperrors.NewCapacityExceededError(0, req.Quantity, s.displayMaxQty)
		}

		id, err := s.displays.Create(ctx, tx, domain.Display{
			LotID:           req.LotID,
			CounterID:       req.CounterID,
			Position:        req.Position,
			MaxQuantity:     s.displayMaxQty,
			CurrentQuantity: req.Quantity,
		})
		if err != nil {
			return 0, 0, false, err
		}
		return id, req.Quantity, true, nil
	}

	if !display.CanAbsorb(req.Quantity) {
		s.logger.Warn("transfer rejected: display capacity exceeded",
			zap.Int("displayId", display.ID),
			zap.Int("requested", req.Quantity),
			zap.Int("free", display.FreeCapacity()))
		return 0, 0, false, apperrors.NewCapacityExceededError(display.ID, req.Quantity, display.FreeCapacity())
	}

	if err := s.displays.Increment(ctx, tx, display.ID, req.Quantity); err != nil {
		return 0, 0, false, err
	}

	return display.ID, display.CurrentQuantity + req.Quantity, false, nil
}
