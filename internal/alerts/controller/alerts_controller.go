package controller

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/server/respond"
)

type AlertsReader interface {
	LowStockOnCounter(ctx context.Context, threshold int) ([]dto.LowStockRow, error)
	NeedsRefill(ctx context.Context, threshold int) ([]dto.RefillRow, error)
	WarehouseExhausted(ctx context.Context) ([]dto.ExhaustedRow, error)
}

type AlertsController struct {
	reader            AlertsReader
	lowStockThreshold int
	refillThreshold   int
	logger            *zap.Logger
}

func NewAlertsController(reader AlertsReader, lowStockThreshold, refillThreshold int, logger *zap.Logger) *AlertsController {
	return &AlertsController{
		reader:            reader,
		lowStockThreshold: lowStockThreshold,
		refillThreshold:   refillThreshold,
		logger:            logger,
	}
}

// thresholdParam reads an optional ?threshold= override; ok is false when
// the value is present but unusable.
func (c *AlertsController) thresholdParam(r *http.Request, fallback int) (int, bool) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return fallback, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func (c *AlertsController) HandleLowStock(w http.ResponseWriter, r *http.Request) {
	threshold, ok := c.thresholdParam(r, c.lowStockThreshold)
	if !ok {
		respond.ValidationError(w, c.logger, "invalid threshold", apperrors.ValidationDetail{
			Field:   "threshold",
			Message: "threshold must be a positive integer",
		})
		return
	}

	rows, err := c.reader.LowStockOnCounter(r.Context(), threshold)
	if err != nil {
		c.logger.Error("low stock projection failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if rows == nil {
		rows = []dto.LowStockRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, rows)
}

func (c *AlertsController) HandleNeedsRefill(w http.ResponseWriter, r *http.Request) {
	threshold, ok := c.thresholdParam(r, c.refillThreshold)
	if !ok {
		respond.ValidationError(w, c.logger, "invalid threshold", apperrors.ValidationDetail{
			Field:   "threshold",
			Message: "threshold must be a positive integer",
		})
		return
	}

	rows, err := c.reader.NeedsRefill(r.Context(), threshold)
	if err != nil {
		c.logger.Error("refill projection failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if rows == nil {
		rows = []dto.RefillRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, rows)
}

func (c *AlertsController) HandleWarehouseExhausted(w http.ResponseWriter, r *http.Request) {
	rows, err := c.reader.WarehouseExhausted(r.Context())
	if err != nil {
		c.logger.Error("exhausted projection failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if rows == nil {
		rows = []dto.ExhaustedRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, rows)
}
