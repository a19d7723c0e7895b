package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/server/respond"
)

type LedgerUseCase interface {
	ReceiveLot(ctx context.Context, productID, quantity int, importDate time.Time) (*dto.ReceiveLotResult, error)
	ListLots(ctx context.Context) ([]dto.LotStockRow, error)
	ListCounters(ctx context.Context) ([]domain.Counter, error)
	StockTotals(ctx context.Context, productID int) (*dto.ProductStockTotals, error)
	ListDisplaysForProduct(ctx context.Context, productID int) ([]domain.Display, error)
}

type StockOverviewReader interface {
	StockOverview(ctx context.Context) ([]dto.StockOverviewRow, error)
}

type InventoryController struct {
	ledger   LedgerUseCase
	overview StockOverviewReader
	logger   *zap.Logger
}

func NewInventoryController(ledger LedgerUseCase, overview StockOverviewReader, logger *zap.Logger) *InventoryController {
	return &InventoryController{
		ledger:   ledger,
		overview: overview,
		logger:   logger,
	}
}

func (c *InventoryController) HandleReceiveLot(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ReceiveLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.ValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if req.ProductID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
	}
	if req.Quantity <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	importDate := time.Now().UTC()
	if req.ImportDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ImportDate)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "importDate",
				Message: "importDate must be formatted as YYYY-MM-DD",
			})
		} else {
			importDate = parsed
		}
	}

	if len(details) > 0 {
		respond.ValidationError(w, c.logger, "validation failed", details...)
		return
	}

	result, err := c.ledger.ReceiveLot(r.Context(), req.ProductID, req.Quantity, importDate)
	if err != nil {
		respond.EngineError(w, logger, err)
		return
	}

	logger.Info("goods receipt recorded", zap.Int("lotId", result.LotID), zap.Int("productId", result.ProductID))
	respond.JSON(w, c.logger, http.StatusCreated, result)
}

func (c *InventoryController) HandleListLots(w http.ResponseWriter, r *http.Request) {
	lots, err := c.ledger.ListLots(r.Context())
	if err != nil {
		c.logger.Error("listing lots failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if lots == nil {
		lots = []dto.LotStockRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, lots)
}

func (c *InventoryController) HandleListCounters(w http.ResponseWriter, r *http.Request) {
	counters, err := c.ledger.ListCounters(r.Context())
	if err != nil {
		c.logger.Error("listing counters failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	type counterDTO struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
	}

	out := make([]counterDTO, 0, len(counters))
	for _, counter := range counters {
		out = append(out, counterDTO{ID: counter.ID, Name: counter.Name, Category: counter.Category})
	}
	respond.JSON(w, c.logger, http.StatusOK, out)
}

func (c *InventoryController) HandleStockTotals(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		respond.ValidationError(w, c.logger, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	totals, err := c.ledger.StockTotals(r.Context(), productID)
	if err != nil {
		respond.EngineError(w, c.logger, err)
		return
	}

	respond.JSON(w, c.logger, http.StatusOK, totals)
}

func (c *InventoryController) HandleListDisplays(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		respond.ValidationError(w, c.logger, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	displays, err := c.ledger.ListDisplaysForProduct(r.Context(), productID)
	if err != nil {
		respond.EngineError(w, c.logger, err)
		return
	}

	type displayDTO struct {
		ID              int    `json:"id"`
		LotID           int    `json:"lotId"`
		CounterID       int    `json:"counterId"`
		Position        string `json:"position"`
		MaxQuantity     int    `json:"maxQuantity"`
		CurrentQuantity int    `json:"currentQuantity"`
	}

	out := make([]displayDTO, 0, len(displays))
	for _, d := range displays {
		out = append(out, displayDTO{
			ID:              d.ID,
			LotID:           d.LotID,
			CounterID:       d.CounterID,
			Position:        d.Position,
			MaxQuantity:     d.MaxQuantity,
			CurrentQuantity: d.CurrentQuantity,
		})
	}
	respond.JSON(w, c.logger, http.StatusOK, out)
}

func (c *InventoryController) HandleStockOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := c.overview.StockOverview(r.Context())
	if err != nil {
		c.logger.Error("stock overview failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if overview == nil {
		overview = []dto.StockOverviewRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, overview)
}
