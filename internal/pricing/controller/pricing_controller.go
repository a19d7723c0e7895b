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

	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/server/respond"
)

type DiscountUseCase interface {
	ListNearExpiry(ctx context.Context, thresholdDays int, today time.Time) ([]dto.ExpiryRow, error)
	ListExpired(ctx context.Context, today time.Time) ([]dto.ExpiryRow, error)
	ListEligibleForDiscount(ctx context.Context, today time.Time) ([]dto.DiscountCandidate, error)
	ApplyDiscount(ctx context.Context, productID, percent int) error
}

type PricingController struct {
	useCase        DiscountUseCase
	nearExpiryDays int
	logger         *zap.Logger
}

func NewPricingController(useCase DiscountUseCase, nearExpiryDays int, logger *zap.Logger) *PricingController {
	return &PricingController{
		useCase:        useCase,
		nearExpiryDays: nearExpiryDays,
		logger:         logger,
	}
}

// parseDay reads an optional ?date=YYYY-MM-DD, defaulting to today. The
// scheduled discount sweep passes an explicit date so its runs are
// reproducible.
func parseDay(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func (c *PricingController) HandleListNearExpiry(w http.ResponseWriter, r *http.Request) {
	today, err := parseDay(r)
	if err != nil {
		respond.ValidationError(w, c.logger, "invalid date", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
		return
	}

	threshold := c.nearExpiryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.ValidationError(w, c.logger, "invalid days", apperrors.ValidationDetail{
				Field:   "days",
				Message: "days must be a non-negative integer",
			})
			return
		}
		threshold = parsed
	}

	rows, err := c.useCase.ListNearExpiry(r.Context(), threshold, today)
	if err != nil {
		c.logger.Error("listing near-expiry lots failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if rows == nil {
		rows = []dto.ExpiryRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, rows)
}

func (c *PricingController) HandleListExpired(w http.ResponseWriter, r *http.Request) {
	today, err := parseDay(r)
	if err != nil {
		respond.ValidationError(w, c.logger, "invalid date", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
		return
	}

	rows, err := c.useCase.ListExpired(r.Context(), today)
	if err != nil {
		c.logger.Error("listing expired lots failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if rows == nil {
		rows = []dto.ExpiryRow{}
	}
	respond.JSON(w, c.logger, http.StatusOK, rows)
}

func (c *PricingController) HandleListEligible(w http.ResponseWriter, r *http.Request) {
	today, err := parseDay(r)
	if err != nil {
		respond.ValidationError(w, c.logger, "invalid date", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date must be formatted as YYYY-MM-DD",
		})
		return
	}

	candidates, err := c.useCase.ListEligibleForDiscount(r.Context(), today)
	if err != nil {
		c.logger.Error("listing discount candidates failed", zap.Error(err))
		respond.InternalError(w, c.logger)
		return
	}

	if candidates == nil {
		candidates = []dto.DiscountCandidate{}
	}
	respond.JSON(w, c.logger, http.StatusOK, candidates)
}

type applyDiscountRequest struct {
	Percent int `json:"percent"`
}

func (c *PricingController) HandleApplyDiscount(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || productID <= 0 {
		respond.ValidationError(w, c.logger, "invalid productId", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	var req applyDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.ValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.useCase.ApplyDiscount(r.Context(), productID, req.Percent); err != nil {
		respond.EngineError(w, logger, err)
		return
	}

	respond.JSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"productId": productID,
		"percent":   req.Percent,
	})
}
