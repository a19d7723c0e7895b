package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/dto"
	apperrors "github.com/vinhnt21/smartmart/internal/errors"
	"github.com/vinhnt21/smartmart/internal/server/respond"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type CheckoutController struct {
	useCase CheckoutUseCase
	logger  *zap.Logger
}

func NewCheckoutController(useCase CheckoutUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *CheckoutController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.ValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.useCase.Checkout(r.Context(), req)
	if err != nil {
		respond.EngineError(w, logger, err)
		return
	}

	logger.Info("checkout completed",
		zap.Int("invoiceId", result.InvoiceID),
		zap.String("totalAmount", result.TotalAmount))
	respond.JSON(w, c.logger, http.StatusCreated, result)
}
