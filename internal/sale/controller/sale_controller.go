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

type DeductionUseCase interface {
	RecordSaleDeduction(ctx context.Context, productID, quantitySold int) (*dto.DeductionResult, error)
}

type SaleController struct {
	useCase DeductionUseCase
	logger  *zap.Logger
}

func NewSaleController(useCase DeductionUseCase, logger *zap.Logger) *SaleController {
	return &SaleController{
		useCase: useCase,
		logger:  logger,
	}
}

type recordDeductionRequest struct {
	ProductID    int `json:"productId"`
	QuantitySold int `json:"quantitySold"`
}

func (c *SaleController) HandleRecordDeduction(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req recordDeductionRequest
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
	if req.QuantitySold <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantitySold",
			Message: "quantitySold must be a positive integer",
		})
	}
	if len(details) > 0 {
		respond.ValidationError(w, c.logger, "validation failed", details...)
		return
	}

	result, err := c.useCase.RecordSaleDeduction(r.Context(), req.ProductID, req.QuantitySold)
	if err != nil {
		respond.EngineError(w, logger, err)
		return
	}

	respond.JSON(w, c.logger, http.StatusOK, result)
}
