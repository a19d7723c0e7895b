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

type TransferUseCase interface {
	Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error)
}

type TransferController struct {
	useCase TransferUseCase
	logger  *zap.Logger
}

func NewTransferController(useCase TransferUseCase, logger *zap.Logger) *TransferController {
	return &TransferController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *TransferController) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		respond.ValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateTransferRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		respond.ValidationError(w, c.logger, ve.Message, ve.Details...)
		return
	}

	result, err := c.useCase.Transfer(r.Context(), req)
	if err != nil {
		respond.EngineError(w, logger, err)
		return
	}

	respond.JSON(w, c.logger, http.StatusOK, result)
}

func validateTransferRequest(req dto.TransferRequest) error {
	var details []apperrors.ValidationDetail

	if req.LotID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lotId",
			Message: "lotId must be a positive integer",
		})
	}

	if req.CounterID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "counterId",
			Message: "counterId must be a positive integer",
		})
	}

	if req.Quantity <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if req.Position == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "position",
			Message: "position is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
