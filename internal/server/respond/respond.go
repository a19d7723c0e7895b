// Package respond centralizes JSON response writing and the mapping from
// the engine's error taxonomy to HTTP statuses.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/vinhnt21/smartmart/internal/errors"
)

type errorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func ValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	JSON(w, logger, http.StatusBadRequest, errorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func InternalError(w http.ResponseWriter, logger *zap.Logger) {
	JSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}

// EngineError maps a stock engine error to its HTTP shape. Every taxonomy
// member is terminal for the operation that raised it; none are retryable
// with the same request.
func EngineError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		ValidationError(w, logger, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		JSON(w, logger, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsInsufficientStockError(err); ok {
		JSON(w, logger, http.StatusConflict, errorResponse{
			Error:   "INSUFFICIENT_STOCK",
			Message: err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsCapacityExceededError(err); ok {
		JSON(w, logger, http.StatusConflict, errorResponse{
			Error:   "CAPACITY_EXCEEDED",
			Message: err.Error(),
		})
		return
	}

	if _, ok := apperrors.IsNothingToDeductError(err); ok {
		JSON(w, logger, http.StatusUnprocessableEntity, errorResponse{
			Error:   "NOTHING_TO_DEDUCT",
			Message: err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	InternalError(w, logger)
}
