package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// InsufficientStockError is returned when a warehouse lot does not hold
// enough quantity for a requested decrement. Retrying without correcting
// the request cannot succeed.
type InsufficientStockError struct {
	LotID     int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock in lot %d: requested %d, available %d", e.LotID, e.Requested, e.Available)
}

func NewInsufficientStockError(lotID, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		LotID:     lotID,
		Requested: requested,
		Available: available,
	}
}

func IsInsufficientStockError(err error) (*InsufficientStockError, bool) {
	if ise, ok := err.(*InsufficientStockError); ok {
		return ise, true
	}
	return nil, false
}

// CapacityExceededError is returned when a display cannot absorb the full
// requested quantity within its maximum capacity.
type CapacityExceededError struct {
	DisplayID int
	Requested int
	Free      int
}

func (e *CapacityExceededError) Error() string {
	if e.DisplayID == 0 {
		return fmt.Sprintf("new display capacity exceeded: requested %d, free %d", e.Requested, e.Free)
	}
	return fmt.Sprintf("display %d capacity exceeded: requested %d, free %d", e.DisplayID, e.Requested, e.Free)
}

func NewCapacityExceededError(displayID, requested, free int) *CapacityExceededError {
	return &CapacityExceededError{
		DisplayID: displayID,
		Requested: requested,
		Free:      free,
	}
}

func IsCapacityExceededError(err error) (*CapacityExceededError, bool) {
	if cee, ok := err.(*CapacityExceededError); ok {
		return cee, true
	}
	return nil, false
}

// NothingToDeductError is soft: the sale itself already happened and must
// not be blocked; only the counter-mirroring step found no displays with
// stock for the product.
type NothingToDeductError struct {
	ProductID int
}

func (e *NothingToDeductError) Error() string {
	return fmt.Sprintf("no displays with stock for product %d", e.ProductID)
}

func NewNothingToDeductError(productID int) *NothingToDeductError {
	return &NothingToDeductError{ProductID: productID}
}

func IsNothingToDeductError(err error) (*NothingToDeductError, bool) {
	if nde, ok := err.(*NothingToDeductError); ok {
		return nde, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
