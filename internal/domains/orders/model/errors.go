package model

import (
	"errors"
	"fmt"
)

// =====================================================
// ORDER ERRORS
// =====================================================

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)

// Error codes
const (
	ErrCodeOrderNotFound = "ORDER_001"
	ErrCodeInvalidStatus = "ORDER_002"
	ErrCodeUpstream      = "ORDER_003"
)

// OrderError wraps order errors with additional context
type OrderError struct {
	Code    string
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderNotFoundError creates an order not found error
func NewOrderNotFoundError(id string) *OrderError {
	return &OrderError{
		Code:    ErrCodeOrderNotFound,
		Message: fmt.Sprintf("order %s not found", id),
		Err:     ErrOrderNotFound,
	}
}

// NewInvalidStatusError creates an invalid status error
func NewInvalidStatusError(status string) *OrderError {
	return &OrderError{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("status %q is not a valid fulfilment status", status),
		Err:     ErrInvalidStatus,
	}
}
