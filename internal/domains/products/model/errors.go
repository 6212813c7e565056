package model

import (
	"errors"
	"fmt"
)

// =====================================================
// PRODUCT ERRORS
// =====================================================

var (
	ErrProductNotFound = errors.New("product not found")
)

// Error codes
const (
	ErrCodeProductNotFound = "PRODUCT_001"
	ErrCodeUpstream        = "PRODUCT_002"
)

// ProductError wraps product errors with additional context
type ProductError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProductError) Error() string {
	return e.Message
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductNotFoundError creates a product not found error
func NewProductNotFoundError(id string) *ProductError {
	return &ProductError{
		Code:    ErrCodeProductNotFound,
		Message: fmt.Sprintf("product %s not found", id),
		Err:     ErrProductNotFound,
	}
}
