package model

import (
	"errors"
	"fmt"
)

// =====================================================
// PREDEFINED ERRORS
// =====================================================

var (
	ErrRequestNotFound   = errors.New("return request not found")
	ErrInvalidPercentage = errors.New("refund percentage must be between 0 and 100")
	ErrAlreadyProcessing = errors.New("a decision for this return request is already in flight")
	ErrInvalidTransition = errors.New("return request is already in a terminal state")
	ErrMalformedResponse = errors.New("upstream response did not match any known shape")
	ErrInvalidAction     = errors.New("action must be approve or reject")
)

// Error codes surfaced in the API envelope.
const (
	ErrCodeRequestNotFound   = "RETURN_NOT_FOUND"
	ErrCodeInvalidPercentage = "RETURN_INVALID_PERCENTAGE"
	ErrCodeAlreadyProcessing = "RETURN_ALREADY_PROCESSING"
	ErrCodeInvalidTransition = "RETURN_INVALID_TRANSITION"
	ErrCodeMalformedResponse = "RETURN_MALFORMED_RESPONSE"
	ErrCodeInvalidAction     = "RETURN_INVALID_ACTION"
	ErrCodeUpstream          = "RETURN_UPSTREAM_ERROR"
)

// =====================================================
// CUSTOM RETURN ERROR
// =====================================================

type ReturnError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReturnError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ReturnError) Unwrap() error {
	return e.Err
}

// NewReturnError creates a new return error
func NewReturnError(code, message string, err error) *ReturnError {
	return &ReturnError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =====================================================
// ERROR CONSTRUCTORS
// =====================================================

func NewRequestNotFoundError(id string) *ReturnError {
	return NewReturnError(
		ErrCodeRequestNotFound,
		fmt.Sprintf("Return request not found: %s", id),
		ErrRequestNotFound,
	)
}

func NewInvalidPercentageError(percentage int) *ReturnError {
	return NewReturnError(
		ErrCodeInvalidPercentage,
		fmt.Sprintf("Refund percentage %d is outside [0, 100]", percentage),
		ErrInvalidPercentage,
	)
}

func NewAlreadyProcessingError(id string) *ReturnError {
	return NewReturnError(
		ErrCodeAlreadyProcessing,
		fmt.Sprintf("Return request %s already has a decision in flight", id),
		ErrAlreadyProcessing,
	)
}

func NewInvalidTransitionError(id, status string) *ReturnError {
	return NewReturnError(
		ErrCodeInvalidTransition,
		fmt.Sprintf("Return request %s is '%s' and cannot be processed again", id, status),
		ErrInvalidTransition,
	)
}

func NewMalformedResponseError(err error) *ReturnError {
	return NewReturnError(
		ErrCodeMalformedResponse,
		"Upstream response did not match any known shape",
		errors.Join(ErrMalformedResponse, err),
	)
}
