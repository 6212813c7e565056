package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// ListOrdersQuery filters the order list.
type ListOrdersQuery struct {
	Search string `form:"search"`
}

// UpdateOrderStatusRequest advances an order's fulfilment status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the status update request
func (r UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In(StatusPending, StatusShipped, StatusDelivered, StatusCancelled),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// StatusUpdateResult is the upstream confirmation of a status change.
type StatusUpdateResult struct {
	Status string `json:"status"`
}
