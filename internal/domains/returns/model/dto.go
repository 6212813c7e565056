package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// LIST RETURNS REQUEST
// =====================================================

type ListReturnsQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// Validate normalizes and validates the list filter.
// An empty status means "all".
func (q *ListReturnsQuery) Validate() error {
	if q.Status == "" {
		q.Status = "all"
	}
	return validation.ValidateStruct(q,
		validation.Field(&q.Status, validation.In(
			"all",
			StatusPending,
			StatusApproved,
			StatusRejected,
			StatusRefunded,
		)),
	)
}

// =====================================================
// DECIDE RETURN REQUEST
// =====================================================

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type DecideReturnRequest struct {
	Action           string `json:"action"`
	RefundPercentage *int   `json:"refundPercentage,omitempty"`
	RefundReason     string `json:"refundReason,omitempty"`
}

// Validate validates DecideReturnRequest. The percentage range is enforced
// again by the refund calculator before any network call; validating here
// keeps garbage out of the workflow early.
func (req DecideReturnRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Action, validation.Required, validation.In(ActionApprove, ActionReject)),
		validation.Field(&req.RefundPercentage, validation.Min(0), validation.Max(100)),
		validation.Field(&req.RefundReason, validation.Length(0, 2000)),
	)
}

// Percentage returns the requested refund percentage, defaulting to the
// full-refund slider position when the field was omitted on approve.
func (req DecideReturnRequest) Percentage() int {
	if req.RefundPercentage == nil {
		return 100
	}
	return *req.RefundPercentage
}

// =====================================================
// DECISION COMMAND / RESULT
// =====================================================

// DecisionCommand is the mutation sent upstream.
type DecisionCommand struct {
	Action           string `json:"action"`
	RefundPercentage int    `json:"refundPercentage"`
	RefundReason     string `json:"refundReason,omitempty"`
}

// DecisionResult carries the server-confirmed fields of a decision.
// Absent fields stay nil; the workflow falls back to its local preview
// only for values the server omitted.
type DecisionResult struct {
	Status           string           `json:"status"`
	RefundPercentage *int             `json:"refundPercentage"`
	RefundAmount     *decimal.Decimal `json:"refundAmount"`
	RefundReason     *string          `json:"refundReason"`
}

// =====================================================
// RETURN DETAIL RESPONSE
// =====================================================

// ReturnDetailResponse decorates a raw request with display fallbacks and
// the live review defaults the processing panel opens with.
type ReturnDetailResponse struct {
	ReturnRequest
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	ReviewPercentage int             `json:"reviewPercentage"`
	ReviewAmount     decimal.Decimal `json:"reviewAmount"`
}
