package service

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"nirvana-admin-backend/internal/domains/returns/model"
)

// RefundCalculator derives the refund amount for a return decision.
// Pure and synchronous; both the live preview and the pre-submission
// amount go through here so the two can never drift.
type RefundCalculator struct{}

// NewRefundCalculator creates a new instance
func NewRefundCalculator() *RefundCalculator {
	return &RefundCalculator{}
}

var oneHundred = decimal.NewFromInt(100)

// Calculate computes the refund for the returned items at the given
// percentage.
//
// Business Logic:
//  1. total = Σ (item.price × item.returnQuantity)
//  2. refund = total × (percentage / 100)
//  3. Round to 2 decimal places, half up
//
// A percentage outside [0, 100] is rejected before any total is computed.
// Items carrying a negative price or a non-positive return quantity are
// data-integrity faults on the upstream side: they contribute 0 to the
// total and are logged so the preview stays usable.
func (c *RefundCalculator) Calculate(items []model.ReturnLineItem, percentage int) (decimal.Decimal, error) {
	if percentage < 0 || percentage > 100 {
		return decimal.Zero, model.NewInvalidPercentageError(percentage)
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Price.IsNegative() || item.ReturnQuantity <= 0 {
			log.Warn().
				Str("title", item.Title).
				Str("price", item.Price.String()).
				Int("return_quantity", item.ReturnQuantity).
				Msg("return line item skipped in refund total")
			continue
		}
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.ReturnQuantity))))
	}

	refund := total.Mul(decimal.NewFromInt(int64(percentage))).Div(oneHundred)

	// decimal.Round is half away from zero, which is half up for the
	// non-negative amounts that reach this point.
	return refund.Round(2), nil
}
