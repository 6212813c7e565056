package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// SaveProductRequest creates or fully replaces a catalog entry.
type SaveProductRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Categories  []string         `json:"categories,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	IsOnSale    bool             `json:"isOnSale"`
	IsNew       bool             `json:"isNew"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	Images      []string         `json:"images"`
	Variants    []ProductVariant `json:"variants"`
}

// Validate validates the product payload
func (r SaveProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Description, validation.Length(0, 5000)),
		validation.Field(&r.Images, validation.Required),
		validation.Field(&r.Variants, validation.Required),
		validation.Field(&r.Price, validation.By(nonNegativeDecimal)),
	)
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_decimal", "must be a decimal value")
	}
	if d.IsNegative() {
		return validation.NewError("validation_negative", "must not be negative")
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// DeleteProductResult is the upstream confirmation of a delete.
type DeleteProductResult struct {
	Message string `json:"message"`
}
