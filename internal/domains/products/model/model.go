package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// PRODUCT ENTITY
// =====================================================

// ProductVariant is one stocked size/color combination.
type ProductVariant struct {
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Product is one catalog entry on the commerce API.
type Product struct {
	ID          string           `json:"_id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Categories  []string         `json:"categories,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	IsOnSale    bool             `json:"isOnSale"`
	IsNew       bool             `json:"isNew"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty"`
	Images      []string         `json:"images"`
	Variants    []ProductVariant `json:"variants"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = aux.AltID
	}
	return nil
}

// TotalStock sums the quantity across all variants.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Quantity
	}
	return total
}
