package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// ORDER STATUS
// =====================================================

const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// ValidStatuses in the order fulfilment moves through them.
var ValidStatuses = []string{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// IsValidStatus reports whether the value is a known fulfilment status.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// =====================================================
// ORDER ENTITY
// =====================================================

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// OrderLineItem is one purchased product line.
type OrderLineItem struct {
	Name             string          `json:"name"`
	Image            string          `json:"image,omitempty"`
	Price            decimal.Decimal `json:"price"`
	SelectedSize     string          `json:"selectedSize,omitempty"`
	SelectedColor    string          `json:"selectedColor,omitempty"`
	SelectedQuantity int             `json:"selectedQuantity"`
}

// Order is one storefront purchase. Created externally; this subsystem
// reads it and advances its fulfilment status.
type Order struct {
	ID           string          `json:"_id"`
	UserID       string          `json:"userId"`
	ShippingInfo ShippingInfo    `json:"shippingInfo"`
	Items        []OrderLineItem `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Tax          decimal.Decimal `json:"tax"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(o)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = aux.AltID
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// CustomerName joins the shipping first and last name.
func (o *Order) CustomerName() string {
	name := o.ShippingInfo.FirstName
	if o.ShippingInfo.LastName != "" {
		if name != "" {
			name += " "
		}
		name += o.ShippingInfo.LastName
	}
	return name
}
