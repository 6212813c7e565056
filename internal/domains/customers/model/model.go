package model

import (
	"encoding/json"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// CUSTOMER ENTITY
// =====================================================

// Customer is one storefront account on the commerce API.
type Customer struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.AltID
	}
	return nil
}

// DisplayName prefers the full name field and falls back to first/last.
func (c *Customer) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// =====================================================
// REQUEST DTOs
// =====================================================

// ListCustomersQuery filters and pages the account list.
type ListCustomersQuery struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
}

// Validate validates the list query
func (q ListCustomersQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Limit, validation.Min(0), validation.Max(500)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CustomerPage is one page of accounts plus the total count upstream holds.
type CustomerPage struct {
	Users      []Customer `json:"users"`
	TotalUsers int        `json:"totalUsers"`
}
