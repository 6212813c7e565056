package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// RETURN REQUEST STATUS
// =====================================================

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRefunded = "refunded"
)

// IsTerminalStatus reports whether no further transition is permitted.
// "approved" never originates here (approve confirms straight to refunded)
// but upstream may still serve it and it is just as final.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusApproved, StatusRejected, StatusRefunded:
		return true
	}
	return false
}

// =====================================================
// FLEXIBLE UPSTREAM REFERENCES
// =====================================================

// OrderRef resolves the originating order reference. Upstream sends either
// a bare identifier or an embedded order summary; both resolve to the same
// identifier value.
type OrderRef struct {
	ID string
}

func (r *OrderRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var embedded struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		// Unknown shape degrades to an empty reference instead of failing
		// the whole request.
		r.ID = ""
		return nil
	}
	if embedded.MongoID != "" {
		r.ID = embedded.MongoID
	} else {
		r.ID = embedded.ID
	}
	return nil
}

func (r OrderRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// CustomerRef resolves the requesting user. A bare identifier keeps display
// fields at the "unknown" sentinel rather than failing.
type CustomerRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

const unknownCustomer = "unknown"

func (r *CustomerRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = CustomerRef{ID: id}
		return nil
	}

	var embedded struct {
		MongoID   string `json:"_id"`
		ID        string `json:"id"`
		Name      string `json:"name"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := json.Unmarshal(data, &embedded); err != nil {
		*r = CustomerRef{}
		return nil
	}

	r.ID = embedded.MongoID
	if r.ID == "" {
		r.ID = embedded.ID
	}
	r.Name = embedded.Name
	r.FirstName = embedded.FirstName
	r.LastName = embedded.LastName
	r.Email = embedded.Email
	return nil
}

// DisplayName degrades to "unknown" when only an identifier arrived.
func (r CustomerRef) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	full := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if full != "" {
		return full
	}
	return unknownCustomer
}

// DisplayEmail degrades to "unknown" when only an identifier arrived.
func (r CustomerRef) DisplayEmail() string {
	if r.Email != "" {
		return r.Email
	}
	return unknownCustomer
}

// =====================================================
// RETURN REQUEST ENTITY
// =====================================================

// ReturnLineItem is one product line within a return.
type ReturnLineItem struct {
	Title            string          `json:"title"`
	Price            decimal.Decimal `json:"price"`
	SelectedSize     string          `json:"selectedSize,omitempty"`
	SelectedColor    string          `json:"selectedColor,omitempty"`
	SelectedQuantity int             `json:"selectedQuantity"`
	ReturnQuantity   int             `json:"returnQuantity"`
}

// ReturnRequest is one customer-initiated return. Created externally by the
// storefront; this subsystem only reads and transitions it.
type ReturnRequest struct {
	ID                   string           `json:"_id"`
	OrderID              OrderRef         `json:"orderId"`
	Customer             CustomerRef      `json:"userId"`
	Items                []ReturnLineItem `json:"items"`
	Reason               string           `json:"reason"`
	Description          string           `json:"description,omitempty"`
	Status               string           `json:"status"`
	RefundPercentage     int              `json:"refundPercentage"`
	RefundAmount         decimal.Decimal  `json:"refundAmount"`
	RefundReason         string           `json:"refundReason,omitempty"`
	ReturnTrackingNumber string           `json:"returnTrackingNumber,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}

func (r *ReturnRequest) UnmarshalJSON(data []byte) error {
	type alias ReturnRequest
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = aux.AltID
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	return nil
}

// IsPending reports whether the request still awaits a decision.
func (r *ReturnRequest) IsPending() bool {
	return r.Status == StatusPending
}

// CanBeProcessed reports whether approve/reject is still reachable.
func (r *ReturnRequest) CanBeProcessed() bool {
	return r.Status == StatusPending
}

// ReviewPercentage is the slider default when a staff member opens the
// request: 100 for an untouched pending request, the stored value otherwise.
func (r *ReturnRequest) ReviewPercentage() int {
	if r.IsPending() && r.RefundPercentage == 0 {
		return 100
	}
	return r.RefundPercentage
}
