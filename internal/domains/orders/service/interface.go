package service

import (
	"context"

	"nirvana-admin-backend/internal/domains/orders/model"
)

// OrderService exposes order reads and fulfilment status changes.
type OrderService interface {
	List(ctx context.Context, query model.ListOrdersQuery) ([]model.Order, error)
	Get(ctx context.Context, id string) (*model.Order, error)

	// UpdateStatus advances the order. Local state is patched only after
	// upstream confirms; a confirmed status in the response wins over the
	// requested one.
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)
}
