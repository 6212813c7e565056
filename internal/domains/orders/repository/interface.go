package repository

import (
	"context"

	"nirvana-admin-backend/internal/domains/orders/model"
)

// Repository reads and mutates orders on the commerce API.
type Repository interface {
	List(ctx context.Context, query model.ListOrdersQuery) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.StatusUpdateResult, error)
}
