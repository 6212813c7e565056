package repository

import (
	"context"

	"nirvana-admin-backend/internal/domains/customers/model"
)

// Repository reads customer accounts from the commerce API.
type Repository interface {
	List(ctx context.Context, query model.ListCustomersQuery) (*model.CustomerPage, error)
}
