package repository

import (
	"context"

	"nirvana-admin-backend/internal/domains/products/model"
)

// Repository reads and mutates the product catalog on the commerce API.
type Repository interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req model.SaveProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req model.SaveProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
