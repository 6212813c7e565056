package repository

import (
	"context"

	"nirvana-admin-backend/internal/domains/analytics/model"
)

// Repository reads aggregate counts from the commerce API.
type Repository interface {
	Summary(ctx context.Context) (*model.Summary, error)
}
