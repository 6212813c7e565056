package repository

import (
	"context"

	"nirvana-admin-backend/internal/domains/returns/model"
)

// Repository fetches and mutates return requests against the commerce API.
// It owns no state; the canonical in-memory list lives in the service.
type Repository interface {
	// List fetches return requests matching the filter, normalized out of
	// whatever envelope upstream wrapped them in. Server ordering is kept.
	List(ctx context.Context, query model.ListReturnsQuery) ([]model.ReturnRequest, error)

	// Decide sends an approve/reject command and returns the
	// server-confirmed fields.
	Decide(ctx context.Context, id string, cmd model.DecisionCommand) (*model.DecisionResult, error)
}
