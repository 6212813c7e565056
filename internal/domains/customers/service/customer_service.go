package service

import (
	"context"

	"nirvana-admin-backend/internal/domains/customers/model"
	"nirvana-admin-backend/internal/domains/customers/repository"
)

// =====================================================
// CUSTOMER SERVICE
// =====================================================

// CustomerService exposes read access to storefront accounts.
type CustomerService interface {
	List(ctx context.Context, query model.ListCustomersQuery) (*model.CustomerPage, error)
}

type customerService struct {
	repo repository.Repository
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.Repository) CustomerService {
	return &customerService{repo: repo}
}

const defaultPageLimit = 50

func (s *customerService) List(ctx context.Context, query model.ListCustomersQuery) (*model.CustomerPage, error) {
	if query.Limit <= 0 {
		query.Limit = defaultPageLimit
	}
	return s.repo.List(ctx, query)
}
