package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/orders/model"
	"nirvana-admin-backend/internal/domains/orders/repository"
)

// =====================================================
// ORDER SERVICE IMPLEMENTATION
// =====================================================

type orderService struct {
	repo repository.Repository

	mu     sync.Mutex
	orders []model.Order // cache of server state, server order
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.Repository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) List(ctx context.Context, query model.ListOrdersQuery) ([]model.Order, error) {
	orders, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	if order, ok := s.cached(id); ok {
		return &order, nil
	}

	// Cold cache: refresh once before giving up.
	if _, err := s.List(ctx, model.ListOrdersQuery{}); err != nil {
		return nil, err
	}
	if order, ok := s.cached(id); ok {
		return &order, nil
	}
	return nil, model.NewOrderNotFoundError(id)
}

func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	if !model.IsValidStatus(status) {
		return nil, model.NewInvalidStatusError(status)
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		// Local state untouched, retry is safe.
		return nil, err
	}

	confirmed := status
	if result.Status != "" {
		confirmed = result.Status
	}

	s.mu.Lock()
	if idx := s.indexOf(id); idx >= 0 {
		s.orders[idx].Status = confirmed
		*order = s.orders[idx]
	} else {
		order.Status = confirmed
	}
	s.mu.Unlock()

	log.Info().
		Str("order_id", id).
		Str("status", confirmed).
		Msg("order status updated")

	return order, nil
}

func (s *orderService) cached(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.orders[idx], true
	}
	return model.Order{}, false
}

// indexOf must be called with s.mu held.
func (s *orderService) indexOf(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}
