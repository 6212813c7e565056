package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nirvana-admin-backend/internal/domains/orders/model"
	"nirvana-admin-backend/internal/upstream"
)

type fakeRepository struct {
	orders      []model.Order
	listErr     error
	updateFn    func(id, status string) (*model.StatusUpdateResult, error)
	updateCalls []string
}

func (f *fakeRepository) List(context.Context, model.ListOrdersQuery) ([]model.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id, status string) (*model.StatusUpdateResult, error) {
	f.updateCalls = append(f.updateCalls, id+":"+status)
	if f.updateFn != nil {
		return f.updateFn(id, status)
	}
	return &model.StatusUpdateResult{}, nil
}

func TestUpdateStatus_ConfirmThenPatch(t *testing.T) {
	repo := &fakeRepository{
		orders: []model.Order{{ID: "o1", Status: model.StatusPending}},
	}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "o1", model.StatusShipped)
	require.NoError(t, err)

	assert.Equal(t, model.StatusShipped, order.Status)
	assert.Equal(t, []string{"o1:shipped"}, repo.updateCalls)

	// Cached copy carries the new status.
	cached, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusShipped, cached.Status)
}

func TestUpdateStatus_ServerConfirmedStatusWins(t *testing.T) {
	repo := &fakeRepository{
		orders: []model.Order{{ID: "o1", Status: model.StatusPending}},
		updateFn: func(string, string) (*model.StatusUpdateResult, error) {
			return &model.StatusUpdateResult{Status: model.StatusDelivered}, nil
		},
	}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "o1", model.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, order.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeRepository{orders: []model.Order{{ID: "o1", Status: model.StatusPending}}}
	svc := NewOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), "o1", "teleported")
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
	assert.Empty(t, repo.updateCalls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), "missing", model.StatusShipped)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestUpdateStatus_UpstreamFailureLeavesCacheUnchanged(t *testing.T) {
	repo := &fakeRepository{
		orders: []model.Order{{ID: "o1", Status: model.StatusPending}},
		updateFn: func(string, string) (*model.StatusUpdateResult, error) {
			return nil, &upstream.NetworkError{Err: context.DeadlineExceeded}
		},
	}
	svc := NewOrderService(repo)

	_, err := svc.UpdateStatus(context.Background(), "o1", model.StatusShipped)
	require.Error(t, err)

	cached, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, cached.Status)
}

func TestGet_ColdCacheRefreshes(t *testing.T) {
	repo := &fakeRepository{orders: []model.Order{{ID: "o1", Status: model.StatusPending}}}
	svc := NewOrderService(repo)

	order, err := svc.Get(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}
