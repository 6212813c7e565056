package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/orders/model"
	"nirvana-admin-backend/internal/upstream"
)

type upstreamRepository struct {
	client *upstream.Client
}

// NewUpstreamRepository creates a repository backed by the commerce API.
func NewUpstreamRepository(client *upstream.Client) Repository {
	return &upstreamRepository{client: client}
}

// =====================================================
// LIST
// =====================================================

func (r *upstreamRepository) List(ctx context.Context, query model.ListOrdersQuery) ([]model.Order, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/orders",
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	return normalizeList(raw), nil
}

// normalizeList accepts both the bare array and the {"orders": [...]}
// envelope the commerce API has served at different times.
func normalizeList(raw json.RawMessage) []model.Order {
	if len(raw) == 0 {
		return []model.Order{}
	}

	var direct []model.Order
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var envelope struct {
		Orders []model.Order `json:"orders"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Orders != nil {
		return envelope.Orders
	}

	log.Warn().Msg("order list response did not match any known shape, treating as empty")
	return []model.Order{}
}

// =====================================================
// UPDATE STATUS
// =====================================================

func (r *upstreamRepository) UpdateStatus(ctx context.Context, id, status string) (*model.StatusUpdateResult, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/api/orders/" + url.PathEscape(id),
		Body:   model.UpdateOrderStatusRequest{Status: status},
	})
	if err != nil {
		return nil, err
	}

	result := &model.StatusUpdateResult{}
	if len(raw) > 0 {
		// A decode failure only costs the confirmed value; the request was
		// accepted, so the caller falls back to the value it sent.
		if err := json.Unmarshal(raw, result); err != nil {
			log.Warn().Err(err).Str("order_id", id).Msg("status update confirmation could not be decoded")
			result.Status = ""
		}
	}
	return result, nil
}
