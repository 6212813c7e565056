package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"nirvana-admin-backend/internal/domains/analytics/model"
	"nirvana-admin-backend/internal/upstream"
)

type upstreamRepository struct {
	client *upstream.Client
}

// NewUpstreamRepository creates a repository backed by the commerce API.
func NewUpstreamRepository(client *upstream.Client) Repository {
	return &upstreamRepository{client: client}
}

func (r *upstreamRepository) Summary(ctx context.Context) (*model.Summary, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/admin/summary",
	})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, upstream.ErrMalformedResponse
	}

	var summary model.Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, errors.Join(upstream.ErrMalformedResponse, err)
	}
	return &summary, nil
}
