package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/customers/model"
	"nirvana-admin-backend/internal/upstream"
)

type upstreamRepository struct {
	client *upstream.Client
}

// NewUpstreamRepository creates a repository backed by the commerce API.
func NewUpstreamRepository(client *upstream.Client) Repository {
	return &upstreamRepository{client: client}
}

func (r *upstreamRepository) List(ctx context.Context, query model.ListCustomersQuery) (*model.CustomerPage, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/users",
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	return normalizePage(raw), nil
}

// normalizePage accepts the {"users": [...], "totalUsers": n} envelope and
// the bare array older deployments served.
func normalizePage(raw json.RawMessage) *model.CustomerPage {
	if len(raw) == 0 {
		return &model.CustomerPage{Users: []model.Customer{}}
	}

	var page model.CustomerPage
	if err := json.Unmarshal(raw, &page); err == nil && page.Users != nil {
		if page.TotalUsers == 0 {
			page.TotalUsers = len(page.Users)
		}
		return &page
	}

	var direct []model.Customer
	if err := json.Unmarshal(raw, &direct); err == nil {
		return &model.CustomerPage{Users: direct, TotalUsers: len(direct)}
	}

	log.Warn().Msg("customer list response did not match any known shape, treating as empty")
	return &model.CustomerPage{Users: []model.Customer{}}
}
