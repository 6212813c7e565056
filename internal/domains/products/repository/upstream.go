package repository

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/products/model"
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

func (r *upstreamRepository) List(ctx context.Context) ([]model.Product, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/products",
	})
	if err != nil {
		return nil, err
	}

	return normalizeList(raw), nil
}

// normalizeList accepts both the bare array and the {"products": [...]}
// envelope.
func normalizeList(raw json.RawMessage) []model.Product {
	if len(raw) == 0 {
		return []model.Product{}
	}

	var direct []model.Product
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var envelope struct {
		Products []model.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Products != nil {
		return envelope.Products
	}

	log.Warn().Msg("product list response did not match any known shape, treating as empty")
	return []model.Product{}
}

// =====================================================
// GET / CREATE / UPDATE / DELETE
// =====================================================

func (r *upstreamRepository) Get(ctx context.Context, id string) (*model.Product, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/products/" + url.PathEscape(id),
	})
	if err != nil {
		return nil, mapNotFound(err, id)
	}

	return decodeProduct(raw)
}

func (r *upstreamRepository) Create(ctx context.Context, req model.SaveProductRequest) (*model.Product, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPost,
		Path:   "/api/products",
		Body:   req,
	})
	if err != nil {
		return nil, err
	}

	return decodeProduct(raw)
}

func (r *upstreamRepository) Update(ctx context.Context, id string, req model.SaveProductRequest) (*model.Product, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPut,
		Path:   "/api/products/" + url.PathEscape(id),
		Body:   req,
	})
	if err != nil {
		return nil, mapNotFound(err, id)
	}

	return decodeProduct(raw)
}

func (r *upstreamRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodDelete,
		Path:   "/api/products/" + url.PathEscape(id),
	})
	return mapNotFound(err, id)
}

func decodeProduct(raw json.RawMessage) (*model.Product, error) {
	if len(raw) == 0 {
		return nil, upstream.ErrMalformedResponse
	}
	var product model.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, errors.Join(upstream.ErrMalformedResponse, err)
	}
	return &product, nil
}

// mapNotFound turns an upstream 404 into the domain error so handlers do
// not have to special-case catalog misses.
func mapNotFound(err error, id string) error {
	var srvErr *upstream.ServerError
	if errors.As(err, &srvErr) && srvErr.Status == http.StatusNotFound {
		return model.NewProductNotFoundError(id)
	}
	return err
}
