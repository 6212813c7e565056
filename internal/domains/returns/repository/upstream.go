package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/returns/model"
	"nirvana-admin-backend/internal/upstream"
)

// envelopeKeys are probed in fixed priority order. The commerce API has
// shipped the list under several field names over time; the first key whose
// value is a sequence wins.
var envelopeKeys = []string{
	"returns",
	"requests",
	"returnRequests",
	"return_requests",
	"data",
}

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

func (r *upstreamRepository) List(ctx context.Context, query model.ListReturnsQuery) ([]model.ReturnRequest, error) {
	params := url.Values{}
	if query.Status != "" && query.Status != "all" {
		params.Set("status", query.Status)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}

	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodGet,
		Path:   "/api/returns",
		Query:  params,
	})
	if err != nil {
		return nil, err
	}

	return normalizeList(raw), nil
}

// normalizeList probes the known envelope shapes and falls back to an empty
// sequence so one odd payload never takes the whole page down.
func normalizeList(raw json.RawMessage) []model.ReturnRequest {
	if len(raw) == 0 {
		return []model.ReturnRequest{}
	}

	// Bare array
	var direct []model.ReturnRequest
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Warn().Msg("return list response is neither array nor object, treating as empty")
		return []model.ReturnRequest{}
	}

	for _, key := range envelopeKeys {
		value, ok := envelope[key]
		if !ok {
			continue
		}
		var requests []model.ReturnRequest
		if err := json.Unmarshal(value, &requests); err != nil || requests == nil {
			// Present but not a sequence: keep probing.
			continue
		}
		return requests
	}

	log.Warn().Msg("return list envelope did not match any known shape, treating as empty")
	return []model.ReturnRequest{}
}

// =====================================================
// DECIDE
// =====================================================

func (r *upstreamRepository) Decide(ctx context.Context, id string, cmd model.DecisionCommand) (*model.DecisionResult, error) {
	raw, err := r.client.Do(ctx, upstream.Request{
		Method: http.MethodPatch,
		Path:   "/api/returns/" + url.PathEscape(id),
		Body:   cmd,
	})
	if err != nil {
		return nil, err
	}

	// A decision without a confirmed body cannot be reconciled; unlike the
	// list this is a hard failure.
	if len(raw) == 0 {
		return nil, model.NewMalformedResponseError(nil)
	}

	var result model.DecisionResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, model.NewMalformedResponseError(err)
	}

	return &result, nil
}
