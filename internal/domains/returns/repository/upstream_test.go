package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nirvana-admin-backend/internal/config"
	"nirvana-admin-backend/internal/domains/returns/model"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// ENVELOPE NORMALIZATION
// =====================================================

func TestNormalizeList(t *testing.T) {
	row := `{"_id":"r1","status":"pending"}`

	tests := []struct {
		name    string
		payload string
		wantIDs []string
	}{
		{
			name:    "bare array",
			payload: `[` + row + `]`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "returns key",
			payload: `{"returns":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "requests key",
			payload: `{"requests":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "returnRequests key",
			payload: `{"returnRequests":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "return_requests key",
			payload: `{"return_requests":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "data key",
			payload: `{"data":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "priority order when several keys present",
			payload: `{"data":[{"_id":"wrong"}],"returns":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "null value keeps probing",
			payload: `{"returns":null,"data":[` + row + `]}`,
			wantIDs: []string{"r1"},
		},
		{
			name:    "unknown key treated as empty",
			payload: `{"foo":[` + row + `]}`,
			wantIDs: []string{},
		},
		{
			name:    "non-sequence value treated as empty",
			payload: `{"returns":"oops"}`,
			wantIDs: []string{},
		},
		{
			name:    "empty body",
			payload: ``,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeList(json.RawMessage(tt.payload))
			require.NotNil(t, got)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// =====================================================
// HTTP ROUND TRIPS
// =====================================================

func newTestRepository(t *testing.T, handler http.HandlerFunc) Repository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL})
	return NewUpstreamRepository(client)
}

func TestList_QueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"returns":[]}`))
	})

	_, err := repo.List(context.Background(), model.ListReturnsQuery{Status: "pending", Search: "boots"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pending"}, gotQuery["status"])
	assert.Equal(t, []string{"boots"}, gotQuery["search"])
}

func TestList_OmitsAllStatus(t *testing.T) {
	var gotQuery map[string][]string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := repo.List(context.Background(), model.ListReturnsQuery{Status: "all"})
	require.NoError(t, err)
	_, present := gotQuery["status"]
	assert.False(t, present)
}

func TestDecide_SendsCommandAndDecodesResult(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"refunded","refundAmount":"60.00","refundPercentage":50}`))
	})

	result, err := repo.Decide(context.Background(), "r1", model.DecisionCommand{
		Action:           model.ActionApprove,
		RefundPercentage: 50,
		RefundReason:     "partial",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/returns/r1", gotPath)
	assert.Equal(t, "approve", gotBody["action"])
	assert.Equal(t, float64(50), gotBody["refundPercentage"])

	assert.Equal(t, "refunded", result.Status)
	require.NotNil(t, result.RefundPercentage)
	assert.Equal(t, 50, *result.RefundPercentage)
	require.NotNil(t, result.RefundAmount)
	assert.Equal(t, "60", result.RefundAmount.String())
}

func TestDecide_RejectAlwaysSendsZeroPercentage(t *testing.T) {
	var gotBody map[string]interface{}
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"status":"rejected"}`))
	})

	_, err := repo.Decide(context.Background(), "r1", model.DecisionCommand{
		Action:           model.ActionReject,
		RefundPercentage: 0,
	})
	require.NoError(t, err)

	// The zero must be present on the wire, not omitted.
	pct, present := gotBody["refundPercentage"]
	require.True(t, present)
	assert.Equal(t, float64(0), pct)
}

func TestDecide_EmptyBodyIsMalformed(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := repo.Decide(context.Background(), "r1", model.DecisionCommand{Action: model.ActionApprove})
	assert.ErrorIs(t, err, model.ErrMalformedResponse)
}
