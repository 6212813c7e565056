package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nirvana-admin-backend/internal/domains/returns/model"
	"nirvana-admin-backend/internal/upstream"
)

// =====================================================
// FAKE SERVICE
// =====================================================

type fakeReturnService struct {
	listFn    func(query model.ListReturnsQuery) ([]model.ReturnRequest, error)
	getFn     func(id string) (*model.ReturnDetailResponse, error)
	approveFn func(id string, percentage int, note string) (*model.ReturnRequest, error)
	rejectFn  func(id string, note string) (*model.ReturnRequest, error)
}

func (f *fakeReturnService) List(_ context.Context, query model.ListReturnsQuery) ([]model.ReturnRequest, error) {
	return f.listFn(query)
}

func (f *fakeReturnService) Get(_ context.Context, id string) (*model.ReturnDetailResponse, error) {
	return f.getFn(id)
}

func (f *fakeReturnService) Approve(_ context.Context, id string, percentage int, note string) (*model.ReturnRequest, error) {
	return f.approveFn(id, percentage, note)
}

func (f *fakeReturnService) Reject(_ context.Context, id string, note string) (*model.ReturnRequest, error) {
	return f.rejectFn(id, note)
}

func newTestRouter(svc *fakeReturnService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewReturnHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =====================================================
// TESTS
// =====================================================

func TestListReturns_OK(t *testing.T) {
	svc := &fakeReturnService{
		listFn: func(query model.ListReturnsQuery) ([]model.ReturnRequest, error) {
			assert.Equal(t, "pending", query.Status)
			return []model.ReturnRequest{{ID: "r1", Status: model.StatusPending}}, nil
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodGet, "/api/returns?status=pending", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Returns []json.RawMessage `json:"returns"`
		} `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Returns, 1)
	assert.Equal(t, 1, body.Meta.Total)
}

func TestListReturns_InvalidStatus(t *testing.T) {
	svc := &fakeReturnService{
		listFn: func(model.ListReturnsQuery) ([]model.ReturnRequest, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodGet, "/api/returns?status=archived", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestProcessReturn_Approve(t *testing.T) {
	svc := &fakeReturnService{
		approveFn: func(id string, percentage int, note string) (*model.ReturnRequest, error) {
			assert.Equal(t, "r1", id)
			assert.Equal(t, 50, percentage)
			assert.Equal(t, "scuffed box", note)
			return &model.ReturnRequest{ID: id, Status: model.StatusRefunded, RefundPercentage: 50}, nil
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodPatch, "/api/returns/r1",
		`{"action":"approve","refundPercentage":50,"refundReason":"scuffed box"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessReturn_ApproveDefaultsToFullRefund(t *testing.T) {
	svc := &fakeReturnService{
		approveFn: func(_ string, percentage int, _ string) (*model.ReturnRequest, error) {
			assert.Equal(t, 100, percentage)
			return &model.ReturnRequest{Status: model.StatusRefunded}, nil
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodPatch, "/api/returns/r1", `{"action":"approve"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessReturn_Reject(t *testing.T) {
	svc := &fakeReturnService{
		rejectFn: func(id string, note string) (*model.ReturnRequest, error) {
			assert.Equal(t, "outside window", note)
			return &model.ReturnRequest{ID: id, Status: model.StatusRejected}, nil
		},
	}
	w := doRequest(newTestRouter(svc), http.MethodPatch, "/api/returns/r1",
		`{"action":"reject","refundReason":"outside window"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProcessReturn_UnknownAction(t *testing.T) {
	svc := &fakeReturnService{}
	w := doRequest(newTestRouter(svc), http.MethodPatch, "/api/returns/r1", `{"action":"escalate"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", model.NewRequestNotFoundError("r1"), http.StatusNotFound},
		{"invalid percentage", model.NewInvalidPercentageError(150), http.StatusUnprocessableEntity},
		{"already processing", model.NewAlreadyProcessingError("r1"), http.StatusConflict},
		{"invalid transition", model.NewInvalidTransitionError("r1", model.StatusRefunded), http.StatusConflict},
		{"malformed upstream body", model.NewMalformedResponseError(nil), http.StatusBadGateway},
		{"network failure", &upstream.NetworkError{Err: context.DeadlineExceeded}, http.StatusBadGateway},
		{"upstream conflict passes through", upstream.NewServerError(http.StatusConflict, "already processed"), http.StatusConflict},
		{"upstream weird status clamps to 502", upstream.NewServerError(200, "odd"), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReturnService{
				approveFn: func(string, int, string) (*model.ReturnRequest, error) {
					return nil, tt.err
				},
			}
			w := doRequest(newTestRouter(svc), http.MethodPatch, "/api/returns/r1", `{"action":"approve"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
