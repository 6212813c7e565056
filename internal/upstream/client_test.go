package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nirvana-admin-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg func(*config.UpstreamConfig)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := config.UpstreamConfig{BaseURL: srv.URL}
	if cfg != nil {
		cfg(&c)
	}
	return NewClient(c)
}

func TestDo_ReturnsRawBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/returns", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		w.Write([]byte(`{"returns":[]}`))
	}, nil)

	raw, err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/api/returns",
		Query:  map[string][]string{"status": {"pending"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"returns":[]}`, string(raw))
}

func TestDo_ServerErrorPassesMessageThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Return request already processed"}`))
	}, nil)

	_, err := client.Do(context.Background(), Request{Method: http.MethodPatch, Path: "/api/returns/r1"})
	require.Error(t, err)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusConflict, srvErr.Status)
	assert.Equal(t, "Return request already processed", srvErr.Message)
}

func TestDo_ServerErrorWithoutMessageGetsFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/returns"})

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.NotEmpty(t, srvErr.Message)
}

func TestDo_TransportFailureIsNetworkError(t *testing.T) {
	client := NewClient(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/returns"})

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestDo_InvalidJSONIsMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}, nil)

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/returns"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDo_EmptyBodyIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	raw, err := client.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/api/products/p1"})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

// =====================================================
// CREDENTIAL FORWARDING
// =====================================================

func TestDo_CallerCredentialsWinOverServiceToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, func(c *config.UpstreamConfig) {
		c.ServiceToken = "service-token"
	})

	ctx := WithCredentials(context.Background(), Credentials{Authorization: "Bearer staff-token"})
	_, err := client.Do(ctx, Request{Method: http.MethodGet, Path: "/api/returns"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer staff-token", gotAuth)
}

func TestDo_ServiceTokenWhenNoCallerCredentials(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, func(c *config.UpstreamConfig) {
		c.ServiceToken = "service-token"
	})

	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/returns"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer service-token", gotAuth)
}

func TestDo_ForwardsCookiesWhenEnabled(t *testing.T) {
	var gotCookie string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			gotCookie = c.Value
		}
		w.Write([]byte(`{}`))
	}, func(c *config.UpstreamConfig) {
		c.ForwardCookies = true
	})

	ctx := WithCredentials(context.Background(), Credentials{
		Cookies: []*http.Cookie{{Name: "session", Value: "abc123"}},
	})
	_, err := client.Do(ctx, Request{Method: http.MethodGet, Path: "/api/returns"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotCookie)
}
