package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"nirvana-admin-backend/internal/config"
)

// Client issues authenticated JSON requests against the external commerce
// API. It is the only component that touches the network; everything above
// it works with decoded bodies and typed errors.
type Client struct {
	baseURL        string
	serviceToken   string
	forwardCookies bool
	httpClient     *http.Client
}

// Request describes one upstream call.
type Request struct {
	Method string
	Path   string // e.g. "/api/returns"
	Query  url.Values
	Body   interface{} // marshalled as JSON when non-nil
}

// NewClient creates a new upstream client.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		serviceToken:   cfg.ServiceToken,
		forwardCookies: cfg.ForwardCookies,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// BaseURL returns the resolved commerce API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues the request and returns the raw JSON body of a 2xx response.
// Error mapping:
//   - transport failure            -> *NetworkError
//   - non-2xx status               -> *ServerError (message passed through)
//   - body that is not valid JSON  -> ErrMalformedResponse
func (c *Client) Do(ctx context.Context, req Request) (json.RawMessage, error) {
	// Step 1: Build URL
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	// Step 2: Marshal body
	var bodyReader io.Reader
	if req.Body != nil {
		bodyJSON, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyJSON)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	// Step 3: Attach credentials. Caller credentials win over the static
	// service token so upstream sees the acting staff member.
	if c.serviceToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}
	if creds, ok := CredentialsFrom(ctx); ok {
		if creds.Authorization != "" {
			httpReq.Header.Set("Authorization", creds.Authorization)
		}
		if c.forwardCookies {
			for _, cookie := range creds.Cookies {
				httpReq.AddCookie(cookie)
			}
		}
	}

	// Step 4: Call upstream
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	// Step 5: Map non-2xx to ServerError, passing the upstream message through
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(bodyBytes, &errBody)
		return nil, NewServerError(resp.StatusCode, errBody.Message)
	}

	if len(bodyBytes) == 0 {
		return nil, nil
	}

	if !json.Valid(bodyBytes) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedResponse)
	}

	return json.RawMessage(bodyBytes), nil
}
