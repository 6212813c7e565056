package upstream

import (
	"context"
	"net/http"
)

// Credentials are the caller's session credentials, forwarded verbatim to
// the commerce API so authorization stays upstream.
type Credentials struct {
	Authorization string
	Cookies       []*http.Cookie
}

type credentialsKey struct{}

// WithCredentials attaches forwarded credentials to the request context.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFrom extracts forwarded credentials, if any.
func CredentialsFrom(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok
}
