// Package studentapi is the HTTP client for the remote student-management API.
// It covers the /api/auth and /api/students surfaces. Every call is
// single-shot: no retries, no caching.
package studentapi

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TokenStore provides the bearer token attached to outgoing requests and
// receives the token issued on a successful login. Implemented by
// internal/session.Store.
type TokenStore interface {
	Current() string
	Set(token string) error
}

type Client struct {
	rest   *resty.Client
	tokens TokenStore
}

func NewClient(endpoint string, timeout time.Duration, tokens TokenStore) *Client {
	rest := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout)

	// Attach the current credential to every outgoing request. Requests made
	// without a token (login, register) pass through unchanged.
	rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := tokens.Current(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	return &Client{rest: rest, tokens: tokens}
}
