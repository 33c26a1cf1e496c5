package studentapi

import (
	"context"

	"github.com/pkg/errors"

	"github.com/school-management/sm-console/api"
)

// Login exchanges credentials for a session token and stores it on success.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	res := &api.JwtResponse{}
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(api.LoginRequest{Username: username, Password: password}).
		SetResult(res).
		SetError(apiErr).
		Post("/api/auth/login")
	if err != nil {
		return "", errors.Wrap(err, "login request failed")
	}
	if resp.IsError() {
		return "", newAPIError(resp.StatusCode(), apiErr)
	}

	if err := c.tokens.Set(res.Token); err != nil {
		return "", errors.Wrap(err, "failed to store session token")
	}
	return res.Token, nil
}

// Register creates a new admin account. The session is left untouched: the
// user is expected to log in afterwards. Returns the server's plain-text
// confirmation.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	apiErr := &api.ErrorResponse{}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(api.LoginRequest{Username: username, Password: password}).
		SetError(apiErr).
		Post("/api/auth/register")
	if err != nil {
		return "", errors.Wrap(err, "register request failed")
	}
	if resp.IsError() {
		return "", newAPIError(resp.StatusCode(), apiErr)
	}
	return resp.String(), nil
}
