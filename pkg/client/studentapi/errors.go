package studentapi

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"github.com/school-management/sm-console/api"
)

// APIError is a non-2xx answer from the remote API. Message is the server's
// message when one parsed, otherwise empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a 401/403 from the remote API, which the
// console treats as session expiry.
func IsAuthError(err error) bool {
	apiErr := &APIError{}
	if !goerrors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// ServerMessage extracts the server-provided message from err, or returns
// fallback when err carries none (transport failures included).
func ServerMessage(err error, fallback string) string {
	apiErr := &APIError{}
	if goerrors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func newAPIError(status int, body *api.ErrorResponse) *APIError {
	err := &APIError{StatusCode: status}
	if body != nil {
		err.Message = body.Message
	}
	return err
}
