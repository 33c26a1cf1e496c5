package api

// ErrorResponse is the remote API's error body. Errors carries per-field
// validation messages and is usually empty.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
