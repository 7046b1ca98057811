package server

// ErrorResponse is the standard error response body
type ErrorResponse struct {
	Error string `json:"error"`
}
