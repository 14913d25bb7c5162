// Package api defines the response envelopes shared by every HTTP handler.
package api

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is the body returned for write operations that have no
// resource representation to return.
type MessageResponse struct {
	Message string `json:"message"`
}
