// Package api defines the response envelope used by JSON output.
package api

// Response wraps all machine-readable command output.
type Response[T any] struct {
	OK     bool   `json:"ok"`
	Result T      `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// Error represents a command error.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error codes.
const (
	ErrNotFound     = "not_found"
	ErrUnauthorized = "unauthorized"
	ErrBadRequest   = "bad_request"
	ErrConflict     = "conflict"
	ErrInternal     = "internal"
)
