// Package httperr defines the client-facing error taxonomy and the single
// JSON error writer used by every transport handler.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var (
	ErrUnauthorized = &Error{Status: http.StatusUnauthorized, Message: "not authenticated"}
	ErrForbidden    = &Error{Status: http.StatusForbidden, Message: "not authorized"}
	ErrNotFound     = &Error{Status: http.StatusNotFound, Message: "not found"}
	ErrConflict     = &Error{Status: http.StatusConflict, Message: "already exists"}
	ErrService      = &Error{Status: http.StatusInternalServerError, Message: "service error"}
)

// NotFound returns a 404 with a resource-specific message.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Service returns a downstream-failure error with a generic message.
// Upstream failure detail stays in the logs, not in the response.
func Service(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// Write renders err as a JSON error response. Unknown errors become a
// generic 500 so internals never leak to the client.
func Write(w http.ResponseWriter, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Status: http.StatusInternalServerError, Message: "internal error"}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(e)
}
