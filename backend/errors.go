package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrNotFound     = errors.New("requested resource not found")
	ErrBadResponse  = errors.New("unexpected response from backend")
)

// APIError is a non-2xx answer of the backend, carrying its message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

const genericFailure = "An error occurred, please try again!"

// Message turns any error returned by the client into the text shown to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnauthorized) {
		return "Your session has expired, please log in again."
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The server took too long to respond, please try again."
	}
	return genericFailure
}
