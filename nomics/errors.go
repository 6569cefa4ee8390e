package nomics

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid nomics configuration")
	// ErrInvalidPath indicates an empty endpoint path was passed to Get
	ErrInvalidPath = errors.New("endpoint path is required")
	// ErrInvalidResponse indicates a successful response whose body is not JSON
	ErrInvalidResponse = errors.New("invalid response from nomics")
	// ErrPaidPlanRequired indicates an endpoint that needs a paid plan key
	ErrPaidPlanRequired = errors.New("paid plan required")
)

// UpstreamRequestError is returned when the Nomics API answers with a non-200 status.
type UpstreamRequestError struct {
	StatusCode int
	// Message is the "message" field of a JSON error body, or the raw body otherwise.
	Message string
	Body    string
}

// newUpstreamRequestError classifies an error response body.
func newUpstreamRequestError(statusCode int, body []byte) *UpstreamRequestError {
	e := &UpstreamRequestError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		e.Message = payload.Message
	} else {
		e.Message = strings.TrimSpace(string(body))
	}

	return e
}

// Error returns "<status> <message>".
func (e *UpstreamRequestError) Error() string {
	if e.Message == "" {
		return strconv.Itoa(e.StatusCode)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *UpstreamRequestError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates a rejected API key
func (e *UpstreamRequestError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates the key exceeded its rate limit
func (e *UpstreamRequestError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError checks if the upstream failed on its side
func (e *UpstreamRequestError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// KeyTypeError is returned when a paid-plan endpoint is called with a free key.
type KeyTypeError struct {
	Endpoint Endpoint
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("endpoint %q is only available to paid plans, upgrade your API key's plan to use it", e.Endpoint.Path())
}

// Is lets errors.Is match ErrPaidPlanRequired.
func (e *KeyTypeError) Is(target error) bool {
	return target == ErrPaidPlanRequired
}
