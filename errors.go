package sigment

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the Sigment API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API Error %d", e.StatusCode)
	}
	return e.Message
}

// UnauthorizedError is returned for HTTP 401. The call is terminal: the
// client fires Config.OnUnauthorized once and never retries.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

// TransportError wraps a failed network call or an undecodable 2xx body.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// ConfigError reports invalid client configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "sigment: " + e.Reason }

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var ue *UnauthorizedError
	return errors.As(err, &ue)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

// AsAPIError extracts the structured API error, if any.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// decodeAPIError classifies a non-2xx response. The body is tried as JSON
// with a human-readable "detail" field first, then as raw text, and an
// empty body falls back to a generic message carrying the status.
func decodeAPIError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		return &UnauthorizedError{Message: "Unauthorized"}
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Detail != "" {
		apiErr.Message = payload.Detail
		return apiErr
	}
	if text := strings.TrimSpace(string(data)); text != "" {
		apiErr.Message = text
		return apiErr
	}
	apiErr.Message = fmt.Sprintf("API Error %d", resp.StatusCode)
	return apiErr
}
