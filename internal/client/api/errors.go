package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrConnection marks transport-level failures (no response, timeout, broken
// circuit). These carry no structured server payload, so callers show a
// generic connection message instead of mapping server fields.
var ErrConnection = errors.New("connection error")

// Error is a structured error response from the backend. It captures the
// HTTP status plus whatever detail and field-level messages the server
// provided, so screen-level logic can map them to user-facing text.
type Error struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Code is the machine-readable error code when the server provides one.
	Code string

	// Detail is the server's human-readable description, if any.
	Detail string

	// Fields maps field names to their validation messages for 400-style
	// responses.
	Fields map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error %d", e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "; %s: %s", name, strings.Join(e.Fields[name], ", "))
		}
	}
	return b.String()
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsUnauthorized reports whether err is a 401 api error.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// parseErrorResponse builds an *Error from a non-2xx response body. The
// backend answers either {"detail": "...", "code": "..."} or a field map of
// message lists; both shapes are folded into one Error.
func parseErrorResponse(statusCode int, body []byte) *Error {
	apiErr := &Error{StatusCode: statusCode}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		// Not JSON (HTML error page, empty body). Keep the status only.
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	for key, value := range raw {
		switch key {
		case "detail", "error_description", "message":
			var s string
			if json.Unmarshal(value, &s) == nil && apiErr.Detail == "" {
				apiErr.Detail = s
			}
		case "code", "error":
			var s string
			if json.Unmarshal(value, &s) == nil && apiErr.Code == "" {
				apiErr.Code = s
			}
		default:
			// Field-level messages arrive as a list or a single string.
			var list []string
			if json.Unmarshal(value, &list) == nil {
				if apiErr.Fields == nil {
					apiErr.Fields = make(map[string][]string)
				}
				apiErr.Fields[key] = list
				continue
			}
			var single string
			if json.Unmarshal(value, &single) == nil {
				if apiErr.Fields == nil {
					apiErr.Fields = make(map[string][]string)
				}
				apiErr.Fields[key] = []string{single}
			}
		}
	}

	return apiErr
}
