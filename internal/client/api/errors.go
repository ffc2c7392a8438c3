package api

import (
	"fmt"
	"sort"
)

// FallbackMessage is shown when no better error text can be extracted.
const FallbackMessage = "something went wrong"

// ErrorBody is the union of error payload shapes the backend is known to
// produce. Errors holds field-level validation messages, either a string or
// a list of strings per field.
type ErrorBody struct {
	Message string         `json:"message,omitempty"`
	Detail  string         `json:"detail,omitempty"`
	Err     string         `json:"error,omitempty"`
	Errors  map[string]any `json:"errors,omitempty"`
}

// Error is a failed backend response: the original status and body are
// preserved so callers can branch on the code (401 invalid credentials,
// 409 conflict, 423 locked), and Message carries the normalized text for
// display.
type Error struct {
	Status  int
	Message string
	Body    ErrorBody
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// normalizeMessage reduces a heterogeneous error payload to one display
// string. Priority: message, detail, error, first field-level entry,
// transport text, fallback.
func normalizeMessage(body ErrorBody, transport string) string {
	for _, c := range []string{body.Message, body.Detail, body.Err} {
		if c != "" {
			return c
		}
	}

	if len(body.Errors) > 0 {
		// map order is random; take the smallest key for a stable pick
		keys := make([]string, 0, len(body.Errors))
		for k := range body.Errors {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch v := body.Errors[k].(type) {
			case string:
				if v != "" {
					return v
				}
			case []any:
				if len(v) > 0 {
					if s, ok := v[0].(string); ok && s != "" {
						return s
					}
				}
			}
		}
	}

	if transport != "" {
		return transport
	}
	return FallbackMessage
}
