package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError carries a non-2xx backend response. Messages holds the backend's
// structured error list when the body contained one; otherwise it is empty
// and Error() falls back to a generic status-coded message.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}
	return fmt.Sprintf("HTTP error! Status: %d", e.Status)
}

// decodeError reads whatever error shape the backend produced: a bare JSON
// array of strings, an object with a "message" field, or nothing usable.
func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var list []string
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		apiErr.Messages = list
		return apiErr
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &obj); err == nil && obj.Message != "" {
		apiErr.Messages = []string{obj.Message}
	}
	return apiErr
}

func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
