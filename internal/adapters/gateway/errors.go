package gateway

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/tidwall/gjson"
)

const maxErrorMessageLen = 512

var backendMessageKeys = []string{"message", "error", "detail", "errors.0.message"}

// APIError is returned for every non-2xx response. errors.Is matches it against the domain
// sentinel for its status class.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    backendMessage(body),
	}
}

func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return domain.ErrSessionRejected
	case e.StatusCode == http.StatusForbidden:
		return domain.ErrForbidden
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return domain.ErrValidation
	default:
		return domain.ErrBackend
	}
}

func backendMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if gjson.ValidBytes(trimmed) {
		for _, key := range backendMessageKeys {
			result := gjson.GetBytes(trimmed, key)
			if result.Type == gjson.String && strings.TrimSpace(result.Str) != "" {
				return strings.TrimSpace(result.Str)
			}
		}
		if parsed := gjson.ParseBytes(trimmed); parsed.Type == gjson.String {
			return strings.TrimSpace(parsed.Str)
		}
	}

	message := string(trimmed)
	if len(message) > maxErrorMessageLen {
		message = message[:maxErrorMessageLen] + "...(truncated)"
	}

	return message
}
