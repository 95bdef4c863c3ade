// Package rest binds the resource API ports to the backend's REST endpoints.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
)

// Requester is the subset of *gateway.Client the resource adapters need.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
	Upload(ctx context.Context, path string, fields map[string]string, file gateway.FilePart, out any) error
}

var _ Requester = (*gateway.Client)(nil)

func pathf(format string, ids ...int64) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf(format, args...)
}

func segment(value string) string {
	return url.PathEscape(value)
}

func requireID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive, got %d", kind, id)
	}
	return nil
}

// validated decodes a single entity and checks its shape.
func validated[T domain.Entity](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: decode %T: %w", domain.ErrInvalidPayload, out, err)
	}
	if err := out.Validate(); err != nil {
		return out, err
	}
	return out, nil
}
