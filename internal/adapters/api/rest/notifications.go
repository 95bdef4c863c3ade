package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/tidwall/gjson"
)

type NotificationAPI struct {
	requester Requester
}

var _ ports.NotificationAPI = (*NotificationAPI)(nil)

func NewNotificationAPI(requester Requester) *NotificationAPI {
	return &NotificationAPI{requester: requester}
}

func (a *NotificationAPI) ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	if err := requireID("user", userID); err != nil {
		return nil, err
	}

	var notifications gateway.List[domain.Notification]
	if err := a.requester.Do(ctx, http.MethodGet, pathf("/notifications/user/%s/ordered", userID), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// UnreadCount accepts a bare number or {"count": n}.
func (a *NotificationAPI) UnreadCount(ctx context.Context, userID int64) (int, error) {
	if err := requireID("user", userID); err != nil {
		return 0, err
	}

	path := pathf("/notifications/user/%s/unread-count", userID)
	var raw json.RawMessage
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return 0, err
	}

	parsed := gjson.ParseBytes(raw)
	if parsed.IsObject() {
		parsed = parsed.Get("count")
	}
	if parsed.Type != gjson.Number {
		return 0, fmt.Errorf("GET %s: %w: unread count is not a number", path, domain.ErrInvalidPayload)
	}

	count := domain.UnreadCount{Count: int(parsed.Int())}
	if err := count.Validate(); err != nil {
		return 0, fmt.Errorf("GET %s: %w", path, err)
	}
	return count.Count, nil
}

func (a *NotificationAPI) MarkRead(ctx context.Context, id int64) error {
	if err := requireID("notification", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodPut, pathf("/notifications/%s/mark-read", id), nil, nil)
}

func (a *NotificationAPI) MarkAllRead(ctx context.Context, userID int64) error {
	if err := requireID("user", userID); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodPut, pathf("/notifications/user/%s/mark-all-read", userID), nil, nil)
}
