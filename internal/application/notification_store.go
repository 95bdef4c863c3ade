package application

import (
	"context"
	"sync/atomic"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type NotificationStore struct {
	store  *Store[domain.Notification]
	api    ports.NotificationAPI
	unread atomic.Int64
}

func NewNotificationStore(api ports.NotificationAPI) *NotificationStore {
	return &NotificationStore{store: NewStore[domain.Notification](), api: api}
}

func (s *NotificationStore) Snapshot() Collection[domain.Notification] {
	return s.store.Snapshot()
}

// FetchForUser keeps the backend's ordering, newest first.
func (s *NotificationStore) FetchForUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.Notification, error) {
		return s.api.ListForUser(ctx, userID)
	})
}

func (s *NotificationStore) RefreshUnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.api.UnreadCount(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.unread.Store(int64(count))
	return count, nil
}

func (s *NotificationStore) UnreadCount() int {
	return int(s.unread.Load())
}

func (s *NotificationStore) MarkRead(ctx context.Context, id int64) error {
	return s.store.Patch(ctx, id, func(ctx context.Context) error {
		return s.api.MarkRead(ctx, id)
	}, func(notification *domain.Notification) {
		if !notification.Read {
			notification.Read = true
			s.decrementUnread()
		}
	})
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.api.MarkAllRead(ctx, userID); err != nil {
		return err
	}

	s.store.EditAll(func(notification *domain.Notification) {
		if notification.UserID == 0 || notification.UserID == userID {
			notification.Read = true
		}
	})
	s.unread.Store(0)
	return nil
}

func (s *NotificationStore) decrementUnread() {
	for {
		current := s.unread.Load()
		if current <= 0 || s.unread.CompareAndSwap(current, current-1) {
			return
		}
	}
}
