package application

import (
	"context"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

// UserStore is the admin view of accounts. It never touches the caller's own session.
type UserStore struct {
	store *Store[domain.User]
	api   ports.UserAPI
}

func NewUserStore(api ports.UserAPI) *UserStore {
	return &UserStore{store: NewStore[domain.User](), api: api}
}

func (s *UserStore) Snapshot() Collection[domain.User] {
	return s.store.Snapshot()
}

func (s *UserStore) FetchAll(ctx context.Context) ([]domain.User, error) {
	return s.store.Fetch(ctx, s.api.List)
}

func (s *UserStore) FetchByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return s.store.Fetch(ctx, func(ctx context.Context) ([]domain.User, error) {
		return s.api.ListByRole(ctx, role)
	})
}

func (s *UserStore) Create(ctx context.Context, registration domain.Registration) (domain.User, error) {
	return s.store.Create(ctx, func(ctx context.Context) (domain.User, error) {
		return s.api.Create(ctx, registration)
	})
}

func (s *UserStore) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	return s.store.Update(ctx, id, func(ctx context.Context) (domain.User, error) {
		return s.api.Update(ctx, id, patch)
	})
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id, func(ctx context.Context) error {
		return s.api.Delete(ctx, id)
	})
}

func (s *UserStore) ResetPassword(ctx context.Context, email string) error {
	return s.api.ResetPassword(ctx, email)
}
