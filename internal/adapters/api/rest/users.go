package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

type UserAPI struct {
	requester Requester
}

var _ ports.UserAPI = (*UserAPI)(nil)

func NewUserAPI(requester Requester) *UserAPI {
	return &UserAPI{requester: requester}
}

func (a *UserAPI) List(ctx context.Context) ([]domain.User, error) {
	return a.list(ctx, "/users")
}

func (a *UserAPI) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unsupported role %q", role)
	}
	return a.list(ctx, "/users/role/"+segment(string(role)))
}

// Create registers a user on someone else's behalf; the caller's session is not touched.
func (a *UserAPI) Create(ctx context.Context, registration domain.Registration) (domain.User, error) {
	if strings.TrimSpace(registration.Email) == "" || registration.Password == "" {
		return domain.User{}, fmt.Errorf("email and password are required")
	}

	var created domain.User
	if err := a.requester.Do(ctx, http.MethodPost, "/users/register", registration, &created); err != nil {
		return domain.User{}, err
	}
	return created, nil
}

func (a *UserAPI) Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error) {
	if err := requireID("user", id); err != nil {
		return domain.User{}, err
	}
	if patch.Empty() {
		return domain.User{}, fmt.Errorf("user update has no fields")
	}

	var updated domain.User
	if err := a.requester.Do(ctx, http.MethodPut, pathf("/users/%s", id), patch, &updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (a *UserAPI) Delete(ctx context.Context, id int64) error {
	if err := requireID("user", id); err != nil {
		return err
	}
	return a.requester.Do(ctx, http.MethodDelete, pathf("/users/%s", id), nil, nil)
}

func (a *UserAPI) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	return a.requester.Do(ctx, http.MethodPost, "/users/reset-password", map[string]string{"email": email}, nil)
}

func (a *UserAPI) list(ctx context.Context, path string) ([]domain.User, error) {
	var users gateway.List[domain.User]
	if err := a.requester.Do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
