package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/tidwall/gjson"
)

type SessionAPI struct {
	requester Requester
}

var _ ports.SessionAPI = (*SessionAPI)(nil)

func NewSessionAPI(requester Requester) *SessionAPI {
	return &SessionAPI{requester: requester}
}

func (a *SessionAPI) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error) {
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return domain.AuthResult{}, fmt.Errorf("email and password are required")
	}

	return a.authenticate(ctx, "/users/login", credentials)
}

func (a *SessionAPI) Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error) {
	if strings.TrimSpace(registration.Email) == "" || registration.Password == "" {
		return domain.AuthResult{}, fmt.Errorf("email and password are required")
	}
	if registration.Role != "" && !registration.Role.Valid() {
		return domain.AuthResult{}, fmt.Errorf("unsupported role %q", registration.Role)
	}

	return a.authenticate(ctx, "/users/register", registration)
}

func (a *SessionAPI) UpdateProfile(ctx context.Context, userID int64, patch domain.UserPatch) error {
	if err := requireID("user", userID); err != nil {
		return err
	}
	if patch.Empty() {
		return fmt.Errorf("profile update has no fields")
	}

	return a.requester.Do(ctx, http.MethodPut, pathf("/users/%s/profile", userID), patch, nil)
}

func (a *SessionAPI) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if err := requireID("user", userID); err != nil {
		return err
	}
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("old and new passwords are required")
	}

	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return a.requester.Do(ctx, http.MethodPut, pathf("/users/%s/password", userID), body, nil)
}

// authenticate accepts either a bare user record or {"user": {...}, "token": "..."}.
func (a *SessionAPI) authenticate(ctx context.Context, path string, body any) (domain.AuthResult, error) {
	var raw json.RawMessage
	if err := a.requester.Do(gateway.CredentialsAttempt(ctx), http.MethodPost, path, body, &raw); err != nil {
		return domain.AuthResult{}, err
	}

	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return domain.AuthResult{}, fmt.Errorf("POST %s: %w: expected an object", path, domain.ErrInvalidPayload)
	}

	userRaw := raw
	if nested := parsed.Get("user"); nested.IsObject() {
		userRaw = json.RawMessage(nested.Raw)
	}
	user, err := validated[domain.User](userRaw)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("POST %s: %w", path, err)
	}

	token := ""
	if value := parsed.Get("token"); value.Type == gjson.String {
		token = strings.TrimSpace(value.Str)
	}

	return domain.AuthResult{User: user, Token: token}, nil
}
