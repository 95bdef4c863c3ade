package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionService struct {
	state    *SessionState
	api      ports.SessionAPI
	repo     ports.SessionRepository
	secrets  ports.SecretStore
	clock    ports.Clock
	logger   *logrus.Entry
	tokenRef string
}

func NewSessionService(
	state *SessionState,
	api ports.SessionAPI,
	repo ports.SessionRepository,
	secrets ports.SecretStore,
	clock ports.Clock,
	logger *logrus.Logger,
) *SessionService {
	if state == nil {
		state = NewSessionState()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SessionService{
		state:    state,
		api:      api,
		repo:     repo,
		secrets:  secrets,
		clock:    clock,
		logger:   logger.WithField("component", "session"),
		tokenRef: domain.SessionTokenRef,
	}
}

func (s *SessionService) State() *SessionState {
	return s.state
}

func (s *SessionService) Current() domain.Session {
	return s.state.Snapshot()
}

// RequireUser returns the signed-in user or domain.ErrNotAuthenticated.
func (s *SessionService) RequireUser() (domain.User, error) {
	session := s.state.Snapshot()
	if !session.IsAuthenticated() {
		return domain.User{}, domain.ErrNotAuthenticated
	}
	return *session.User, nil
}

func (s *SessionService) Login(ctx context.Context, credentials domain.Credentials) (domain.Session, error) {
	result, err := s.api.Login(ctx, credentials)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.establish(ctx, result)
}

func (s *SessionService) Register(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	result, err := s.api.Register(ctx, registration)
	if err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}

	return s.establish(ctx, result)
}

// Logout drops the session everywhere. It never fails; cleanup errors are logged.
func (s *SessionService) Logout(ctx context.Context) {
	s.state.reset()
	s.clearPersisted(ctx)
}

// Expire is Logout triggered by the backend rejecting the session.
func (s *SessionService) Expire(ctx context.Context) {
	if s.state.Snapshot().IsAuthenticated() {
		s.logger.Info("backend rejected the session, signing out")
	}
	s.Logout(ctx)
}

func (s *SessionService) UpdateProfile(ctx context.Context, userID int64, patch domain.UserPatch) (domain.Session, error) {
	if current := s.state.Snapshot(); current.User != nil && current.User.UserID == userID {
		merged := *current.User
		patch.ApplyTo(&merged)
		if err := merged.Validate(); err != nil {
			return domain.Session{}, fmt.Errorf("update profile: %w", err)
		}
	}

	if err := s.api.UpdateProfile(ctx, userID, patch); err != nil {
		return domain.Session{}, fmt.Errorf("update profile: %w", err)
	}

	session, ok, err := s.state.applyProfile(userID, patch)
	if err != nil {
		s.logger.WithError(err).Warn("profile update would leave the session invalid, keeping the stored one")
		return s.state.Snapshot(), nil
	}
	if !ok {
		return s.state.Snapshot(), nil
	}

	record := domain.SessionRecord{User: *session.User, TokenRef: s.tokenRef, SavedAt: s.clock.Now()}
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.WithError(err).Warn("persist updated profile")
	}

	return session, nil
}

func (s *SessionService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if err := s.api.ChangePassword(ctx, userID, oldPassword, newPassword); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// Restore loads the persisted session. A missing session leaves the process anonymous; a damaged
// or partial one is discarded.
func (s *SessionService) Restore(ctx context.Context) (domain.Session, error) {
	record, err := s.repo.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			return domain.Session{}, nil
		case errors.Is(err, domain.ErrInvalidSession):
			s.discard(ctx, err)
			return domain.Session{}, nil
		default:
			return domain.Session{}, fmt.Errorf("load session: %w", err)
		}
	}

	if err := s.validateRecord(record); err != nil {
		s.discard(ctx, err)
		return domain.Session{}, nil
	}

	token, err := s.secrets.Get(ctx, s.tokenRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			s.discard(ctx, err)
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("load session token: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		s.discard(ctx, errors.New("session token is empty"))
		return domain.Session{}, nil
	}

	user := record.User
	session := domain.Session{User: &user, Token: token, CreatedAt: record.SavedAt}
	s.state.set(session)

	return session.Clone(), nil
}

// TokenExpiry reads the exp claim of JWT-shaped tokens without verifying them. Opaque tokens
// report no expiry.
func (s *SessionService) TokenExpiry() (time.Time, bool) {
	token, _ := s.state.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func (s *SessionService) establish(ctx context.Context, result domain.AuthResult) (domain.Session, error) {
	if err := result.User.Validate(); err != nil {
		return domain.Session{}, fmt.Errorf("establish session: %w", err)
	}

	token := strings.TrimSpace(result.Token)
	if token == "" {
		token = uuid.NewString()
	}

	previous := s.state.Snapshot()
	if err := s.secrets.Put(ctx, s.tokenRef, token); err != nil {
		return domain.Session{}, fmt.Errorf("store session token: %w", err)
	}

	now := s.clock.Now()
	record := domain.SessionRecord{User: result.User, TokenRef: s.tokenRef, SavedAt: now}
	if err := s.repo.Save(ctx, record); err != nil {
		if rollbackErr := s.rollbackToken(ctx, previous); rollbackErr != nil {
			return domain.Session{}, fmt.Errorf("save session and rollback stored token: %w", errors.Join(err, rollbackErr))
		}
		return domain.Session{}, fmt.Errorf("save session: %w", err)
	}

	user := result.User
	session := domain.Session{User: &user, Token: token, CreatedAt: now}
	s.state.set(session)

	return session.Clone(), nil
}

func (s *SessionService) rollbackToken(ctx context.Context, previous domain.Session) error {
	if previous.IsAuthenticated() {
		return s.secrets.Put(ctx, s.tokenRef, previous.Token)
	}
	return s.secrets.Delete(ctx, s.tokenRef)
}

func (s *SessionService) discard(ctx context.Context, reason error) {
	s.logger.WithError(reason).Warn("discarding persisted session")
	s.clearPersisted(ctx)
}

func (s *SessionService) clearPersisted(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.logger.WithError(err).Warn("clear session file")
	}
	if err := s.secrets.Delete(ctx, s.tokenRef); err != nil {
		s.logger.WithError(err).Warn("delete session token")
	}
}

// validateRecord only accepts records pointing at this service's own token entry.
func (s *SessionService) validateRecord(record domain.SessionRecord) error {
	if err := record.User.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(record.TokenRef) == "" {
		return fmt.Errorf("%w: token reference is empty", domain.ErrInvalidSession)
	}
	if record.TokenRef != s.tokenRef {
		return fmt.Errorf("%w: unexpected token reference %q", domain.ErrInvalidSession, record.TokenRef)
	}
	return nil
}
