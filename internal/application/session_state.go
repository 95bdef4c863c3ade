package application

import (
	"sync"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
)

// SessionState holds the process's single session. The gateway reads the token from it on every
// request; only SessionService writes to it.
type SessionState struct {
	mu      sync.RWMutex
	session domain.Session
}

var _ ports.TokenSource = (*SessionState)(nil)

func NewSessionState() *SessionState {
	return &SessionState{}
}

func (s *SessionState) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Clone()
}

// Token returns the bearer token, or "" when nobody is signed in.
func (s *SessionState) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.session.IsAuthenticated() {
		return "", nil
	}
	return s.session.Token, nil
}

func (s *SessionState) set(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session.Clone()
}

func (s *SessionState) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
}

// applyProfile merges patch into the signed-in user when it is userID. A patch that would leave
// the user invalid is not applied.
func (s *SessionState) applyProfile(userID int64, patch domain.UserPatch) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil || s.session.User.UserID != userID {
		return domain.Session{}, false, nil
	}
	merged := *s.session.User
	patch.ApplyTo(&merged)
	if err := merged.Validate(); err != nil {
		return domain.Session{}, false, err
	}
	*s.session.User = merged

	return s.session.Clone(), true, nil
}
