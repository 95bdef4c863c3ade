package domain

import "time"

// SessionTokenRef is the secret-store entry holding the session bearer token.
const SessionTokenRef = "portal://session/token"

type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Session is the client-held identity. It is authenticated iff both the user and the token are present.
type Session struct {
	User      *User
	Token     string
	CreatedAt time.Time
}

func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

func (s Session) State() SessionState {
	if s.IsAuthenticated() {
		return SessionAuthenticated
	}

	return SessionAnonymous
}

func (s Session) UserID() int64 {
	if s.User == nil {
		return 0
	}

	return s.User.UserID
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	if s.User != nil {
		user := *s.User
		s.User = &user
	}

	return s
}

// AuthResult is the backend's answer to login and register. Token is optional.
type AuthResult struct {
	User  User
	Token string
}

// SessionRecord is the durable form of a session. The token itself lives in the secret store under TokenRef.
type SessionRecord struct {
	User     User
	TokenRef string
	SavedAt  time.Time
}
