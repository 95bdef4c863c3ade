package toml

import "fmt"

const (
	currentSchemaVersion = 1
	sessionNamespace     = "portal-session"
)

type fileSchema struct {
	Version   int        `toml:"version"`
	Namespace string     `toml:"namespace"`
	TokenRef  string     `toml:"token_ref"`
	SavedAt   string     `toml:"saved_at,omitempty"`
	User      userSchema `toml:"user"`
}

type userSchema struct {
	ID      int64  `toml:"id"`
	Name    string `toml:"name"`
	Email   string `toml:"email"`
	Role    string `toml:"role"`
	Phone   string `toml:"phone,omitempty"`
	Company string `toml:"company,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Namespace == "" {
		s.Namespace = sessionNamespace
	}
}

func (s fileSchema) validate() error {
	if s.Version != currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	if s.Namespace != sessionNamespace {
		return fmt.Errorf("unexpected session namespace %q", s.Namespace)
	}

	return nil
}
