package navigation

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/portal-cli/internal/ports"
)

// Tracker records the route a command is serving. A CLI has no screens, so navigating to the
// login route is reported as a hint on the given writer.
type Tracker struct {
	mu        sync.Mutex
	location  string
	history   []string
	loginPath string
	hint      io.Writer
}

var _ ports.Navigator = (*Tracker)(nil)

func NewTracker(loginPath string, hint io.Writer) *Tracker {
	if hint == nil {
		hint = io.Discard
	}
	return &Tracker{loginPath: loginPath, hint: hint}
}

func (t *Tracker) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.location
}

// Enter sets the location without producing output; commands call it before they run.
func (t *Tracker) Enter(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.location = path
}

func (t *Tracker) Navigate(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.location == path {
		return
	}
	t.history = append(t.history, path)
	t.location = path

	if path == t.loginPath {
		_, _ = fmt.Fprintln(t.hint, "Your session has expired. Run `portal login` to sign in again.")
	}
}

// Redirects lists the navigations made by the gateway, oldest first.
func (t *Tracker) Redirects() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.history...)
}

func (t *Tracker) SetHintWriter(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if w == nil {
		w = io.Discard
	}
	t.hint = w
}
