package gateway

import (
	"context"
	"net/http"

	"github.com/bnema/portal-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

type credentialsAttemptKey struct{}

// CredentialsAttempt marks ctx as a sign-in request. A 401 on such a request means the
// credentials were wrong, so the current session is left alone.
func CredentialsAttempt(ctx context.Context) context.Context {
	return context.WithValue(ctx, credentialsAttemptKey{}, true)
}

func isCredentialsAttempt(ctx context.Context) bool {
	marked, _ := ctx.Value(credentialsAttemptKey{}).(bool)
	return marked
}

// authGuard reacts to authentication and authorization rejections. The response itself is
// always handed back to the caller unchanged.
type authGuard struct {
	navigator  ports.Navigator
	loginPath  string
	onRejected func(ctx context.Context)
	logger     *logrus.Entry
}

func (g authGuard) middleware(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			g.sessionRejected(req)
		case http.StatusForbidden:
			g.logger.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
			}).Warn("backend refused access to resource")
		}

		return resp, nil
	})
}

func (g authGuard) sessionRejected(req *http.Request) {
	if isCredentialsAttempt(req.Context()) {
		g.logger.WithField("path", req.URL.Path).Debug("credentials rejected")
		return
	}
	if g.onRejected != nil {
		g.onRejected(req.Context())
	}
	if g.navigator == nil {
		return
	}
	if g.navigator.Location() == g.loginPath {
		return
	}

	g.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
	}).Info("session expired, redirecting to login")
	g.navigator.Navigate(g.loginPath)
}
