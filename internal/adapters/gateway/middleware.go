package gateway

import (
	"net/http"

	"github.com/bnema/portal-cli/internal/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
)

// Middleware decorates the transport used for every backend call.
type Middleware func(next http.RoundTripper) http.RoundTripper

type RoundTripperFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain wraps base so that the first middleware sees the request first.
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}

	wrapped := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		wrapped = middlewares[i](wrapped)
	}

	return wrapped
}

// Bearer attaches the current session token. A token source that fails is ignored and the
// request goes out unauthenticated.
func Bearer(source ports.TokenSource, logger *logrus.Entry) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token, err := readToken(source)
			if err != nil {
				logger.WithError(err).Debug("session token unavailable, sending request without credentials")
			}
			if token != "" {
				req = withHeader(req, headerAuthorization, "Bearer "+token)
			}

			return next.RoundTrip(req)
		})
	}
}

func readToken(source ports.TokenSource) (string, error) {
	if source == nil {
		return "", nil
	}

	return source.Token()
}

// CSRF mirrors the CSRF cookie held by the jar into the matching request header.
func CSRF(jar http.CookieJar, cookieName, headerName string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if jar == nil || req.Header.Get(headerName) != "" {
				return next.RoundTrip(req)
			}
			for _, cookie := range jar.Cookies(req.URL) {
				if cookie.Name == cookieName && cookie.Value != "" {
					req = withHeader(req, headerName, cookie.Value)
					break
				}
			}

			return next.RoundTrip(req)
		})
	}
}

func DefaultHeaders(contentType, userAgent string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			req = req.Clone(req.Context())
			if req.Header.Get("Accept") == "" {
				req.Header.Set("Accept", DefaultContentType)
			}
			if req.Body != nil && req.Body != http.NoBody && req.Header.Get("Content-Type") == "" {
				req.Header.Set("Content-Type", contentType)
			}
			if userAgent != "" {
				req.Header.Set("User-Agent", userAgent)
			}

			return next.RoundTrip(req)
		})
	}
}

func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(headerRequestID) == "" {
				req = withHeader(req, headerRequestID, uuid.NewString())
			}

			return next.RoundTrip(req)
		})
	}
}

// RateLimit spaces requests out; it waits, it never drops or retries.
func RateLimit(perSecond float64, burst int) Middleware {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if err := limiter.Wait(req.Context()); err != nil {
				return nil, err
			}

			return next.RoundTrip(req)
		})
	}
}

// withHeader returns a copy of req; round trippers must not modify the caller's request.
func withHeader(req *http.Request, key, value string) *http.Request {
	clone := req.Clone(req.Context())
	clone.Header.Set(key, value)
	return clone
}
