package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type staticToken struct {
	token string
	err   error
}

func (s staticToken) Token() (string, error) { return s.token, s.err }

type recordingNavigator struct {
	mu       sync.Mutex
	location string
	visits   []string
}

func (n *recordingNavigator) Location() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = path
	n.visits = append(n.visits, path)
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()

	logger, _ := logtest.NewNullLogger()
	client, err := New(Config{BaseURL: baseURL, IncludeCredentials: true}, append([]Option{WithLogger(logger)}, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"ftp://example.com", "http://", "::not a url"} {
		_, err := New(Config{BaseURL: raw})
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "gateway config")
	}
}

func TestClientSendsDefaultHeadersAndBearerToken(t *testing.T) {
	t.Parallel()

	var seen http.Header
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		path = r.URL.Path
		_, _ = w.Write([]byte(`[{"projectId":1,"name":"Website","status":"PLANNING","progress":0}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/api/", WithTokenSource(staticToken{token: "tok-1"}))

	var projects List[domain.Project]
	require.NoError(t, client.Get(context.Background(), "/projects", &projects))

	assert.Equal(t, "/api/projects", path)
	assert.Equal(t, "Bearer tok-1", seen.Get("Authorization"))
	assert.Equal(t, "application/json", seen.Get("Accept"))
	assert.Equal(t, DefaultUserAgent, seen.Get("User-Agent"))
	assert.NotEmpty(t, seen.Get("X-Request-ID"))
	require.Len(t, projects, 1)
	assert.Equal(t, "Website", projects[0].Name)
}

func TestClientSendsRequestWithoutTokenWhenSourceFails(t *testing.T) {
	t.Parallel()

	var authorization atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tokens := mocks.NewMockTokenSource(t)
	tokens.EXPECT().Token().Return("", errors.New("secret store offline")).Once()
	client := newTestClient(t, server.URL, WithTokenSource(tokens))

	require.NoError(t, client.Delete(context.Background(), "/tasks/3", nil))
	assert.Equal(t, "", authorization.Load())
}

func TestClientJSONBodySetsContentType(t *testing.T) {
	t.Parallel()

	var contentType, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = w.Write([]byte(`{"taskId":42,"projectId":1,"title":"Wireframes","status":"TODO"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var task domain.Task
	err := client.Post(context.Background(), "/tasks", domain.NewTask{ProjectID: 1, Title: "Wireframes"}, &task)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.JSONEq(t, `{"projectId":1,"title":"Wireframes"}`, body)
	assert.Equal(t, int64(42), task.TaskID)
}

func TestUnauthorizedResponseExpiresSessionAndRedirectsToLogin(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	navigator := &recordingNavigator{location: "/projects"}
	var rejected atomic.Int32
	client := newTestClient(t, server.URL,
		WithNavigator(navigator),
		WithSessionRejectedHook(func(context.Context) { rejected.Add(1) }),
	)

	err := client.Get(context.Background(), "/projects", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionRejected)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "token expired", apiErr.Message)

	assert.Equal(t, int32(1), rejected.Load())
	assert.Equal(t, []string{DefaultLoginPath}, navigator.visits)
}

func TestUnauthorizedOnLoginRouteDoesNotNavigateAgain(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	navigator := mocks.NewMockNavigator(t)
	navigator.EXPECT().Location().Return(DefaultLoginPath).Once()
	var rejected atomic.Int32
	client := newTestClient(t, server.URL,
		WithNavigator(navigator),
		WithSessionRejectedHook(func(context.Context) { rejected.Add(1) }),
	)

	err := client.Post(context.Background(), "/auth/login", domain.Credentials{Email: "a@b.c", Password: "bad"}, nil)
	require.ErrorIs(t, err, domain.ErrSessionRejected)
	assert.Equal(t, int32(1), rejected.Load())
}

func TestUnauthorizedCredentialsAttemptKeepsSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	}))
	defer server.Close()

	navigator := mocks.NewMockNavigator(t)
	var rejected atomic.Int32
	client := newTestClient(t, server.URL,
		WithNavigator(navigator),
		WithSessionRejectedHook(func(context.Context) { rejected.Add(1) }),
	)

	ctx := CredentialsAttempt(context.Background())
	err := client.Post(ctx, "/users/login", domain.Credentials{Email: "a@b.c", Password: "typo"}, nil)
	require.ErrorIs(t, err, domain.ErrSessionRejected)
	assert.ErrorContains(t, err, "bad credentials")
	assert.Equal(t, int32(0), rejected.Load())
}

func TestForbiddenResponseLogsWarningWithoutRedirect(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	logger, hook := logtest.NewNullLogger()
	navigator := &recordingNavigator{location: "/users"}
	client, err := New(Config{BaseURL: server.URL}, WithLogger(logger), WithNavigator(navigator))
	require.NoError(t, err)

	err = client.Get(context.Background(), "/users", nil)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, navigator.visits)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, "/users", entry.Data["path"])
		}
	}
	assert.True(t, warned)
}

func TestErrorStatusesMapToDomainSentinels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"error":"title is required"}`, want: domain.ErrValidation, message: "title is required"},
		{name: "not found", status: http.StatusNotFound, body: ``, want: domain.ErrValidation, message: "Not Found"},
		{name: "server", status: http.StatusInternalServerError, body: `boom`, want: domain.ErrBackend, message: "boom"},
		{name: "nested", status: http.StatusConflict, body: `{"errors":[{"message":"duplicate email"}]}`, want: domain.ErrValidation, message: "duplicate email"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			err := newTestClient(t, server.URL).Get(context.Background(), "/anything", nil)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestTransportFailureWrapsErrTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	err := newTestClient(t, baseURL).Get(context.Background(), "/projects", nil)
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "GET /projects")
}

func TestInvalidPayloadIsRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>`},
		{name: "missing id", body: `[{"name":"nameless"}]`},
		{name: "progress out of range", body: `[{"projectId":3,"progress":140}]`},
		{name: "empty", body: ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			var projects List[domain.Project]
			err := newTestClient(t, server.URL).Get(context.Background(), "/projects", &projects)
			require.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

func TestCSRFCookieIsMirroredIntoHeader(t *testing.T) {
	t.Parallel()

	var csrf []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		csrf = append(csrf, r.Header.Get(DefaultCSRFHeaderName))
		http.SetCookie(w, &http.Cookie{Name: DefaultCSRFCookieName, Value: "csrf-123", Path: "/"})
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	require.NoError(t, client.Get(context.Background(), "/auth/csrf", nil))
	require.NoError(t, client.Put(context.Background(), "/notifications/1/read", struct{}{}, nil))

	assert.Equal(t, []string{"", "csrf-123"}, csrf)
}

func TestUploadSendsMultipartForm(t *testing.T) {
	t.Parallel()

	var fields map[string]string
	var fileBody, fileName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = map[string]string{
			"projectId": r.FormValue("projectId"),
			"title":     r.FormValue("title"),
		}
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		raw, _ := io.ReadAll(file)
		fileBody = string(raw)
		fileName = header.Filename
		_, _ = w.Write([]byte(`{"deliverableId":9,"projectId":4,"title":"Mockups"}`))
	}))
	defer server.Close()

	var deliverable domain.Deliverable
	err := newTestClient(t, server.URL).Upload(context.Background(), "/deliverables/upload",
		map[string]string{"projectId": "4", "title": "Mockups"},
		FilePart{FileName: "mockups.pdf", Content: strings.NewReader("%PDF-1.7")},
		&deliverable,
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"projectId": "4", "title": "Mockups"}, fields)
	assert.Equal(t, "%PDF-1.7", fileBody)
	assert.Equal(t, "mockups.pdf", fileName)
	assert.Equal(t, int64(9), deliverable.DeliverableID)
}

func TestMetricsCountRequestsByStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	client := newTestClient(t, server.URL, WithMetrics(metrics))

	require.NoError(t, client.Get(context.Background(), "/ok", nil))
	require.NoError(t, client.Get(context.Background(), "/ok", nil))
	require.Error(t, client.Get(context.Background(), "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(http.MethodGet, "404")))
}

func TestTracingRecordsClientSpans(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	client := newTestClient(t, server.URL, WithTracerProvider(provider))

	require.ErrorIs(t, client.Get(context.Background(), "/projects", nil), domain.ErrBackend)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET", spans[0].Name())
	assert.Equal(t, "Error", spans[0].Status().Code.String())
}

func TestChainRunsFirstMiddlewareOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(req)
			})
		}
	}
	base := RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		order = append(order, "base")
		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: req}, nil
	})

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	_, err = Chain(base, mark("outer"), nil, mark("inner")).RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "base"}, order)
}
