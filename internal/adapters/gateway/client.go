// Package gateway is the single chokepoint for backend calls. It owns the base URL, default
// headers, the cookie jar and the middleware chain that attaches credentials and reacts to
// rejected sessions.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"sort"
	"strings"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const maxResponseBytes = 8 << 20

type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	logger  *logrus.Entry
}

type Option func(*options)

type options struct {
	tokens     ports.TokenSource
	navigator  ports.Navigator
	onRejected func(context.Context)
	logger     *logrus.Logger
	transport  http.RoundTripper
	metrics    *Metrics
	tracer     trace.TracerProvider
	extra      []Middleware
}

func WithTokenSource(source ports.TokenSource) Option {
	return func(o *options) { o.tokens = source }
}

func WithNavigator(navigator ports.Navigator) Option {
	return func(o *options) { o.navigator = navigator }
}

// WithSessionRejectedHook registers the callback run when the backend answers 401.
func WithSessionRejectedHook(fn func(context.Context)) Option {
	return func(o *options) { o.onRejected = fn }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithTransport(transport http.RoundTripper) Option {
	return func(o *options) { o.transport = transport }
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(o *options) { o.tracer = provider }
}

func WithMiddleware(middlewares ...Middleware) Option {
	return func(o *options) { o.extra = append(o.extra, middlewares...) }
}

func New(cfg Config, optFns ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("gateway config: %w", err)
	}

	var opts options
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.logger == nil {
		opts.logger = logrus.StandardLogger()
	}
	logger := opts.logger.WithField("component", "gateway")

	var jar http.CookieJar
	if cfg.IncludeCredentials {
		cookies, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		jar = cookies
	}

	guard := authGuard{
		navigator:  opts.navigator,
		loginPath:  cfg.LoginPath,
		onRejected: opts.onRejected,
		logger:     logger,
	}

	middlewares := make([]Middleware, 0, 8+len(opts.extra))
	if cfg.RateLimit > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if opts.tracer != nil {
		middlewares = append(middlewares, Tracing(opts.tracer))
	}
	if opts.metrics != nil {
		middlewares = append(middlewares, opts.metrics.middleware)
	}
	middlewares = append(middlewares,
		RequestID(),
		DefaultHeaders(cfg.ContentType, cfg.UserAgent),
		CSRF(jar, cfg.CSRFCookieName, cfg.CSRFHeaderName),
		Bearer(opts.tokens, logger),
	)
	middlewares = append(middlewares, opts.extra...)
	middlewares = append(middlewares, guard.middleware)

	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http: &http.Client{
			Transport: Chain(opts.transport, middlewares...),
			Jar:       jar,
			Timeout:   cfg.Timeout,
		},
		logger: logger,
	}, nil
}

func (c *Client) Config() Config {
	return c.cfg
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do issues one request. body is JSON-encoded when non-nil; out, when non-nil, receives the decoded
// JSON response and is validated if it implements Validate() error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
		contentType = c.cfg.ContentType
	}

	return c.send(ctx, method, path, reader, contentType, out)
}

type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}

// Upload posts a multipart form made of fields plus one file part.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, file FilePart, out any) error {
	if file.Content == nil {
		return fmt.Errorf("POST %s: upload content is required", path)
	}
	if file.Field == "" {
		file.Field = "file"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, fields[key]); err != nil {
			return fmt.Errorf("POST %s: write form field %q: %w", path, key, err)
		}
	}

	part, err := writer.CreateFormFile(file.Field, file.FileName)
	if err != nil {
		return fmt.Errorf("POST %s: create file part: %w", path, err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("POST %s: copy file content: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("POST %s: close multipart body: %w", path, err)
	}

	return c.send(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return fmt.Errorf("%s %s: create request: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w: %w", method, path, domain.ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(method, path, resp.StatusCode, payload)
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug(apiErr.Message)
		return apiErr
	}

	if err := decodePayload(payload, out); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return nil
}

func (c *Client) resolve(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

type validator interface {
	Validate() error
}

func decodePayload(payload []byte, out any) error {
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("%w: empty response body", domain.ErrInvalidPayload)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrInvalidPayload, err)
	}

	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			if errors.Is(err, domain.ErrInvalidPayload) {
				return err
			}
			return fmt.Errorf("%w: %w", domain.ErrInvalidPayload, err)
		}
	}

	return nil
}

// List decodes a JSON array whose elements validate themselves.
type List[T validator] []T

func (l *List[T]) Validate() error {
	if l == nil {
		return nil
	}
	for i, item := range *l {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}
