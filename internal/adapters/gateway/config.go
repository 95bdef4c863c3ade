package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL        = "http://localhost:8080/api"
	DefaultContentType    = "application/json"
	DefaultCSRFCookieName = "XSRF-TOKEN"
	DefaultCSRFHeaderName = "X-XSRF-TOKEN"
	DefaultLoginPath      = "/auth/login"
	DefaultUserAgent      = "portal-cli"
)

// Config is fixed once the client is built.
type Config struct {
	BaseURL            string
	ContentType        string
	IncludeCredentials bool
	CSRFCookieName     string
	CSRFHeaderName     string
	LoginPath          string
	UserAgent          string
	// Timeout bounds a whole request; zero leaves the transport default in place.
	Timeout time.Duration
	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int
}

func DefaultConfig() Config {
	return Config{
		BaseURL:            DefaultBaseURL,
		ContentType:        DefaultContentType,
		IncludeCredentials: true,
		CSRFCookieName:     DefaultCSRFCookieName,
		CSRFHeaderName:     DefaultCSRFHeaderName,
		LoginPath:          DefaultLoginPath,
		UserAgent:          DefaultUserAgent,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.ContentType == "" {
		c.ContentType = defaults.ContentType
	}
	if c.CSRFCookieName == "" {
		c.CSRFCookieName = defaults.CSRFCookieName
	}
	if c.CSRFHeaderName == "" {
		c.CSRFHeaderName = defaults.CSRFHeaderName
	}
	if c.LoginPath == "" {
		c.LoginPath = defaults.LoginPath
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		c.RateBurst = 1
	}

	return c
}

func (c Config) validate() error {
	parsed, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("base url host is required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return errors.New("rate limit must not be negative")
	}

	return nil
}
