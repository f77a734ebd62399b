// Package api is the single point through which every call to the AgroMaps
// backend passes. It owns bearer-token attachment and the transparent
// refresh-and-retry pipeline; feature code above it only sees typed results
// and typed errors.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/agromaps/agromaps-go/internal/client/store"
	"github.com/agromaps/agromaps-go/pkg/slogx"
)

const defaultTimeout = 15 * time.Second

// Config configures a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.agromaps.example/api".
	BaseURL string

	// HTTPClient is the underlying HTTP client. Leave nil for a default
	// with a sane timeout; pass one built by NewHTTPClient to get the
	// logging/rate-limit/breaker transport stack.
	HTTPClient *http.Client

	// Creds is the credential store the pipeline reads tokens from and
	// writes refreshed tokens to.
	Creds *store.Credentials

	// Logger receives pipeline events. Leave nil for slog.Default().
	Logger *slog.Logger
}

// Client is a configured API client. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	creds   *store.Credentials
	logger  *slog.Logger
}

// NewClient creates an API client for the given backend.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpClient,
		creds:   cfg.Creds,
		logger:  logger,
	}
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.baseURL + path
}

// log prefers a request-scoped logger carried in ctx over the client's own.
func (c *Client) log(ctx context.Context) *slog.Logger {
	return slogx.FromContextOr(ctx, c.logger)
}
