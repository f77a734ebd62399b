package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/agromaps/agromaps-go/pkg/slogx"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// TransportConfig tunes the client-side transport stack. Zero values select
// the defaults below.
type TransportConfig struct {
	// Timeout bounds a whole exchange including body read.
	Timeout time.Duration

	// RequestsPerSecond caps outbound throughput. The backend is a shared
	// multi-tenant API; the client stays polite even when a screen refreshes
	// aggressively.
	RequestsPerSecond float64

	// Burst allows short bursts above the sustained rate.
	Burst int

	// BreakerMaxFailures is the consecutive-failure count that opens the
	// circuit.
	BreakerMaxFailures uint32

	// BreakerOpenFor is how long the circuit stays open before probing again.
	BreakerOpenFor time.Duration
}

func (cfg TransportConfig) withDefaults() TransportConfig {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}
	if cfg.BreakerOpenFor <= 0 {
		cfg.BreakerOpenFor = 30 * time.Second
	}
	return cfg
}

// NewHTTPClient builds the layered HTTP client used for every API call:
// request logging with request ids, a client-side rate limiter, and a
// circuit breaker that fails fast while the backend is down. Breaker-open
// and limiter errors surface through the pipeline as connection errors.
func NewHTTPClient(cfg TransportConfig, logger *slog.Logger) *http.Client {
	cfg = cfg.withDefaults()

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "agromaps-api",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	transport := &breakerTransport{
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		base: &slogx.Transport{
			Base:   http.DefaultTransport,
			Logger: logger,
		},
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}

// breakerTransport gates dispatch behind the rate limiter and the circuit
// breaker. HTTP responses count as successes whatever their status; only
// transport failures trip the breaker, a 4xx/5xx stream is the pipeline's
// problem, not the network's.
type breakerTransport struct {
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	base    http.RoundTripper
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	result, err := t.breaker.Execute(func() (any, error) {
		return t.base.RoundTrip(req)
	})
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	return result.(*http.Response), nil
}
