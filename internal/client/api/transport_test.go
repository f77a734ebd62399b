package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agromaps/agromaps-go/internal/client/api"
	"github.com/agromaps/agromaps-go/internal/client/store"
	"github.com/agromaps/agromaps-go/internal/client/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTransportStackTagsRequests(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"maria"}`))
	}))
	t.Cleanup(srv.Close)

	creds := store.NewCredentials(memory.NewStore())
	client := api.NewClient(api.Config{
		BaseURL:    srv.URL,
		HTTPClient: api.NewHTTPClient(api.TransportConfig{}, quietLogger()),
		Creds:      creds,
	})

	_, err := client.Profile(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, gotReqID, "every outbound request carries a request id")
}

func TestBreakerFailsFastAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // guaranteed transport failures from here on

	creds := store.NewCredentials(memory.NewStore())
	client := api.NewClient(api.Config{
		BaseURL: srv.URL,
		HTTPClient: api.NewHTTPClient(api.TransportConfig{
			BreakerMaxFailures: 2,
			RequestsPerSecond:  1000,
			Burst:              1000,
		}, quietLogger()),
		Creds: creds,
	})

	// Every failure surfaces as a connection error regardless of whether it
	// came from a dial attempt or the open breaker.
	for i := 0; i < 2; i++ {
		_, err := client.Profile(ctx)
		require.ErrorIs(t, err, api.ErrConnection)
	}

	// Threshold reached: the breaker now rejects without dialing.
	_, err := client.Profile(ctx)
	require.ErrorIs(t, err, api.ErrConnection)
	require.Contains(t, err.Error(), "circuit breaker is open")
}
