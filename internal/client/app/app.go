// Package app wires the AgroMaps client together: configuration, logging,
// the credential store, the API client, and the session manager, plus the
// CLI command surface on top.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/agromaps/agromaps-go/internal/client/api"
	"github.com/agromaps/agromaps-go/internal/client/session"
	"github.com/agromaps/agromaps-go/internal/client/store"
	"github.com/agromaps/agromaps-go/internal/client/store/drivers/memory"
	"github.com/agromaps/agromaps-go/internal/client/store/drivers/sqlite"
	"github.com/agromaps/agromaps-go/pkg/cryptox"
	"github.com/agromaps/agromaps-go/pkg/slogx"
)

const Version = "0.1.0"

// Application holds the wired client. Everything hangs off this struct; there
// are no package-level singletons to initialise in the right order.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Creds   *store.Credentials
	API     *api.Client
	Session *session.Manager

	kv store.KV
}

// New builds the application from configuration. The credential store is
// opened (and migrated, for sqlite) before anything touches the network.
func New(cfg Config) (*Application, error) {
	logger := slogx.New(slogx.Config{
		Service: "agromaps",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	kv, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}

	if cfg.SealKeyFile != "" {
		key, err := cryptox.LoadKey(cfg.SealKeyFile)
		if err != nil {
			kv.Close()
			return nil, fmt.Errorf("load seal key: %w", err)
		}
		kv = store.NewSealed(kv, key)
		logger.Debug("credential sealing enabled")
	}

	creds := store.NewCredentials(kv)

	httpClient := api.NewHTTPClient(api.TransportConfig{
		Timeout:            cfg.HTTPTimeout,
		RequestsPerSecond:  cfg.RequestsPerSecond,
		Burst:              cfg.RequestBurst,
		BreakerMaxFailures: uint32(cfg.BreakerMaxFailures),
		BreakerOpenFor:     cfg.BreakerOpenFor,
	}, logger)

	client := api.NewClient(api.Config{
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
		Creds:      creds,
		Logger:     logger,
	})

	mgr := session.NewManager(client, creds, consoleNavigator{}, logger)

	logger.Debug("application wired",
		"base_url", cfg.BaseURL,
		"store", cfg.StoreDriver,
		"sealed", cfg.SealKeyFile != "",
	)

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Creds:   creds,
		API:     client,
		Session: mgr,
		kv:      kv,
	}, nil
}

// Close releases the session manager and the credential store.
func (a *Application) Close() error {
	a.Session.Teardown()
	return a.kv.Close()
}

func openStore(cfg Config) (store.KV, error) {
	switch cfg.StoreDriver {
	case "memory":
		return memory.NewStore(), nil

	case "sqlite":
		if err := os.MkdirAll(filepath.Dir(cfg.CredentialsFile), 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		st, err := sqlite.NewStore(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		if err := st.ApplyMigrations(); err != nil {
			st.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return st, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// consoleNavigator is the CLI's stand-in for screen navigation: ending a
// session just tells the user how to get back in.
type consoleNavigator struct{}

func (consoleNavigator) NavigateToLogin() {
	fmt.Fprintln(os.Stderr, "Signed out. Run `agromaps login` to sign in again.")
}
