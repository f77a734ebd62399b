package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/agromaps/agromaps-go/internal/client/domain"
	"github.com/agromaps/agromaps-go/pkg/slogx"
)

// Credentials is the typed layer over a KV driver. Reads fail open: a
// storage-layer read error is logged and reported as absent, so the worst
// outcome is a logged-out state. Writes propagate errors because silently
// losing a fresh login's tokens would leave the user believing they are
// signed in with nothing retrievable after a restart.
type Credentials struct {
	kv KV
}

// NewCredentials wraps a KV driver.
func NewCredentials(kv KV) *Credentials {
	return &Credentials{kv: kv}
}

// SaveTokens persists the access/refresh pair as a unit (login, register).
func (c *Credentials) SaveTokens(ctx context.Context, access, refresh string) error {
	if err := c.kv.Set(ctx, KeyAccessToken, []byte(access)); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := c.kv.Set(ctx, KeyRefreshToken, []byte(refresh)); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// SaveAccessToken replaces only the access token; the refresh token and
// cached profile stay untouched. This is the refresh-grant path.
func (c *Credentials) SaveAccessToken(ctx context.Context, access string) error {
	if err := c.kv.Set(ctx, KeyAccessToken, []byte(access)); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token, or "" when absent or
// unreadable.
func (c *Credentials) AccessToken(ctx context.Context) string {
	return c.readString(ctx, KeyAccessToken)
}

// RefreshToken returns the stored refresh token, or "" when absent or
// unreadable.
func (c *Credentials) RefreshToken(ctx context.Context) string {
	return c.readString(ctx, KeyRefreshToken)
}

// Tokens returns the stored token pair.
func (c *Credentials) Tokens(ctx context.Context) domain.Credentials {
	return domain.Credentials{
		AccessToken:  c.AccessToken(ctx),
		RefreshToken: c.RefreshToken(ctx),
	}
}

// SaveProfile caches the user profile JSON-encoded.
func (c *Credentials) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := c.kv.Set(ctx, KeyUserProfile, data); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Profile returns the cached user profile, or nil when absent, unreadable or
// undecodable. A corrupt cached profile is treated the same as a missing one.
func (c *Credentials) Profile(ctx context.Context) *domain.UserProfile {
	data, err := c.kv.Get(ctx, KeyUserProfile)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slogx.FromContext(ctx).Warn("credential read failed, treating as absent",
				"key", KeyUserProfile, "error", err)
		}
		return nil
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		slogx.FromContext(ctx).Warn("cached profile undecodable, treating as absent",
			"error", err)
		return nil
	}
	return &profile
}

// Clear removes tokens and profile together.
func (c *Credentials) Clear(ctx context.Context) error {
	if err := c.kv.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (c *Credentials) readString(ctx context.Context, key string) string {
	data, err := c.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slogx.FromContext(ctx).Warn("credential read failed, treating as absent",
				"key", key, "error", err)
		}
		return ""
	}
	return string(data)
}
