package api

import (
	"context"
	"net/http"

	"github.com/agromaps/agromaps-go/internal/client/domain"
)

// Login authenticates with a username or email plus password. On success the
// returned tokens and profile are persisted to the credential store as a
// unit; a persistence failure is returned even though the server accepted
// the login, because tokens that cannot be saved are tokens the user loses
// on the next restart.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}

	if err := c.persistAuth(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The backend returns tokens immediately, so a
// successful registration leaves the client logged in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}

	if err := c.persistAuth(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) persistAuth(ctx context.Context, auth *AuthResponse) error {
	if err := c.creds.SaveTokens(ctx, auth.Access, auth.Refresh); err != nil {
		return err
	}
	return c.creds.SaveProfile(ctx, &auth.User)
}

// Logout tells the backend to end the session. The body is ignored; local
// cleanup is the session manager's job and happens regardless of the result
// here.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile edits the authenticated user's profile and returns the
// updated copy.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, "/auth/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.doJSON(ctx, http.MethodPatch, "/auth/change-password", req, nil)
}
