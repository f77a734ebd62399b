package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/agromaps/agromaps-go/internal/client/domain"
)

// Admin-only user management. The backend enforces the role; the client just
// forwards the calls and surfaces 403s like any other api error.

// ListUsers returns the user listing.
func (c *Client) ListUsers(ctx context.Context) (*UserListResponse, error) {
	var out UserListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/users", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/auth/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser edits a user account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/auth/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/auth/users/%d", id), nil, nil)
}

// ChangeUserRole reassigns a user's role.
func (c *Client) ChangeUserRole(ctx context.Context, id int64, role domain.Role) (*domain.UserProfile, error) {
	var out domain.UserProfile
	path := fmt.Sprintf("/auth/users/%d/change-role", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, ChangeRoleRequest{Role: role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserStats returns aggregate user-base statistics.
func (c *Client) UserStats(ctx context.Context) (*domain.UserStats, error) {
	var out domain.UserStats
	if err := c.doJSON(ctx, http.MethodGet, "/auth/stats/users", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
