// Package jwtx inspects access tokens issued by the AgroMaps backend.
//
// The client never validates token signatures; tokens are opaque bearer
// credentials minted and verified server-side. Parsing here is strictly
// unverified and is only used to read public claims such as expiry for
// display and for deciding how soon a refresh is likely.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed reports a token that is not a decodable JWT.
var ErrMalformed = errors.New("jwtx: malformed token")

// Claims are the access-token claims the client cares about. Additive only,
// the backend may include more than we read.
type Claims struct {
	jwt.RegisteredClaims

	// Username for the authenticated user
	Username string `json:"username,omitempty"`

	// Role name as assigned server-side (user, admin, staff)
	Role string `json:"role,omitempty"`
}

// Inspect decodes a token without verifying its signature and returns its
// claims. A non-JWT token (including an empty string) returns ErrMalformed.
func Inspect(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMalformed
	}

	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, ErrMalformed
	}

	return &claims, nil
}

// ExpiresAt returns the expiry timestamp, or the zero time when the token
// carries no exp claim.
func (c *Claims) ExpiresAt() time.Time {
	if c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}
	}
	return c.RegisteredClaims.ExpiresAt.Time
}

// ExpiresWithin reports whether the token expires inside the given window,
// measured from now. Tokens without an exp claim never report true; the
// server remains the authority and will answer 401 regardless.
func (c *Claims) ExpiresWithin(window time.Duration) bool {
	exp := c.ExpiresAt()
	if exp.IsZero() {
		return false
	}
	return time.Until(exp) <= window
}

// Expired reports whether the token's exp claim is in the past.
func (c *Claims) Expired() bool {
	return c.ExpiresWithin(0)
}
