package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/agromaps/agromaps-go/internal/client/api"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	t.Parallel()

	err := &api.Error{
		StatusCode: http.StatusBadRequest,
		Code:       "validation_error",
		Detail:     "invalid input",
		Fields: map[string][]string{
			"username": {"too short"},
			"email":    {"already registered", "format invalid"},
		},
	}

	// Field output is sorted so messages are stable for logs and assertions.
	require.Equal(t,
		"api error 400 (validation_error): invalid input; email: already registered, format invalid; username: too short",
		err.Error())
}

func TestErrorStringMinimal(t *testing.T) {
	t.Parallel()

	err := &api.Error{StatusCode: http.StatusInternalServerError}
	require.Equal(t, "api error 500", err.Error())
}

func TestIsStatusMatchesWrappedErrors(t *testing.T) {
	t.Parallel()

	inner := &api.Error{StatusCode: http.StatusUnauthorized}
	wrapped := fmt.Errorf("fetching profile: %w", inner)

	require.True(t, api.IsUnauthorized(wrapped))
	require.True(t, api.IsStatus(wrapped, http.StatusUnauthorized))
	require.False(t, api.IsStatus(wrapped, http.StatusForbidden))
	require.False(t, api.IsUnauthorized(fmt.Errorf("plain")))
}
