package validate_test

import (
	"testing"

	"github.com/agromaps/agromaps-go/internal/client/validate"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid email is trimmed and lowercased", func(t *testing.T) {
		t.Parallel()

		res := validate.Email("  Maria.Lopez@Example.COM  ")
		require.True(t, res.Valid)
		require.Empty(t, res.Errors)
		require.Equal(t, "maria.lopez@example.com", res.Sanitized)
	})

	t.Run("empty email is required", func(t *testing.T) {
		t.Parallel()

		res := validate.Email("")
		require.False(t, res.Valid)
		require.Contains(t, res.Errors, "email is required")
	})

	t.Run("malformed emails are rejected", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"no-at-sign", "two@@example.com", "spaces in@example.com", "missing@tld"} {
			res := validate.Email(raw)
			require.False(t, res.Valid, "expected %q to be invalid", raw)
		}
	})

	t.Run("sanitizing is idempotent", func(t *testing.T) {
		t.Parallel()

		first := validate.Email("  User@Example.com ")
		require.True(t, first.Valid)

		second := validate.Email(first.Sanitized)
		require.True(t, second.Valid)
		require.Equal(t, first.Sanitized, second.Sanitized)
	})
}

func TestUsername(t *testing.T) {
	t.Parallel()

	t.Run("valid username is lowercased", func(t *testing.T) {
		t.Parallel()

		res := validate.Username(" Agro_Dev42 ")
		require.True(t, res.Valid)
		require.Equal(t, "agro_dev42", res.Sanitized)
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()

		res := validate.Username("ab")
		require.False(t, res.Valid)
		require.Contains(t, res.Errors, "username must be at least 3 characters")
	})

	t.Run("invalid characters", func(t *testing.T) {
		t.Parallel()

		res := validate.Username("maría!")
		require.False(t, res.Valid)
	})

	t.Run("short and invalid reports both violations", func(t *testing.T) {
		t.Parallel()

		res := validate.Username("a!")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
	})
}

func TestPassword(t *testing.T) {
	t.Parallel()

	t.Run("strong password passes unchanged", func(t *testing.T) {
		t.Parallel()

		res := validate.Password("  Str0ng!pass  ")
		require.True(t, res.Valid)
		// Passwords are never trimmed or transformed.
		require.Equal(t, "  Str0ng!pass  ", res.Sanitized)
	})

	t.Run("weak password reports every missing class", func(t *testing.T) {
		t.Parallel()

		res := validate.Password("weak")
		require.False(t, res.Valid)
		// Too short, no uppercase, no digit, no symbol.
		require.Len(t, res.Errors, 4)
	})

	t.Run("symbol must come from the allowed set", func(t *testing.T) {
		t.Parallel()

		res := validate.Password("Passw0rd#")
		require.False(t, res.Valid)
		require.Contains(t, res.Errors, "password must contain at least one of @$!%*?&")

		res = validate.Password("Passw0rd&")
		require.True(t, res.Valid)
	})

	t.Run("length is counted in runes", func(t *testing.T) {
		t.Parallel()

		res := validate.Password("Añ0?bcde")
		require.True(t, res.Valid)
	})
}

func TestPasswordConfirm(t *testing.T) {
	t.Parallel()

	res := validate.PasswordConfirm("Secret1!", "Secret1!")
	require.True(t, res.Valid)

	res = validate.PasswordConfirm("Secret1!", "secret1!")
	require.False(t, res.Valid)
	require.Contains(t, res.Errors, "passwords do not match")

	res = validate.PasswordConfirm("Secret1!", "")
	require.False(t, res.Valid)
	require.Contains(t, res.Errors, "password confirmation is required")
}

func TestName(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace and capitalizes", func(t *testing.T) {
		t.Parallel()

		res := validate.Name("  maría   josé ", "first name")
		require.True(t, res.Valid)
		require.Equal(t, "María josé", res.Sanitized)
	})

	t.Run("accented latin letters are allowed", func(t *testing.T) {
		t.Parallel()

		res := validate.Name("Núñez", "last name")
		require.True(t, res.Valid)
		require.Equal(t, "Núñez", res.Sanitized)
	})

	t.Run("digits and punctuation are rejected", func(t *testing.T) {
		t.Parallel()

		res := validate.Name("J0hn", "first name")
		require.False(t, res.Valid)
		require.Contains(t, res.Errors, "first name may only contain letters and spaces")
	})

	t.Run("field name appears in messages", func(t *testing.T) {
		t.Parallel()

		res := validate.Name("", "last name")
		require.False(t, res.Valid)
		require.Contains(t, res.Errors, "last name is required")
	})

	t.Run("sanitizing is idempotent", func(t *testing.T) {
		t.Parallel()

		first := validate.Name("  ana   sofía ", "first name")
		require.True(t, first.Valid)

		second := validate.Name(first.Sanitized, "first name")
		require.True(t, second.Valid)
		require.Equal(t, first.Sanitized, second.Sanitized)
	})
}
