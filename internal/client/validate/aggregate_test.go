package validate_test

import (
	"testing"

	"github.com/agromaps/agromaps-go/internal/client/validate"
	"github.com/stretchr/testify/require"
)

func TestLoginAggregate(t *testing.T) {
	t.Parallel()

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()

		res := validate.Login(validate.LoginData{
			UsernameOrEmail: "  agro_dev ",
			Password:        "whatever",
		})
		require.True(t, res.Valid)
		require.Equal(t, "agro_dev", res.Sanitized.UsernameOrEmail)
		require.Equal(t, "whatever", res.Sanitized.Password)
	})

	t.Run("both fields missing reports both", func(t *testing.T) {
		t.Parallel()

		res := validate.Login(validate.LoginData{UsernameOrEmail: "   "})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
	})

	t.Run("password is not strength checked at login", func(t *testing.T) {
		t.Parallel()

		res := validate.Login(validate.LoginData{
			UsernameOrEmail: "dev@example.com",
			Password:        "old",
		})
		require.True(t, res.Valid)
	})
}

func TestRegistrationAggregate(t *testing.T) {
	t.Parallel()

	valid := validate.RegistrationData{
		Username:        "Maria_Lopez",
		Email:           " Maria@Example.com ",
		Password:        "Str0ng!pass",
		PasswordConfirm: "Str0ng!pass",
		FirstName:       "  maría ",
		LastName:        "lópez",
	}

	t.Run("valid form sanitizes every field", func(t *testing.T) {
		t.Parallel()

		res := validate.Registration(valid)
		require.True(t, res.Valid)
		require.Empty(t, res.Errors)
		require.Equal(t, "maria_lopez", res.Sanitized.Username)
		require.Equal(t, "maria@example.com", res.Sanitized.Email)
		require.Equal(t, "Str0ng!pass", res.Sanitized.Password)
		require.Equal(t, "María", res.Sanitized.FirstName)
		require.Equal(t, "López", res.Sanitized.LastName)
		// The confirmation is an equality check only and is never echoed back.
		require.Empty(t, res.Sanitized.PasswordConfirm)
	})

	t.Run("every violation is reported in one pass", func(t *testing.T) {
		t.Parallel()

		res := validate.Registration(validate.RegistrationData{
			Username:        "a!",
			Email:           "not-an-email",
			Password:        "weak",
			PasswordConfirm: "different",
			FirstName:       "",
			LastName:        "X9",
		})
		require.False(t, res.Valid)

		// Username: short + charset. Email: format. Password: four strength
		// violations. Confirm: mismatch. First name: required. Last name: charset.
		require.GreaterOrEqual(t, len(res.Errors), 9)
		require.Contains(t, res.Errors, "email format is invalid")
		require.Contains(t, res.Errors, "passwords do not match")
		require.Contains(t, res.Errors, "first name is required")
	})

	t.Run("weak password alone yields all strength errors", func(t *testing.T) {
		t.Parallel()

		data := valid
		data.Password = "weak"
		data.PasswordConfirm = "weak"

		res := validate.Registration(data)
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 4)
		require.Empty(t, res.Sanitized.Password)
	})

	t.Run("failing fields leave sanitized empty, passing fields still sanitize", func(t *testing.T) {
		t.Parallel()

		data := valid
		data.Email = "broken"

		res := validate.Registration(data)
		require.False(t, res.Valid)
		require.Empty(t, res.Sanitized.Email)
		require.Equal(t, "maria_lopez", res.Sanitized.Username)
	})
}
