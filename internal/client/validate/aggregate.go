package validate

import "strings"

// LoginData is raw login form input.
type LoginData struct {
	UsernameOrEmail string
	Password        string
}

// LoginResult aggregates login-form validation. Sanitized fields are only
// populated for fields that individually passed.
type LoginResult struct {
	Valid     bool
	Errors    []string
	Sanitized LoginData
}

// Login validates a login form. The identifier may be a username or an
// email, so only presence and trimming are enforced; the server decides
// which it was.
func Login(data LoginData) LoginResult {
	var res LoginResult

	if identifier := strings.TrimSpace(data.UsernameOrEmail); identifier == "" {
		res.Errors = append(res.Errors, "username or email is required")
	} else {
		res.Sanitized.UsernameOrEmail = identifier
	}

	if data.Password == "" {
		res.Errors = append(res.Errors, "password is required")
	} else {
		res.Sanitized.Password = data.Password
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// RegistrationData is raw registration form input.
type RegistrationData struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
}

// RegistrationResult aggregates registration-form validation. Every field
// validator runs; nothing short-circuits, so the caller sees all violations
// at once. Sanitized fields are only populated for fields that individually
// passed; the confirmation is an equality check and is never carried over.
type RegistrationResult struct {
	Valid     bool
	Errors    []string
	Sanitized RegistrationData
}

// Registration validates a registration form.
func Registration(data RegistrationData) RegistrationResult {
	var res RegistrationResult

	if r := Username(data.Username); r.Valid {
		res.Sanitized.Username = r.Sanitized
	} else {
		res.Errors = append(res.Errors, r.Errors...)
	}

	if r := Email(data.Email); r.Valid {
		res.Sanitized.Email = r.Sanitized
	} else {
		res.Errors = append(res.Errors, r.Errors...)
	}

	if r := Password(data.Password); r.Valid {
		res.Sanitized.Password = r.Sanitized
	} else {
		res.Errors = append(res.Errors, r.Errors...)
	}

	if r := PasswordConfirm(data.Password, data.PasswordConfirm); !r.Valid {
		res.Errors = append(res.Errors, r.Errors...)
	}

	if r := Name(data.FirstName, "first name"); r.Valid {
		res.Sanitized.FirstName = r.Sanitized
	} else {
		res.Errors = append(res.Errors, r.Errors...)
	}

	if r := Name(data.LastName, "last name"); r.Valid {
		res.Sanitized.LastName = r.Sanitized
	} else {
		res.Errors = append(res.Errors, r.Errors...)
	}

	res.Valid = len(res.Errors) == 0
	return res
}
