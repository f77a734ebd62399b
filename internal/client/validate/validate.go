// Package validate holds the pure input validators run before anything is
// submitted to the backend. Sanitization and validation happen together:
// a passing result carries the normalized value that should be sent, an
// aggregate result carries every violation at once so a form can show all
// of them in a single pass.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 30
	passwordMinLen = 8
	nameMinLen     = 2
	nameMaxLen     = 50

	// passwordSymbols is the fixed punctuation set a password must draw
	// from. Matches what the backend enforces.
	passwordSymbols = "@$!%*?&"
)

var (
	// Deliberately permissive: local@domain.tld shape only, no RFC 5322.
	reEmail    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	reUsername = regexp.MustCompile(`^[a-z0-9_]+$`)
	// Letters including accented Latin, plus single spaces.
	reName = regexp.MustCompile(`^[\p{Latin} ]+$`)

	reInnerSpace = regexp.MustCompile(`\s+`)
)

// Result is the outcome of a single-field validator. Sanitized is only
// meaningful when Valid is true.
type Result struct {
	Valid     bool
	Errors    []string
	Sanitized string
}

func ok(sanitized string) Result {
	return Result{Valid: true, Sanitized: sanitized}
}

func fail(errs ...string) Result {
	return Result{Errors: errs}
}

// Email trims, lowercases and shape-checks an email address.
func Email(raw string) Result {
	if raw == "" {
		return fail("email is required")
	}

	sanitized := strings.ToLower(strings.TrimSpace(raw))
	if !reEmail.MatchString(sanitized) {
		return fail("email format is invalid")
	}
	return ok(sanitized)
}

// Username trims and lowercases a username and enforces length and charset.
func Username(raw string) Result {
	if raw == "" {
		return fail("username is required")
	}

	sanitized := strings.ToLower(strings.TrimSpace(raw))

	var errs []string
	if len(sanitized) < usernameMinLen {
		errs = append(errs, fmt.Sprintf("username must be at least %d characters", usernameMinLen))
	}
	if len(sanitized) > usernameMaxLen {
		errs = append(errs, fmt.Sprintf("username must be at most %d characters", usernameMaxLen))
	}
	if sanitized != "" && !reUsername.MatchString(sanitized) {
		errs = append(errs, "username may only contain letters, digits and underscores")
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok(sanitized)
}

// Password enforces strength requirements. Passwords are never transformed;
// the sanitized value is the input byte-for-byte so the exact characters the
// user typed reach the server.
func Password(raw string) Result {
	if raw == "" {
		return fail("password is required")
	}

	var errs []string
	if utf8.RuneCountInString(raw) < passwordMinLen {
		errs = append(errs, fmt.Sprintf("password must be at least %d characters", passwordMinLen))
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasLower {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if !hasUpper {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain at least one digit")
	}
	if !hasSymbol {
		errs = append(errs, fmt.Sprintf("password must contain at least one of %s", passwordSymbols))
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok(raw)
}

// PasswordConfirm checks equality against the already-validated password.
// It makes no independent strength check.
func PasswordConfirm(password, confirm string) Result {
	if confirm == "" {
		return fail("password confirmation is required")
	}
	if password != confirm {
		return fail("passwords do not match")
	}
	return Result{Valid: true}
}

// Name trims, collapses internal whitespace and title-cases a first or last
// name. fieldName appears in messages so a form can tell the two apart.
func Name(raw, fieldName string) Result {
	if raw == "" {
		return fail(fieldName + " is required")
	}

	sanitized := reInnerSpace.ReplaceAllString(strings.TrimSpace(raw), " ")
	sanitized = capitalize(sanitized)

	var errs []string
	if utf8.RuneCountInString(sanitized) < nameMinLen {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters", fieldName, nameMinLen))
	}
	if utf8.RuneCountInString(sanitized) > nameMaxLen {
		errs = append(errs, fmt.Sprintf("%s must be at most %d characters", fieldName, nameMaxLen))
	}
	if sanitized != "" && !reName.MatchString(sanitized) {
		errs = append(errs, fieldName+" may only contain letters and spaces")
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok(sanitized)
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
