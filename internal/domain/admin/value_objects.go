package admin

import (
	"regexp"
	"strings"

	"weekend-booking/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.NewReason(errs.ErrValidation, "invalid_email", "invalid email format")
	ErrPasswordTooWeak    = errs.NewReason(errs.ErrValidation, "weak_password", "password must be at least 8 characters long")
	ErrInvalidCredentials = errs.NewReason(errs.ErrUnauthorized, "invalid_credentials", "invalid email or password")
)

const minPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases s before matching.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

// NewCredentials never reveals which half was malformed.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: Password{value: passwordStr}}, nil
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
