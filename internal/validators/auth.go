package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/veepo/models"
)

// validateCredentials validates sign-up and sign-in bodies.
//
// Default validated fields (when none specified): Email, Password.
// Sign-in passes FieldEmail and FieldPasswordPresent so that accounts
// created under an older policy can still log in.
func (v *DomainValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(c.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := checkPassword(c.Password); err != nil {
				return err
			}
		case FieldPasswordPresent:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePasswordChange only knows FieldPassword.
func (v *DomainValidator) validatePasswordChange(ctx context.Context, p models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if err := checkPassword(p.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < models.MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// isEmail accepts a bare address ("a@b.c"), rejecting display-name forms.
func isEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
