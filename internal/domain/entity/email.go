package entity

import (
	"encoding/json"
	"regexp"
	"strings"

	domainerrors "usersvc/internal/domain/errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated, lowercased email address. The zero value is the empty address.
type Email struct {
	value string
}

// NewEmail validates raw against the local@domain.tld shape and lowercases it.
func NewEmail(raw string) (Email, error) {
	if err := validation.Validate(strings.TrimSpace(raw), validation.Required); err != nil {
		return Email{}, domainerrors.ErrEmailRequired
	}

	if err := validation.Validate(raw, validation.Match(emailPattern)); err != nil {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: strings.ToLower(raw)}, nil
}

// RestoreEmail rebuilds an Email from storage, where it was validated on the way in.
func RestoreEmail(stored string) Email {
	return Email{value: strings.ToLower(stored)}
}

func (e Email) String() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value)
}

func (e *Email) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	email, err := NewEmail(raw)
	if err != nil {
		return err
	}
	*e = email

	return nil
}
