package utils

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MinPasswordLength is the shortest password accepted for a new patient account.
const MinPasswordLength = 6

var (
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters long")
	ErrInvalidDate      = errors.New("appointment_date must be a valid date and time")
)

// ValidateNewAccountPassword enforces the minimum password length for accounts
// created during public booking. An absent password counts as too short.
func ValidateNewAccountPassword(password string) error {
	return validation.Validate(password,
		validation.Required.ErrorObject(validation.NewError("password_too_short", ErrPasswordTooShort.Error())),
		validation.RuneLength(MinPasswordLength, 0).ErrorObject(validation.NewError("password_too_short", ErrPasswordTooShort.Error())),
	)
}

// appointmentDateLayouts are tried in order. The zone-less forms are what
// HTML datetime-local inputs submit and are read in the server's local zone.
var appointmentDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseAppointmentDate parses the appointment time submitted by a client.
func ParseAppointmentDate(value string) (time.Time, error) {
	if err := validation.Validate(value, validation.Required); err != nil {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range appointmentDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ValidateLogin checks the shape of a login request.
func ValidateLogin(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}
