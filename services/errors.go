package services

import (
	"CareDesk/utils"
	"errors"
)

var (
	ErrSlotTaken          = errors.New("This time slot is already booked for the selected doctor. Please choose another time.")
	ErrPasswordTooShort   = utils.ErrPasswordTooShort
	ErrInvalidDate        = utils.ErrInvalidDate
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

// AccountError reports a failure of the identity admin while registering a patient.
type AccountError struct {
	Err error
}

func (e *AccountError) Error() string {
	return "Failed to create user account: " + e.Err.Error()
}

func (e *AccountError) Unwrap() error {
	return e.Err
}
