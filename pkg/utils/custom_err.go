package utils

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrChargeNotFound   = errors.New("charge not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCalendarNotFound = errors.New("calendar not found")

	ErrChargeLimitReached = errors.New("event already has the maximum number of responsibles")
	ErrAlreadyAssigned    = errors.New("user already holds an active charge on this event")
	ErrActivityInUse      = errors.New("activity is referenced by existing events")

	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)
