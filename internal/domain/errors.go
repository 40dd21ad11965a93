package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrInvalidInput   = errors.New("invalid input")
	ErrWeakPassword   = errors.New("password too short")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two causes are deliberately indistinguishable to callers so that
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers every token failure: missing, malformed, bad
	// signature, or expired. Callers must not differentiate.
	ErrUnauthorized = errors.New("unauthorized")
)
