package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses don't reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
