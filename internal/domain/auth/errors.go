package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid personnel code or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
