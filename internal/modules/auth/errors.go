package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
