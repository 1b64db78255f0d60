package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be BRAND or INFLUENCER")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
