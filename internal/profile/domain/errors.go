package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("user already has a profile")
	ErrKindMismatch    = errors.New("profile kind does not match user role")
)
