package auth

import "errors"

var (
	ErrMissingAdminKey = errors.New("admin key required")
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrNotConfigured   = errors.New("admin access is not configured")
)
