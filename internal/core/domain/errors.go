package domain

import "errors"

// Error taxonomy shared by stores, services and the HTTP layer. Callers wrap
// these with fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	ErrNotFound              = errors.New("not found")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrAuthenticationFailure = errors.New("authentication failure")
	ErrStorageUnavailable    = errors.New("storage unavailable")
	ErrInvalidInput          = errors.New("invalid input")
)
