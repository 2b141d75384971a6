// Package common defines sentinel errors and small helpers shared by the
// recruitkit tools. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Migration token errors.
	ErrTokenTaken        = errors.New("token already taken")
	ErrTooManyCollisions = errors.New("too many token collisions")

	// Input validation errors.
	ErrInvalidLanguage = errors.New("invalid language code")
	ErrUsage           = errors.New("usage error")
)
