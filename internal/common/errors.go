// Package common defines shared sentinel errors used across marketdesk
// service and CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorDuplicate    = errors.New("email already registered")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnderage     = errors.New("must be at least 18 years old")

	// ErrorValidation is the base of all field-validation failures. Wrapped
	// errors carry the human-readable reason for the user.
	ErrorValidation = errors.New("validation error")

	// ErrorStoreWrite marks a failed store rewrite. Unlike read failures
	// (which read as an empty store), a failed rewrite risks data loss and
	// must be surfaced to the caller.
	ErrorStoreWrite = errors.New("store write failed")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)
