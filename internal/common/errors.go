// Package common defines shared constants and errors used across client and
// server layers of GophDrive. Sentinels are matched with errors.Is, the typed
// errors with errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorObjectExists = errors.New("object already exists")
	ErrorInvalidTTL   = errors.New("invalid ttl")
	ErrorInvalidArg   = errors.New("invalid argument")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("missing token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// AuthError is returned by identity operations (sign in, sign up, session).
// Message is safe to show to the user as is.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// StorageError reports a failed read or write of an object's raw bytes.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// MetadataError reports a failed operation on a file's metadata row.
type MetadataError struct {
	Op  string
	Err error
}

func (e *MetadataError) Error() string { return fmt.Sprintf("metadata %s: %v", e.Op, e.Err) }
func (e *MetadataError) Unwrap() error { return e.Err }

// ValidationError is raised before any remote call when user input is malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
