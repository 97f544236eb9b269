// Package common defines shared constants and sentinel errors used across
// the remind server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("server error")
	ErrAccessDenied = errors.New("you don't have access to do it")

	// Workspace-specific errors.
	ErrTooManyWorkspaces = errors.New("user has reached the limit of created workspaces (3)")

	// Block-specific errors.
	ErrBlockTypeMismatch = errors.New("block type does not match content")

	// Auth errors.
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrUsernameOccupied = errors.New("this username is already occupied")
	ErrEmailExists      = errors.New("this email already exists")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenCreation    = errors.New("token creation error")
)
