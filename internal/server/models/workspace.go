package models

import "github.com/google/uuid"

// Workspace is a top-level container of notes owned by exactly one user.
type Workspace struct {
	ID     uuid.UUID
	Title  string
	UserID uuid.UUID
}
