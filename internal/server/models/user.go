// Package models defines the persisted entities of the remind server:
// users, workspaces, notes and blocks.
package models

import "github.com/google/uuid"

// User is a registered account. Password holds the argon2id digest,
// never the plaintext.
type User struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
}
