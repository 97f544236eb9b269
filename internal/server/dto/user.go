// Package dto holds the transport-facing projections of persisted entities
// and the input shapes accepted by the domain services. JSON tags on output
// types define the wire format.
package dto

import (
	"github.com/google/uuid"

	"github.com/remindhq/remind/internal/server/models"
)

// User never carries the password digest.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func UserFromModel(u *models.User) *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

type UserCreate struct {
	Username string
	Email    string
	Password string
}

type UserLoginUsername struct {
	Username string
	Password string
}

type UserLoginEmail struct {
	Email    string
	Password string
}
