package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByResetTokenHash(ctx context.Context, tokenHash []byte) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateResetToken(ctx context.Context, id uuid.UUID, tokenHash []byte, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash []byte) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a stored user with authentication material.
// ResetTokenHash and ResetTokenExpiresAt are set while a password
// reset is pending and cleared when the password changes.
type User struct {
	ID                  uuid.UUID
	Email               string
	Name                string
	PasswordHash        []byte
	ResetTokenHash      []byte
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
