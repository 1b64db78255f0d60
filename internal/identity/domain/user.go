package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role decides which side of the marketplace a user acts on.
type Role string

const (
	RoleBrand      Role = "BRAND"
	RoleInfluencer Role = "INFLUENCER"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleBrand:
		return RoleBrand, nil
	case RoleInfluencer:
		return RoleInfluencer, nil
	default:
		return "", ErrInvalidRole
	}
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
