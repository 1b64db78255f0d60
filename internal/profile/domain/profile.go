package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileKind distinguishes the two sides of the marketplace.
type ProfileKind string

const (
	KindBrand      ProfileKind = "BRAND"
	KindInfluencer ProfileKind = "INFLUENCER"
)

// Profile is the marketplace identity linked 1:1 to a user. Influencer
// profiles own listings; brand profiles place bids and post campaigns.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        ProfileKind
	DisplayName string
	Bio         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProfile(id, userID uuid.UUID, kind ProfileKind, displayName, bio string) *Profile {
	return &Profile{
		ID:          id,
		UserID:      userID,
		Kind:        kind,
		DisplayName: displayName,
		Bio:         bio,
	}
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
