package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	identitydomain "github.com/xinyucaoo/influenceBay-sub001/internal/identity/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

type CreateProfileDTO struct {
	ActorID     uuid.UUID
	Kind        domain.ProfileKind
	DisplayName string
	Bio         string
}

// ProfileService manages the marketplace profiles. A user owns at most one
// profile and its kind must match the user's role.
type ProfileService struct {
	profileRepo domain.ProfileRepository
	userRepo    identitydomain.UserRepository
}

func NewProfileService(profileRepo domain.ProfileRepository, userRepo identitydomain.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *ProfileService) CreateProfile(ctx context.Context, cmd CreateProfileDTO) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("profile service: failed to get user: %w", err)
	}
	if string(user.Role) != string(cmd.Kind) {
		return nil, fmt.Errorf("profile service: %w", domain.ErrKindMismatch)
	}

	if _, err := s.profileRepo.GetByUserID(ctx, cmd.ActorID); err == nil {
		return nil, fmt.Errorf("profile service: %w", domain.ErrProfileExists)
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, fmt.Errorf("profile service: failed to check existing profile: %w", err)
	}

	profile := domain.NewProfile(uuid.New(), cmd.ActorID, cmd.Kind, cmd.DisplayName, cmd.Bio)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile service: failed to save profile: %w", err)
	}

	log.Info("Profile created",
		zap.String("profileID", profile.ID.String()),
		zap.String("userID", cmd.ActorID.String()),
		zap.String("kind", string(cmd.Kind)),
	)
	return profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profile service: failed to get profile %s: %w", id, err)
	}
	return profile, nil
}

func (s *ProfileService) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile service: failed to get profile for user %s: %w", userID, err)
	}
	return profile, nil
}
