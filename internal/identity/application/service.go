package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/identity/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var log = logger.GetLogger()

type RegisterDTO struct {
	Email    string
	Password string
	Role     domain.Role
}

type LoginDTO struct {
	Email    string
	Password string
}

// IdentityService handles account registration and login. Login returns a
// signed access token carrying the user ID.
type IdentityService struct {
	userRepo domain.UserRepository
	issuer   *auth.TokenIssuer
}

func NewIdentityService(userRepo domain.UserRepository, issuer *auth.TokenIssuer) *IdentityService {
	return &IdentityService{userRepo: userRepo, issuer: issuer}
}

func (s *IdentityService) Register(ctx context.Context, cmd RegisterDTO) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("identity service: %w", domain.ErrEmailTaken)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("identity service: failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("identity service: failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         cmd.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("identity service: failed to save user: %w", err)
	}

	log.Info("User registered",
		zap.String("userID", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

func (s *IdentityService) Login(ctx context.Context, cmd LoginDTO) (string, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("identity service: %w", domain.ErrInvalidCredentials)
		}
		return "", fmt.Errorf("identity service: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		return "", fmt.Errorf("identity service: %w", domain.ErrInvalidCredentials)
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("identity service: failed to issue token: %w", err)
	}
	return token, nil
}
