package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xinyucaoo/influenceBay-sub001/internal/identity/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	cp := *user
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func newService() (*IdentityService, *fakeUserRepo, *auth.TokenIssuer) {
	repo := newFakeUserRepo()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	return NewIdentityService(repo, issuer), repo, issuer
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterDTO{
		Email:    "  Brand@Example.COM ",
		Password: "hunter22",
		Role:     domain.RoleBrand,
	})
	require.NoError(t, err)

	// email is normalized before storage
	assert.Equal(t, "brand@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	stored, err := repo.GetByEmail(ctx, "brand@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	// same address again, even with different casing
	_, err = svc.Register(ctx, RegisterDTO{
		Email:    "BRAND@example.com",
		Password: "other",
		Role:     domain.RoleInfluencer,
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _, issuer := newService()
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterDTO{
		Email:    "creator@example.com",
		Password: "hunter22",
		Role:     domain.RoleInfluencer,
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, LoginDTO{Email: "creator@example.com", Password: "hunter22"})
		require.NoError(t, err)

		subject, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "creator@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginDTO{Email: "nobody@example.com", Password: "hunter22"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestParseRole(t *testing.T) {
	role, err := domain.ParseRole("BRAND")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleBrand, role)

	role, err = domain.ParseRole("INFLUENCER")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleInfluencer, role)

	_, err = domain.ParseRole("admin")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
