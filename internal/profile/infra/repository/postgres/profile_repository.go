package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
)

// ProfileRepository implements domain.ProfileRepository on Postgres.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
        INSERT INTO profiles (id, user_id, kind, display_name, bio)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Kind,
		profile.DisplayName,
		profile.Bio,
	)
	return err
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `
        SELECT id, user_id, kind, display_name, bio, created_at, updated_at
        FROM profiles
        WHERE id = $1
    `
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
        SELECT id, user_id, kind, display_name, bio, created_at, updated_at
        FROM profiles
        WHERE user_id = $1
    `
	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *ProfileRepository) scanOne(row pgx.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Kind,
		&profile.DisplayName,
		&profile.Bio,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
