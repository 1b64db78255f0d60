package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xinyucaoo/influenceBay-sub001/internal/campaign/domain"
)

// ApplicationRepository implements domain.ApplicationRepository on Postgres.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func (r *ApplicationRepository) Insert(ctx context.Context, application *domain.Application) error {
	query := `
        INSERT INTO campaign_applications (id, campaign_id, influencer_profile_id, pitch, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query,
		application.ID,
		application.CampaignID,
		application.InfluencerProfileID,
		application.Pitch,
		application.Status,
	)
	return err
}

func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Application, error) {
	query := `
        SELECT id, campaign_id, influencer_profile_id, pitch, status, created_at, updated_at
        FROM campaign_applications
        WHERE id = $1
        FOR UPDATE
    `
	application := &domain.Application{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&application.ID,
		&application.CampaignID,
		&application.InfluencerProfileID,
		&application.Pitch,
		&application.Status,
		&application.CreatedAt,
		&application.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

func (r *ApplicationRepository) ListByCampaignID(ctx context.Context, campaignID uuid.UUID) ([]*domain.Application, error) {
	query := `
        SELECT id, campaign_id, influencer_profile_id, pitch, status, created_at, updated_at
        FROM campaign_applications
        WHERE campaign_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		application := &domain.Application{}
		err := rows.Scan(
			&application.ID,
			&application.CampaignID,
			&application.InfluencerProfileID,
			&application.Pitch,
			&application.Status,
			&application.CreatedAt,
			&application.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepository) ExistsForInfluencer(ctx context.Context, campaignID, influencerProfileID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM campaign_applications
            WHERE campaign_id = $1 AND influencer_profile_id = $2
        )
    `
	var exists bool
	err := r.pool.QueryRow(ctx, query, campaignID, influencerProfileID).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ApplicationStatus) error {
	query := `UPDATE campaign_applications SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}
