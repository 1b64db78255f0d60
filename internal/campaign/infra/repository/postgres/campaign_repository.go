package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xinyucaoo/influenceBay-sub001/internal/campaign/domain"
)

// CampaignRepository implements domain.CampaignRepository on Postgres.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query := `
        INSERT INTO campaigns (id, brand_profile_id, title, brief, budget, status)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query,
		campaign.ID,
		campaign.BrandProfileID,
		campaign.Title,
		campaign.Brief,
		campaign.Budget,
		campaign.Status,
	)
	return err
}

func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `
        SELECT id, brand_profile_id, title, brief, budget, status, created_at, updated_at
        FROM campaigns
        WHERE id = $1
    `
	campaign := &domain.Campaign{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.BrandProfileID,
		&campaign.Title,
		&campaign.Brief,
		&campaign.Budget,
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

func (r *CampaignRepository) ListOpen(ctx context.Context) ([]*domain.Campaign, error) {
	query := `
        SELECT id, brand_profile_id, title, brief, budget, status, created_at, updated_at
        FROM campaigns
        WHERE status = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, domain.CampaignOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign := &domain.Campaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.BrandProfileID,
			&campaign.Title,
			&campaign.Brief,
			&campaign.Budget,
			&campaign.Status,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CampaignStatus) error {
	query := `UPDATE campaigns SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}
