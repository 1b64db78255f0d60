package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	ListOpen(ctx context.Context) ([]*Campaign, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status CampaignStatus) error
}

type ApplicationRepository interface {
	Insert(ctx context.Context, application *Application) error
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Application, error)
	ListByCampaignID(ctx context.Context, campaignID uuid.UUID) ([]*Application, error)
	ExistsForInfluencer(ctx context.Context, campaignID, influencerProfileID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status ApplicationStatus) error
}
