package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignOpen   CampaignStatus = "OPEN"
	CampaignClosed CampaignStatus = "CLOSED"
)

// Campaign is a sponsorship brief posted by a brand; influencers apply to it.
type Campaign struct {
	ID             uuid.UUID
	BrandProfileID uuid.UUID
	Title          string
	Brief          string
	Budget         decimal.Decimal
	Status         CampaignStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCampaign(id, brandProfileID uuid.UUID, title, brief string, budget decimal.Decimal) (*Campaign, error) {
	if budget.Sign() <= 0 {
		return nil, ErrInvalidBudget
	}
	return &Campaign{
		ID:             id,
		BrandProfileID: brandProfileID,
		Title:          title,
		Brief:          brief,
		Budget:         budget,
		Status:         CampaignOpen,
	}, nil
}

func (c *Campaign) IsOpen() bool {
	return c.Status == CampaignOpen
}

func (c *Campaign) Close() error {
	if c.Status != CampaignOpen {
		return ErrCampaignNotOpen
	}
	c.Status = CampaignClosed
	return nil
}
