package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationDecision validates a campaign owner's decision.
func ParseApplicationDecision(raw string) (ApplicationStatus, error) {
	switch ApplicationStatus(raw) {
	case ApplicationAccepted:
		return ApplicationAccepted, nil
	case ApplicationRejected:
		return ApplicationRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Application is an influencer's pitch for a campaign. One per influencer per
// campaign; resolved once by the campaign owner, with no sibling cascade --
// a brand can accept several influencers for the same campaign.
type Application struct {
	ID                  uuid.UUID
	CampaignID          uuid.UUID
	InfluencerProfileID uuid.UUID
	Pitch               string
	Status              ApplicationStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewApplication(id, campaignID, influencerProfileID uuid.UUID, pitch string) *Application {
	return &Application{
		ID:                  id,
		CampaignID:          campaignID,
		InfluencerProfileID: influencerProfileID,
		Pitch:               pitch,
		Status:              ApplicationPending,
	}
}

// Decide applies the owner's decision. Terminal applications stay as they are.
func (a *Application) Decide(decision ApplicationStatus) error {
	if decision != ApplicationAccepted && decision != ApplicationRejected {
		return ErrInvalidDecision
	}
	if a.Status != ApplicationPending {
		return ErrApplicationDecided
	}
	a.Status = decision
	return nil
}
