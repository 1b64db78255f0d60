package domain

import "errors"

var (
	ErrCampaignNotFound       = errors.New("campaign not found")
	ErrCampaignNotOpen        = errors.New("campaign is not open")
	ErrNotCampaignOwner       = errors.New("caller does not own this campaign")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrApplicationDecided     = errors.New("application already processed")
	ErrAlreadyApplied         = errors.New("influencer already applied to this campaign")
	ErrApplicantNotInfluencer = errors.New("only influencer profiles can apply")
	ErrInvalidBudget          = errors.New("budget must be greater than zero")
	ErrInvalidDecision        = errors.New("decision must be ACCEPTED or REJECTED")
)
