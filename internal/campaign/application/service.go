package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/campaign/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

type CreateCampaignDTO struct {
	ActorID uuid.UUID
	Title   string
	Brief   string
	Budget  decimal.Decimal
}

type ApplyDTO struct {
	CampaignID uuid.UUID
	ActorID    uuid.UUID
	Pitch      string
}

type DecideApplicationDTO struct {
	CampaignID    uuid.UUID
	ApplicationID uuid.UUID
	ActorID       uuid.UUID
	Decision      domain.ApplicationStatus
}

// CampaignService covers the campaign side of the marketplace: brands post
// campaigns, influencers apply, the brand decides each application.
type CampaignService struct {
	campaignRepo    domain.CampaignRepository
	applicationRepo domain.ApplicationRepository
	profileRepo     profiledomain.ProfileRepository
	txm             db.TxManager
}

func NewCampaignService(campaignRepo domain.CampaignRepository,
	applicationRepo domain.ApplicationRepository,
	profileRepo profiledomain.ProfileRepository,
	txm db.TxManager) *CampaignService {

	return &CampaignService{
		campaignRepo:    campaignRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
		txm:             txm,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, cmd CreateCampaignDTO) (*domain.Campaign, error) {
	brand, err := s.profileRepo.GetByUserID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get brand profile: %w", err)
	}
	if brand.Kind != profiledomain.KindBrand {
		return nil, fmt.Errorf("campaign service: %w", domain.ErrNotCampaignOwner)
	}

	campaign, err := domain.NewCampaign(uuid.New(), brand.ID, cmd.Title, cmd.Brief, cmd.Budget)
	if err != nil {
		return nil, fmt.Errorf("campaign service: %w", err)
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("campaign service: failed to save campaign: %w", err)
	}

	log.Info("Campaign created",
		zap.String("campaignID", campaign.ID.String()),
		zap.String("brandProfileID", brand.ID.String()),
	)
	return campaign, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get campaign %s: %w", id, err)
	}
	return campaign, nil
}

func (s *CampaignService) ListOpen(ctx context.Context) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *CampaignService) CloseCampaign(ctx context.Context, campaignID, actorID uuid.UUID) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get campaign %s: %w", campaignID, err)
	}
	if err := s.checkOwner(ctx, campaign, actorID); err != nil {
		return nil, err
	}
	if err := campaign.Close(); err != nil {
		return nil, fmt.Errorf("campaign service: %w", err)
	}
	if err := s.campaignRepo.UpdateStatus(ctx, campaign.ID, campaign.Status); err != nil {
		return nil, fmt.Errorf("campaign service: failed to close campaign %s: %w", campaignID, err)
	}
	return campaign, nil
}

func (s *CampaignService) Apply(ctx context.Context, cmd ApplyDTO) (*domain.Application, error) {
	applicant, err := s.profileRepo.GetByUserID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get applicant profile: %w", err)
	}
	if applicant.Kind != profiledomain.KindInfluencer {
		return nil, fmt.Errorf("campaign service: %w", domain.ErrApplicantNotInfluencer)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, cmd.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get campaign %s: %w", cmd.CampaignID, err)
	}
	if !campaign.IsOpen() {
		return nil, fmt.Errorf("campaign service: %w", domain.ErrCampaignNotOpen)
	}

	exists, err := s.applicationRepo.ExistsForInfluencer(ctx, campaign.ID, applicant.ID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to check existing application: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("campaign service: %w", domain.ErrAlreadyApplied)
	}

	application := domain.NewApplication(uuid.New(), campaign.ID, applicant.ID, cmd.Pitch)
	if err := s.applicationRepo.Insert(ctx, application); err != nil {
		return nil, fmt.Errorf("campaign service: failed to save application: %w", err)
	}

	log.Info("Campaign application submitted",
		zap.String("campaignID", campaign.ID.String()),
		zap.String("applicationID", application.ID.String()),
	)
	return application, nil
}

func (s *CampaignService) ListApplications(ctx context.Context, campaignID, actorID uuid.UUID) ([]*domain.Application, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get campaign %s: %w", campaignID, err)
	}
	if err := s.checkOwner(ctx, campaign, actorID); err != nil {
		return nil, err
	}
	applications, err := s.applicationRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to list applications: %w", err)
	}
	return applications, nil
}

// DecideApplication applies the brand's accept/reject decision to one pending
// application. The row lock plus the PENDING check makes the decision
// one-shot under concurrency, same shape as bid resolution but without a
// sibling cascade.
func (s *CampaignService) DecideApplication(ctx context.Context, cmd DecideApplicationDTO) (*domain.Application, error) {
	if cmd.Decision != domain.ApplicationAccepted && cmd.Decision != domain.ApplicationRejected {
		return nil, fmt.Errorf("campaign service: %w", domain.ErrInvalidDecision)
	}

	campaign, err := s.campaignRepo.GetByID(ctx, cmd.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign service: failed to get campaign %s: %w", cmd.CampaignID, err)
	}
	if err := s.checkOwner(ctx, campaign, cmd.ActorID); err != nil {
		return nil, err
	}

	var decided *domain.Application
	err = s.txm.WithinTx(ctx, func(tx pgx.Tx) error {
		application, err := s.applicationRepo.GetByIDForUpdate(ctx, tx, cmd.ApplicationID)
		if err != nil {
			return fmt.Errorf("campaign service: failed to get application %s: %w", cmd.ApplicationID, err)
		}
		if application.CampaignID != cmd.CampaignID {
			return fmt.Errorf("campaign service: application %s not on campaign %s: %w",
				cmd.ApplicationID, cmd.CampaignID, domain.ErrApplicationNotFound)
		}
		if err := application.Decide(cmd.Decision); err != nil {
			return fmt.Errorf("campaign service: %w", err)
		}
		if err := s.applicationRepo.UpdateStatus(ctx, tx, application.ID, application.Status); err != nil {
			return fmt.Errorf("campaign service: failed to update application %s: %w", application.ID, err)
		}
		decided = application
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Campaign application decided",
		zap.String("applicationID", decided.ID.String()),
		zap.String("status", string(decided.Status)),
	)
	return decided, nil
}

func (s *CampaignService) checkOwner(ctx context.Context, campaign *domain.Campaign, actorID uuid.UUID) error {
	owner, err := s.profileRepo.GetByID(ctx, campaign.BrandProfileID)
	if err != nil {
		return fmt.Errorf("campaign service: failed to get owner profile: %w", err)
	}
	if owner.UserID != actorID {
		return fmt.Errorf("campaign service: %w", domain.ErrNotCampaignOwner)
	}
	return nil
}
