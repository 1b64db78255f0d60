package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"go.uber.org/zap"
)

// CreateListingDTO carries the pricing fields for both modes; the mode picks
// which ones are read.
type CreateListingDTO struct {
	ActorID       uuid.UUID
	Title         string
	Description   string
	PricingMode   domain.PricingMode
	FixedPrice    *decimal.Decimal
	StartingBid   *decimal.Decimal
	ReservePrice  *decimal.Decimal
	AuctionEndsAt *time.Time
}

// CreateListingUseCase posts a new sponsorship listing owned by the caller's
// influencer profile.
type CreateListingUseCase struct {
	listingRepo domain.ListingRepository
	profileRepo profiledomain.ProfileRepository
	txm         db.TxManager
}

func NewCreateListingUseCase(listingRepo domain.ListingRepository,
	profileRepo profiledomain.ProfileRepository,
	txm db.TxManager) *CreateListingUseCase {

	return &CreateListingUseCase{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		txm:         txm,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingDTO) (*domain.Listing, error) {
	owner, err := uc.profileRepo.GetByUserID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("create listing use case: failed to get owner profile: %w", err)
	}
	if owner.Kind != profiledomain.KindInfluencer {
		return nil, fmt.Errorf("create listing use case: %w", domain.ErrNotListingOwner)
	}

	var listing *domain.Listing
	switch cmd.PricingMode {
	case domain.PricingFixed:
		if cmd.FixedPrice == nil {
			return nil, fmt.Errorf("create listing use case: %w", domain.ErrInvalidAmount)
		}
		listing, err = domain.NewFixedPriceListing(uuid.New(), owner.ID, cmd.Title, cmd.Description, *cmd.FixedPrice)
	case domain.PricingAuction:
		if cmd.StartingBid == nil || cmd.AuctionEndsAt == nil {
			return nil, fmt.Errorf("create listing use case: %w", domain.ErrInvalidAmount)
		}
		listing, err = domain.NewAuctionListing(uuid.New(), owner.ID, cmd.Title, cmd.Description,
			*cmd.StartingBid, cmd.ReservePrice, *cmd.AuctionEndsAt)
	default:
		return nil, fmt.Errorf("create listing use case: unknown pricing mode %q", cmd.PricingMode)
	}
	if err != nil {
		return nil, fmt.Errorf("create listing use case: %w", err)
	}

	err = uc.txm.WithinTx(ctx, func(tx pgx.Tx) error {
		return uc.listingRepo.Create(ctx, tx, listing)
	})
	if err != nil {
		return nil, fmt.Errorf("create listing use case: failed to save listing: %w", err)
	}

	log.Info("Listing created",
		zap.String("listingID", listing.ID.String()),
		zap.String("ownerProfileID", owner.ID.String()),
		zap.String("pricingMode", string(listing.PricingMode)),
	)
	return listing, nil
}
