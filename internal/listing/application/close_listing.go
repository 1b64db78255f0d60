package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"go.uber.org/zap"
)

type CloseListingDTO struct {
	ListingID uuid.UUID
	ActorID   uuid.UUID
}

// CloseListingUseCase withdraws an OPEN listing. Pending bids must be
// resolved (or rejected) first; closing never discards a live bid silently.
type CloseListingUseCase struct {
	listingRepo domain.ListingRepository
	bidRepo     domain.BidRepository
	profileRepo profiledomain.ProfileRepository
	txm         db.TxManager
}

func NewCloseListingUseCase(listingRepo domain.ListingRepository,
	bidRepo domain.BidRepository,
	profileRepo profiledomain.ProfileRepository,
	txm db.TxManager) *CloseListingUseCase {

	return &CloseListingUseCase{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		profileRepo: profileRepo,
		txm:         txm,
	}
}

func (uc *CloseListingUseCase) Execute(ctx context.Context, cmd CloseListingDTO) (*domain.Listing, error) {
	var listing *domain.Listing
	err := uc.txm.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		listing, err = uc.listingRepo.GetByIDForUpdate(ctx, tx, cmd.ListingID)
		if err != nil {
			return fmt.Errorf("close listing use case: failed to get listing %s: %w", cmd.ListingID, err)
		}

		owner, err := uc.profileRepo.GetByID(ctx, listing.OwnerProfileID)
		if err != nil {
			return fmt.Errorf("close listing use case: failed to get owner profile: %w", err)
		}
		if owner.UserID != cmd.ActorID {
			return fmt.Errorf("close listing use case: %w", domain.ErrNotListingOwner)
		}

		pending, err := uc.bidRepo.HasPending(ctx, tx, listing.ID)
		if err != nil {
			return fmt.Errorf("close listing use case: failed to check pending bids: %w", err)
		}
		if pending {
			return fmt.Errorf("close listing use case: %w", domain.ErrListingHasPendingBids)
		}

		if err := listing.Close(); err != nil {
			return fmt.Errorf("close listing use case: %w", err)
		}
		return uc.listingRepo.UpdateStatus(ctx, tx, listing.ID, listing.Status)
	})
	if err != nil {
		return nil, err
	}

	log.Info("Listing closed", zap.String("listingID", listing.ID.String()))
	return listing, nil
}
