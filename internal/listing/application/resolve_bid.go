package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// ResolveBidDTO is the input for the owner's accept/reject decision.
type ResolveBidDTO struct {
	ListingID uuid.UUID
	BidID     uuid.UUID
	ActorID   uuid.UUID // authenticated user making the call
	Decision  domain.BidStatus
}

// ResolveBidUseCase applies the owner's decision to a single pending bid.
// Acceptance atomically marks every sibling pending bid OUTBID and the
// listing SOLD; rejection touches only the target bid. The whole effect runs
// in one transaction so a failure can never leave partial state behind.
type ResolveBidUseCase struct {
	listingRepo domain.ListingRepository
	bidRepo     domain.BidRepository
	profileRepo profiledomain.ProfileRepository
	txm         db.TxManager
	publisher   domain.EventPublisher
}

func NewResolveBidUseCase(listingRepo domain.ListingRepository,
	bidRepo domain.BidRepository,
	profileRepo profiledomain.ProfileRepository,
	txm db.TxManager,
	publisher domain.EventPublisher) *ResolveBidUseCase {

	return &ResolveBidUseCase{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		profileRepo: profileRepo,
		txm:         txm,
		publisher:   publisher,
	}
}

func (uc *ResolveBidUseCase) Execute(ctx context.Context, cmd ResolveBidDTO) (*domain.Bid, error) {
	log.Info("Executing ResolveBidUseCase",
		zap.String("listingID", cmd.ListingID.String()),
		zap.String("bidID", cmd.BidID.String()),
		zap.String("actorID", cmd.ActorID.String()),
		zap.String("decision", string(cmd.Decision)),
	)

	var (
		resolved *domain.Bid
		listing  *domain.Listing
	)
	err := uc.txm.WithinTx(ctx, func(tx pgx.Tx) error {
		// The listing row lock serializes concurrent resolutions: a second
		// accept waits here and then observes the first one's effects.
		var err error
		listing, err = uc.listingRepo.GetByIDForUpdate(ctx, tx, cmd.ListingID)
		if err != nil {
			return fmt.Errorf("resolve bid use case: failed to get listing %s: %w", cmd.ListingID, err)
		}

		owner, err := uc.profileRepo.GetByID(ctx, listing.OwnerProfileID)
		if err != nil {
			return fmt.Errorf("resolve bid use case: failed to get owner profile: %w", err)
		}
		if owner.UserID != cmd.ActorID {
			return fmt.Errorf("resolve bid use case: %w", domain.ErrNotListingOwner)
		}

		bid, err := uc.bidRepo.GetByIDForUpdate(ctx, tx, cmd.BidID)
		if err != nil {
			return fmt.Errorf("resolve bid use case: failed to get bid %s: %w", cmd.BidID, err)
		}
		// a bid id belonging to another listing is indistinguishable from a
		// missing one to the caller
		if bid.ListingID != cmd.ListingID {
			return fmt.Errorf("resolve bid use case: bid %s not on listing %s: %w",
				cmd.BidID, cmd.ListingID, domain.ErrBidNotFound)
		}

		if err := bid.Resolve(cmd.Decision); err != nil {
			return fmt.Errorf("resolve bid use case: %w", err)
		}
		if err := uc.bidRepo.UpdateStatus(ctx, tx, bid.ID, bid.Status); err != nil {
			return fmt.Errorf("resolve bid use case: failed to update bid %s: %w", bid.ID, err)
		}

		if cmd.Decision == domain.BidAccepted {
			if err := uc.bidRepo.MarkPendingOutbid(ctx, tx, listing.ID, bid.ID); err != nil {
				return fmt.Errorf("resolve bid use case: failed to outbid siblings on listing %s: %w", listing.ID, err)
			}
			if err := listing.MarkSold(); err != nil {
				return fmt.Errorf("resolve bid use case: %w", err)
			}
			if err := uc.listingRepo.UpdateStatus(ctx, tx, listing.ID, listing.Status); err != nil {
				return fmt.Errorf("resolve bid use case: failed to mark listing %s sold: %w", listing.ID, err)
			}
		}

		resolved = bid
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Bid resolved",
		zap.String("listingID", listing.ID.String()),
		zap.String("bidID", resolved.ID.String()),
		zap.String("status", string(resolved.Status)),
	)
	if uc.publisher != nil {
		uc.publisher.BidResolved(listing, resolved)
	}
	return resolved, nil
}
