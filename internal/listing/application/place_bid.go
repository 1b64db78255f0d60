package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"go.uber.org/zap"
)

// PlaceBidDTO is the input for placing a bid against an auction listing.
type PlaceBidDTO struct {
	ListingID uuid.UUID
	ActorID   uuid.UUID
	Amount    decimal.Decimal
}

// PlaceBidUseCase records a brand's bid. The listing must be OPEN and auction
// priced, the bidder must be a brand profile other than the owner, and the
// amount must beat the current highest active bid (or meet the starting bid
// when there is none). Submission order is not ordered by amount, only by
// time; the highest-bid check keeps "current high bid" queries meaningful.
type PlaceBidUseCase struct {
	listingRepo domain.ListingRepository
	bidRepo     domain.BidRepository
	profileRepo profiledomain.ProfileRepository
	txm         db.TxManager
	publisher   domain.EventPublisher
}

func NewPlaceBidUseCase(listingRepo domain.ListingRepository,
	bidRepo domain.BidRepository,
	profileRepo profiledomain.ProfileRepository,
	txm db.TxManager,
	publisher domain.EventPublisher) *PlaceBidUseCase {

	return &PlaceBidUseCase{
		listingRepo: listingRepo,
		bidRepo:     bidRepo,
		profileRepo: profileRepo,
		txm:         txm,
		publisher:   publisher,
	}
}

func (uc *PlaceBidUseCase) Execute(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error) {
	log.Info("Executing PlaceBidUseCase",
		zap.String("listingID", cmd.ListingID.String()),
		zap.String("actorID", cmd.ActorID.String()),
		zap.String("amount", cmd.Amount.String()),
	)

	if cmd.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("place bid use case: %w", domain.ErrInvalidAmount)
	}

	bidder, err := uc.profileRepo.GetByUserID(ctx, cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("place bid use case: failed to get bidder profile: %w", err)
	}
	if bidder.Kind != profiledomain.KindBrand {
		return nil, fmt.Errorf("place bid use case: %w", domain.ErrBidderNotBrand)
	}

	var (
		newBid  *domain.Bid
		listing *domain.Listing
	)
	err = uc.txm.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		listing, err = uc.listingRepo.GetByIDForUpdate(ctx, tx, cmd.ListingID)
		if err != nil {
			return fmt.Errorf("place bid use case: failed to get listing %s: %w", cmd.ListingID, err)
		}
		if !listing.IsOpen() {
			return fmt.Errorf("place bid use case: %w", domain.ErrListingNotOpen)
		}
		if !listing.IsAuction() {
			return fmt.Errorf("place bid use case: %w", domain.ErrListingNotAuction)
		}
		if listing.OwnerProfileID == bidder.ID {
			return fmt.Errorf("place bid use case: %w", domain.ErrOwnListingBid)
		}

		highest, ok, err := uc.bidRepo.HighestActiveAmount(ctx, tx, listing.ID)
		if err != nil {
			return fmt.Errorf("place bid use case: failed to get highest bid: %w", err)
		}
		if ok {
			if cmd.Amount.LessThanOrEqual(highest) {
				return fmt.Errorf("place bid use case: current high bid is %s: %w", highest, domain.ErrBidTooLow)
			}
		} else if listing.StartingBid != nil && cmd.Amount.LessThan(*listing.StartingBid) {
			return fmt.Errorf("place bid use case: starting bid is %s: %w", listing.StartingBid, domain.ErrBidTooLow)
		}

		newBid = domain.NewBid(uuid.New(), listing.ID, bidder.ID, cmd.Amount)
		if err := uc.bidRepo.Insert(ctx, tx, newBid); err != nil {
			return fmt.Errorf("place bid use case: failed to save bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Bid placed",
		zap.String("listingID", listing.ID.String()),
		zap.String("bidID", newBid.ID.String()),
		zap.String("amount", newBid.Amount.String()),
	)
	if uc.publisher != nil {
		uc.publisher.BidPlaced(listing, newBid)
	}
	return newBid, nil
}
