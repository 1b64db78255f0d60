package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingMode says how a listing is sold: at a fixed price or by auction.
type PricingMode string

const (
	PricingFixed   PricingMode = "FIXED"
	PricingAuction PricingMode = "AUCTION"
)

// ListingStatus is the lifecycle state of a listing. Transitions only go
// OPEN -> CLOSED or OPEN -> SOLD; both end states are terminal.
type ListingStatus string

const (
	ListingOpen   ListingStatus = "OPEN"
	ListingClosed ListingStatus = "CLOSED"
	ListingSold   ListingStatus = "SOLD"
)

// Listing is a sponsorship opportunity posted by an influencer. Auction
// listings carry a starting bid, an optional reserve price and an end time;
// fixed listings carry a price. AuctionEndsAt is stored and queryable but
// nothing resolves an auction automatically, acceptance is always an explicit
// owner decision.
type Listing struct {
	ID             uuid.UUID
	OwnerProfileID uuid.UUID
	Title          string
	Description    string
	PricingMode    PricingMode
	FixedPrice     *decimal.Decimal
	StartingBid    *decimal.Decimal
	ReservePrice   *decimal.Decimal
	AuctionEndsAt  *time.Time
	Status         ListingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFixedPriceListing creates an OPEN fixed-price listing.
func NewFixedPriceListing(id, ownerProfileID uuid.UUID, title, description string, price decimal.Decimal) (*Listing, error) {
	if price.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	return &Listing{
		ID:             id,
		OwnerProfileID: ownerProfileID,
		Title:          title,
		Description:    description,
		PricingMode:    PricingFixed,
		FixedPrice:     &price,
		Status:         ListingOpen,
	}, nil
}

// NewAuctionListing creates an OPEN auction listing.
func NewAuctionListing(id, ownerProfileID uuid.UUID, title, description string,
	startingBid decimal.Decimal, reservePrice *decimal.Decimal, endsAt time.Time) (*Listing, error) {
	if startingBid.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if reservePrice != nil && reservePrice.LessThan(startingBid) {
		return nil, ErrInvalidAmount
	}
	return &Listing{
		ID:             id,
		OwnerProfileID: ownerProfileID,
		Title:          title,
		Description:    description,
		PricingMode:    PricingAuction,
		StartingBid:    &startingBid,
		ReservePrice:   reservePrice,
		AuctionEndsAt:  &endsAt,
		Status:         ListingOpen,
	}, nil
}

func (l *Listing) IsOpen() bool {
	return l.Status == ListingOpen
}

func (l *Listing) IsAuction() bool {
	return l.PricingMode == PricingAuction
}

// Close transitions OPEN -> CLOSED.
func (l *Listing) Close() error {
	if l.Status != ListingOpen {
		return ErrListingNotOpen
	}
	l.Status = ListingClosed
	return nil
}

// MarkSold transitions OPEN -> SOLD. Only bid acceptance triggers this.
func (l *Listing) MarkSold() error {
	if l.Status != ListingOpen {
		return ErrListingNotOpen
	}
	l.Status = ListingSold
	return nil
}
