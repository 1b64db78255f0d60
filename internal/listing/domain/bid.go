package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidStatus is the lifecycle state of a bid. PENDING is the only state a bid
// can be resolved from; the other three are terminal.
type BidStatus string

const (
	BidPending  BidStatus = "PENDING"
	BidAccepted BidStatus = "ACCEPTED"
	BidRejected BidStatus = "REJECTED"
	BidOutbid   BidStatus = "OUTBID"
)

// ParseDecision validates an owner decision. Only ACCEPTED and REJECTED are
// permitted; OUTBID is applied exclusively by the acceptance cascade.
func ParseDecision(raw string) (BidStatus, error) {
	switch BidStatus(raw) {
	case BidAccepted:
		return BidAccepted, nil
	case BidRejected:
		return BidRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Bid is a brand's offer against an auction-type listing.
type Bid struct {
	ID              uuid.UUID
	ListingID       uuid.UUID
	BidderProfileID uuid.UUID
	Amount          decimal.Decimal
	Status          BidStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBid creates a PENDING bid.
func NewBid(id, listingID, bidderProfileID uuid.UUID, amount decimal.Decimal) *Bid {
	return &Bid{
		ID:              id,
		ListingID:       listingID,
		BidderProfileID: bidderProfileID,
		Amount:          amount,
		Status:          BidPending,
	}
}

// Resolve applies the owner's decision to this bid. A bid already in a
// terminal state cannot be resolved again; that takes precedence over an
// invalid decision value.
func (b *Bid) Resolve(decision BidStatus) error {
	if b.Status != BidPending {
		return ErrBidAlreadyResolved
	}
	if decision != BidAccepted && decision != BidRejected {
		return ErrInvalidDecision
	}
	b.Status = decision
	return nil
}

// MarkOutbid is the cascade applied to sibling pending bids when another bid
// on the same listing is accepted.
func (b *Bid) MarkOutbid() error {
	if b.Status != BidPending {
		return ErrBidAlreadyResolved
	}
	b.Status = BidOutbid
	return nil
}
