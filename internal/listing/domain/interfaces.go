package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ListingRepository persists listings. Writes run on the transaction owned by
// the use case; plain reads go through the pool. ForUpdate reads take the row
// lock that serializes concurrent resolutions of the same listing.
type ListingRepository interface {
	Create(ctx context.Context, tx pgx.Tx, listing *Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Listing, error)
	ListOpen(ctx context.Context) ([]*Listing, error)
	ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*Listing, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status ListingStatus) error
}

// BidRepository persists bids.
type BidRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, bid *Bid) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bid, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*Bid, error)
	ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*Bid, error)
	// HighestActiveAmount returns the highest PENDING or ACCEPTED amount on
	// the listing; ok is false when no such bid exists.
	HighestActiveAmount(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (amount decimal.Decimal, ok bool, err error)
	// HasPending reports whether any PENDING bid exists on the listing.
	HasPending(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status BidStatus) error
	// MarkPendingOutbid flips every PENDING bid on the listing except the
	// accepted one to OUTBID.
	MarkPendingOutbid(ctx context.Context, tx pgx.Tx, listingID, exceptBidID uuid.UUID) error
}

// EventPublisher notifies listing watchers of bid activity. Implementations
// must not block the caller.
type EventPublisher interface {
	BidPlaced(listing *Listing, bid *Bid)
	BidResolved(listing *Listing, bid *Bid)
}
