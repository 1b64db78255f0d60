package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
)

// fakeTxManager runs the unit directly; the fakes ignore the tx handle.
type fakeTxManager struct{}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// serialTxManager serializes transactions on a mutex, standing in for the row
// lock that makes concurrent resolutions of one listing run one at a time.
type serialTxManager struct {
	mu sync.Mutex
}

func (f *serialTxManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(nil)
}

// fakeListingRepo stores listings in memory and hands out copies, the same
// way the real repository hands out fresh scans.
type fakeListingRepo struct {
	listings map[uuid.UUID]*domain.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*domain.Listing)}
}

func (r *fakeListingRepo) put(l *domain.Listing) {
	cp := *l
	r.listings[l.ID] = &cp
}

func (r *fakeListingRepo) Create(ctx context.Context, tx pgx.Tx, listing *domain.Listing) error {
	r.put(listing)
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Listing, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeListingRepo) ListOpen(ctx context.Context) ([]*domain.Listing, error) {
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.Status == domain.ListingOpen {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error) {
	now := time.Now()
	cutoff := now.Add(threshold)
	var out []*domain.Listing
	for _, l := range r.listings {
		if l.Status != domain.ListingOpen || !l.IsAuction() || l.AuctionEndsAt == nil {
			continue
		}
		if l.AuctionEndsAt.After(now) && !l.AuctionEndsAt.After(cutoff) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ListingStatus) error {
	l, ok := r.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.Status = status
	return nil
}

type fakeBidRepo struct {
	bids map[uuid.UUID]*domain.Bid
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{bids: make(map[uuid.UUID]*domain.Bid)}
}

func (r *fakeBidRepo) put(b *domain.Bid) {
	cp := *b
	r.bids[b.ID] = &cp
}

func (r *fakeBidRepo) Insert(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	r.put(bid)
	return nil
}

func (r *fakeBidRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	b, ok := r.bids[id]
	if !ok {
		return nil, domain.ErrBidNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBidRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Bid, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeBidRepo) ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	var out []*domain.Bid
	for _, b := range r.bids {
		if b.ListingID == listingID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBidRepo) HighestActiveAmount(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (decimal.Decimal, bool, error) {
	highest := decimal.Zero
	found := false
	for _, b := range r.bids {
		if b.ListingID != listingID {
			continue
		}
		if b.Status != domain.BidPending && b.Status != domain.BidAccepted {
			continue
		}
		if !found || b.Amount.GreaterThan(highest) {
			highest = b.Amount
			found = true
		}
	}
	return highest, found, nil
}

func (r *fakeBidRepo) HasPending(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (bool, error) {
	for _, b := range r.bids {
		if b.ListingID == listingID && b.Status == domain.BidPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBidRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.BidStatus) error {
	b, ok := r.bids[id]
	if !ok {
		return domain.ErrBidNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBidRepo) MarkPendingOutbid(ctx context.Context, tx pgx.Tx, listingID, exceptBidID uuid.UUID) error {
	for _, b := range r.bids {
		if b.ListingID == listingID && b.ID != exceptBidID && b.Status == domain.BidPending {
			b.Status = domain.BidOutbid
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*profiledomain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*profiledomain.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *profiledomain.Profile) error {
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*profiledomain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, profiledomain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*profiledomain.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, profiledomain.ErrProfileNotFound
}

// recordingPublisher captures events for assertions.
type recordingPublisher struct {
	placed   []*domain.Bid
	resolved []*domain.Bid
}

func (p *recordingPublisher) BidPlaced(listing *domain.Listing, bid *domain.Bid) {
	p.placed = append(p.placed, bid)
}

func (p *recordingPublisher) BidResolved(listing *domain.Listing, bid *domain.Bid) {
	p.resolved = append(p.resolved, bid)
}
