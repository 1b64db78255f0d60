package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

func newAuctionEndingAt(t *testing.T, endsAt time.Time) *domain.Listing {
	t.Helper()
	l, err := domain.NewAuctionListing(uuid.New(), uuid.New(), "slot", "",
		decimal.NewFromInt(10), nil, endsAt)
	require.NoError(t, err)
	return l
}

func TestListEndingSoon_WindowBounds(t *testing.T) {
	listings := newFakeListingRepo()
	q := NewListingQueries(listings, newFakeBidRepo())
	ctx := context.Background()

	ended := newAuctionEndingAt(t, time.Now().Add(-time.Hour))
	soon := newAuctionEndingAt(t, time.Now().Add(30*time.Minute))
	later := newAuctionEndingAt(t, time.Now().Add(3*time.Hour))
	listings.put(ended)
	listings.put(soon)
	listings.put(later)

	sold := newAuctionEndingAt(t, time.Now().Add(20*time.Minute))
	require.NoError(t, sold.MarkSold())
	listings.put(sold)

	fixed, err := domain.NewFixedPriceListing(uuid.New(), uuid.New(), "post", "", decimal.NewFromInt(25))
	require.NoError(t, err)
	listings.put(fixed)

	got, err := q.ListEndingSoon(ctx, time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, soon.ID, got[0].ID)
}

func TestListBids_UnknownListing(t *testing.T) {
	q := NewListingQueries(newFakeListingRepo(), newFakeBidRepo())

	_, err := q.ListBids(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
