package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuctionListing(t *testing.T) {
	endsAt := time.Now().Add(24 * time.Hour)

	t.Run("valid", func(t *testing.T) {
		reserve := decimal.NewFromInt(300)
		l, err := NewAuctionListing(uuid.New(), uuid.New(), "story slot", "", decimal.NewFromInt(100), &reserve, endsAt)
		require.NoError(t, err)
		assert.Equal(t, ListingOpen, l.Status)
		assert.True(t, l.IsAuction())
		assert.True(t, l.IsOpen())
		require.NotNil(t, l.AuctionEndsAt)
		assert.True(t, l.AuctionEndsAt.Equal(endsAt))
	})

	t.Run("starting bid must be positive", func(t *testing.T) {
		_, err := NewAuctionListing(uuid.New(), uuid.New(), "story slot", "", decimal.Zero, nil, endsAt)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("reserve below starting bid", func(t *testing.T) {
		reserve := decimal.NewFromInt(50)
		_, err := NewAuctionListing(uuid.New(), uuid.New(), "story slot", "", decimal.NewFromInt(100), &reserve, endsAt)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestNewFixedPriceListing(t *testing.T) {
	l, err := NewFixedPriceListing(uuid.New(), uuid.New(), "flat post", "", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, ListingOpen, l.Status)
	assert.False(t, l.IsAuction())

	_, err = NewFixedPriceListing(uuid.New(), uuid.New(), "flat post", "", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestListingTransitions(t *testing.T) {
	open := func() *Listing {
		l, err := NewFixedPriceListing(uuid.New(), uuid.New(), "post", "", decimal.NewFromInt(100))
		require.NoError(t, err)
		return l
	}

	t.Run("close", func(t *testing.T) {
		l := open()
		require.NoError(t, l.Close())
		assert.Equal(t, ListingClosed, l.Status)

		assert.ErrorIs(t, l.Close(), ErrListingNotOpen)
		assert.ErrorIs(t, l.MarkSold(), ErrListingNotOpen)
	})

	t.Run("sold", func(t *testing.T) {
		l := open()
		require.NoError(t, l.MarkSold())
		assert.Equal(t, ListingSold, l.Status)

		assert.ErrorIs(t, l.Close(), ErrListingNotOpen)
		assert.ErrorIs(t, l.MarkSold(), ErrListingNotOpen)
	})
}
