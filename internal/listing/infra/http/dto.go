package http

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

// CreateListingRequest is validated once at the boundary; mode-dependent
// pricing fields are cross-checked in the use case.
type CreateListingRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Description   string           `json:"description" validate:"max=5000"`
	PricingMode   string           `json:"pricing_mode" validate:"required,oneof=FIXED AUCTION"`
	FixedPrice    *decimal.Decimal `json:"fixed_price,omitempty"`
	StartingBid   *decimal.Decimal `json:"starting_bid,omitempty"`
	ReservePrice  *decimal.Decimal `json:"reserve_price,omitempty"`
	AuctionEndsAt *time.Time       `json:"auction_ends_at,omitempty"`
}

type PlaceBidRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// ResolveBidRequest carries the owner's decision on a pending bid.
type ResolveBidRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}

type ListingResponse struct {
	ID             string           `json:"id"`
	OwnerProfileID string           `json:"owner_profile_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	PricingMode    string           `json:"pricing_mode"`
	FixedPrice     *decimal.Decimal `json:"fixed_price,omitempty"`
	StartingBid    *decimal.Decimal `json:"starting_bid,omitempty"`
	ReservePrice   *decimal.Decimal `json:"reserve_price,omitempty"`
	AuctionEndsAt  *time.Time       `json:"auction_ends_at,omitempty"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

type BidResponse struct {
	ID              string          `json:"id"`
	ListingID       string          `json:"listing_id"`
	BidderProfileID string          `json:"bidder_profile_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID.String(),
		OwnerProfileID: l.OwnerProfileID.String(),
		Title:          l.Title,
		Description:    l.Description,
		PricingMode:    string(l.PricingMode),
		FixedPrice:     l.FixedPrice,
		StartingBid:    l.StartingBid,
		ReservePrice:   l.ReservePrice,
		AuctionEndsAt:  l.AuctionEndsAt,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
	}
}

func toListingResponses(listings []*domain.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}

func toBidResponse(b *domain.Bid) BidResponse {
	return BidResponse{
		ID:              b.ID.String(),
		ListingID:       b.ListingID.String(),
		BidderProfileID: b.BidderProfileID.String(),
		Amount:          b.Amount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

func toBidResponses(bids []*domain.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, toBidResponse(b))
	}
	return out
}
