package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

// ListingQueries bundles the read-only operations over listings and bids.
type ListingQueries struct {
	listingRepo domain.ListingRepository
	bidRepo     domain.BidRepository
}

func NewListingQueries(listingRepo domain.ListingRepository, bidRepo domain.BidRepository) *ListingQueries {
	return &ListingQueries{listingRepo: listingRepo, bidRepo: bidRepo}
}

func (q *ListingQueries) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := q.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing queries: failed to get listing %s: %w", id, err)
	}
	return listing, nil
}

func (q *ListingQueries) ListOpen(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := q.listingRepo.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing queries: failed to list open listings: %w", err)
	}
	return listings, nil
}

// ListEndingSoon returns open auction listings whose end time falls within
// threshold. Nothing resolves them automatically; the end time is advisory.
func (q *ListingQueries) ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error) {
	listings, err := q.listingRepo.ListEndingSoon(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("listing queries: failed to list ending-soon listings: %w", err)
	}
	return listings, nil
}

func (q *ListingQueries) ListBids(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	// surface NotFound for a bogus listing id instead of an empty list
	if _, err := q.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("listing queries: failed to get listing %s: %w", listingID, err)
	}
	bids, err := q.bidRepo.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("listing queries: failed to list bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}
