package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

// ListingService is the application interface of the listing module, exposing
// its use cases to the infra layer.
type ListingService interface {
	CreateListing(ctx context.Context, cmd CreateListingDTO) (*domain.Listing, error)
	CloseListing(ctx context.Context, cmd CloseListingDTO) (*domain.Listing, error)
	PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error)
	ResolveBid(ctx context.Context, cmd ResolveBidDTO) (*domain.Bid, error)
	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListOpen(ctx context.Context) ([]*domain.Listing, error)
	ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error)
	ListBids(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error)
}

type listingService struct {
	createUC  *CreateListingUseCase
	closeUC   *CloseListingUseCase
	placeUC   *PlaceBidUseCase
	resolveUC *ResolveBidUseCase
	queries   *ListingQueries
}

func NewListingService(createUC *CreateListingUseCase,
	closeUC *CloseListingUseCase,
	placeUC *PlaceBidUseCase,
	resolveUC *ResolveBidUseCase,
	queries *ListingQueries) ListingService {

	return &listingService{
		createUC:  createUC,
		closeUC:   closeUC,
		placeUC:   placeUC,
		resolveUC: resolveUC,
		queries:   queries,
	}
}

func (s *listingService) CreateListing(ctx context.Context, cmd CreateListingDTO) (*domain.Listing, error) {
	return s.createUC.Execute(ctx, cmd)
}

func (s *listingService) CloseListing(ctx context.Context, cmd CloseListingDTO) (*domain.Listing, error) {
	return s.closeUC.Execute(ctx, cmd)
}

func (s *listingService) PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error) {
	return s.placeUC.Execute(ctx, cmd)
}

func (s *listingService) ResolveBid(ctx context.Context, cmd ResolveBidDTO) (*domain.Bid, error) {
	return s.resolveUC.Execute(ctx, cmd)
}

func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return s.queries.GetListing(ctx, id)
}

func (s *listingService) ListOpen(ctx context.Context) ([]*domain.Listing, error) {
	return s.queries.ListOpen(ctx)
}

func (s *listingService) ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error) {
	return s.queries.ListEndingSoon(ctx, threshold)
}

func (s *listingService) ListBids(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	return s.queries.ListBids(ctx, listingID)
}
