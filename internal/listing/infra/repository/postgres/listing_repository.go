package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

const listingColumns = `id, owner_profile_id, title, description, pricing_mode,
        fixed_price, starting_bid, reserve_price, auction_ends_at, status, created_at, updated_at`

// ListingRepository implements domain.ListingRepository on Postgres.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) Create(ctx context.Context, tx pgx.Tx, listing *domain.Listing) error {
	query := `
        INSERT INTO listings (id, owner_profile_id, title, description, pricing_mode,
            fixed_price, starting_bid, reserve_price, auction_ends_at, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `
	_, err := tx.Exec(ctx, query,
		listing.ID,
		listing.OwnerProfileID,
		listing.Title,
		listing.Description,
		listing.PricingMode,
		listing.FixedPrice,
		listing.StartingBid,
		listing.ReservePrice,
		listing.AuctionEndsAt,
		listing.Status,
	)
	return err
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	return scanListing(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the listing row for the rest of the transaction.
// Concurrent resolutions of the same listing serialize on this lock.
func (r *ListingRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 FOR UPDATE`
	return scanListing(tx.QueryRow(ctx, query, id))
}

func (r *ListingRepository) ListOpen(ctx context.Context) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, domain.ListingOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings
        WHERE status = $1 AND pricing_mode = $2
            AND auction_ends_at > NOW() AND auction_ends_at <= $3
        ORDER BY auction_ends_at ASC`
	cutoff := time.Now().Add(threshold)
	rows, err := r.pool.Query(ctx, query, domain.ListingOpen, domain.PricingAuction, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.ListingStatus) error {
	query := `UPDATE listings SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	listing := &domain.Listing{}
	err := row.Scan(
		&listing.ID,
		&listing.OwnerProfileID,
		&listing.Title,
		&listing.Description,
		&listing.PricingMode,
		&listing.FixedPrice,
		&listing.StartingBid,
		&listing.ReservePrice,
		&listing.AuctionEndsAt,
		&listing.Status,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func scanListings(rows pgx.Rows) ([]*domain.Listing, error) {
	var listings []*domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return listings, nil
}
