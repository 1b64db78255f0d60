package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
)

const bidColumns = `id, listing_id, bidder_profile_id, amount, status, created_at, updated_at`

// BidRepository implements domain.BidRepository on Postgres.
type BidRepository struct {
	pool *pgxpool.Pool
}

func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

func (r *BidRepository) Insert(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	query := `
        INSERT INTO bids (id, listing_id, bidder_profile_id, amount, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := tx.Exec(ctx, query,
		bid.ID,
		bid.ListingID,
		bid.BidderProfileID,
		bid.Amount,
		bid.Status,
	)
	return err
}

func (r *BidRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`
	return scanBid(r.pool.QueryRow(ctx, query, id))
}

func (r *BidRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1 FOR UPDATE`
	return scanBid(tx.QueryRow(ctx, query, id))
}

func (r *BidRepository) ListByListingID(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE listing_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []*domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *BidRepository) HighestActiveAmount(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (decimal.Decimal, bool, error) {
	query := `
        SELECT MAX(amount) FROM bids
        WHERE listing_id = $1 AND status IN ($2, $3)
    `
	var amount *decimal.Decimal
	err := tx.QueryRow(ctx, query, listingID, domain.BidPending, domain.BidAccepted).Scan(&amount)
	if err != nil {
		return decimal.Zero, false, err
	}
	if amount == nil {
		return decimal.Zero, false, nil
	}
	return *amount, true, nil
}

func (r *BidRepository) HasPending(ctx context.Context, tx pgx.Tx, listingID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bids WHERE listing_id = $1 AND status = $2)`
	var exists bool
	err := tx.QueryRow(ctx, query, listingID, domain.BidPending).Scan(&exists)
	return exists, err
}

func (r *BidRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.BidStatus) error {
	query := `UPDATE bids SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := tx.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBidNotFound
	}
	return nil
}

func (r *BidRepository) MarkPendingOutbid(ctx context.Context, tx pgx.Tx, listingID, exceptBidID uuid.UUID) error {
	query := `
        UPDATE bids SET status = $3, updated_at = NOW()
        WHERE listing_id = $1 AND id <> $2 AND status = $4
    `
	_, err := tx.Exec(ctx, query, listingID, exceptBidID, domain.BidOutbid, domain.BidPending)
	return err
}

func scanBid(row pgx.Row) (*domain.Bid, error) {
	bid := &domain.Bid{}
	err := row.Scan(
		&bid.ID,
		&bid.ListingID,
		&bid.BidderProfileID,
		&bid.Amount,
		&bid.Status,
		&bid.CreatedAt,
		&bid.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBidNotFound
		}
		return nil, err
	}
	return bid, nil
}
