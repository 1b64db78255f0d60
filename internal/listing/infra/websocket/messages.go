package websocket

import (
	"time"

	"github.com/shopspring/decimal"
)

// MessageType identifies the server push messages for listing watchers.
type MessageType string

const (
	MessageTypeListingState MessageType = "listing_state"
	MessageTypeBidPlaced    MessageType = "bid_placed"
	MessageTypeBidResolved  MessageType = "bid_resolved"
	MessageTypeError        MessageType = "error"
)

type BaseMessage struct {
	Type MessageType `json:"type"`
}

// ListingStateMessage is pushed to a client right after it joins a listing.
type ListingStateMessage struct {
	BaseMessage
	Payload struct {
		ListingID     string           `json:"listing_id"`
		Title         string           `json:"title"`
		PricingMode   string           `json:"pricing_mode"`
		Status        string           `json:"status"`
		StartingBid   *decimal.Decimal `json:"starting_bid,omitempty"`
		AuctionEndsAt *time.Time       `json:"auction_ends_at,omitempty"`
	} `json:"payload"`
}

// BidPlacedMessage is broadcast when a new bid lands on the listing.
type BidPlacedMessage struct {
	BaseMessage
	Payload struct {
		ListingID string          `json:"listing_id"`
		BidID     string          `json:"bid_id"`
		Amount    decimal.Decimal `json:"amount"`
		Status    string          `json:"status"`
	} `json:"payload"`
}

// BidResolvedMessage is broadcast when the owner accepts or rejects a bid.
// On acceptance the listing status in the payload reads SOLD.
type BidResolvedMessage struct {
	BaseMessage
	Payload struct {
		ListingID     string          `json:"listing_id"`
		BidID         string          `json:"bid_id"`
		Amount        decimal.Decimal `json:"amount"`
		BidStatus     string          `json:"bid_status"`
		ListingStatus string          `json:"listing_status"`
	} `json:"payload"`
}

type ErrorMessage struct {
	BaseMessage
	Payload struct {
		Error string `json:"error"`
	} `json:"payload"`
}
