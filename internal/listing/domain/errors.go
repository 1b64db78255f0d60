package domain

import "errors"

var (
	ErrListingNotFound       = errors.New("listing not found")
	ErrListingNotOpen        = errors.New("listing is not open")
	ErrListingNotAuction     = errors.New("listing is not auction priced")
	ErrListingHasPendingBids = errors.New("listing still has pending bids")
	ErrNotListingOwner       = errors.New("caller does not own this listing")
	ErrBidNotFound           = errors.New("bid not found")
	ErrBidAlreadyResolved    = errors.New("bid already processed")
	ErrBidTooLow             = errors.New("bid amount is too low")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrInvalidDecision       = errors.New("decision must be ACCEPTED or REJECTED")
	ErrOwnListingBid         = errors.New("cannot bid on your own listing")
	ErrBidderNotBrand        = errors.New("only brand profiles can place bids")
)
