package http

import (
	"errors"

	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
)

// toAppError maps listing domain errors onto the transport taxonomy. The API
// contract maps the already-resolved conflict to 400. Unmatched errors fall
// through as internal.
func toAppError(err error) *apperrors.AppError {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.build(m.sentinel.Error())
		}
	}
	return apperrors.From(err)
}

var errorMappings = []struct {
	sentinel error
	build    func(message string) *apperrors.AppError
}{
	{domain.ErrListingNotFound, func(string) *apperrors.AppError { return apperrors.NewNotFound("listing") }},
	{domain.ErrBidNotFound, func(string) *apperrors.AppError { return apperrors.NewNotFound("bid") }},
	{profiledomain.ErrProfileNotFound, func(string) *apperrors.AppError { return apperrors.NewNotFound("profile") }},
	{domain.ErrNotListingOwner, apperrors.NewForbidden},
	{domain.ErrOwnListingBid, apperrors.NewForbidden},
	{domain.ErrBidderNotBrand, apperrors.NewForbidden},
	{domain.ErrBidAlreadyResolved, apperrors.NewConflict},
	{domain.ErrListingHasPendingBids, apperrors.NewConflict},
	{domain.ErrListingNotOpen, apperrors.NewValidation},
	{domain.ErrListingNotAuction, apperrors.NewValidation},
	{domain.ErrBidTooLow, apperrors.NewValidation},
	{domain.ErrInvalidAmount, apperrors.NewValidation},
	{domain.ErrInvalidDecision, apperrors.NewValidation},
}
