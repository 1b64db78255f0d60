package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/httpserver"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/validate"
)

// ListingHandler exposes the listing module over HTTP.
type ListingHandler struct {
	service application.ListingService
}

func NewListingHandler(service application.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// RegisterRoutes mounts the listing routes. authRequired guards every
// mutating endpoint; reads stay public.
func (h *ListingHandler) RegisterRoutes(app *fiber.App, authRequired fiber.Handler) {
	app.Get("/listings", h.ListOpen)
	app.Get("/listings/ending-soon", h.ListEndingSoon)
	app.Get("/listings/:listingID", h.GetListing)
	app.Get("/listings/:listingID/bids", h.ListBids)

	app.Post("/listings", authRequired, h.CreateListing)
	app.Post("/listings/:listingID/close", authRequired, h.CloseListing)
	app.Post("/listings/:listingID/bids", authRequired, h.PlaceBid)
	app.Put("/listings/:listingID/bids/:bidID", authRequired, h.ResolveBid)
}

func (h *ListingHandler) CreateListing(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}

	var req CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	listing, err := h.service.CreateListing(c.Context(), application.CreateListingDTO{
		ActorID:       actorID,
		Title:         req.Title,
		Description:   req.Description,
		PricingMode:   domain.PricingMode(req.PricingMode),
		FixedPrice:    req.FixedPrice,
		StartingBid:   req.StartingBid,
		ReservePrice:  req.ReservePrice,
		AuctionEndsAt: req.AuctionEndsAt,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toListingResponse(listing))
}

func (h *ListingHandler) GetListing(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listingID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid listing id"))
	}
	listing, err := h.service.GetListing(c.Context(), listingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toListingResponse(listing))
}

func (h *ListingHandler) ListOpen(c *fiber.Ctx) error {
	listings, err := h.service.ListOpen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toListingResponses(listings))
}

func (h *ListingHandler) ListEndingSoon(c *fiber.Ctx) error {
	threshold := 24 * time.Hour
	if raw := c.Query("within"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return respondError(c, apperrors.NewValidation("invalid within duration"))
		}
		threshold = parsed
	}
	listings, err := h.service.ListEndingSoon(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toListingResponses(listings))
}

func (h *ListingHandler) CloseListing(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	listingID, err := uuid.Parse(c.Params("listingID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid listing id"))
	}

	listing, err := h.service.CloseListing(c.Context(), application.CloseListingDTO{
		ListingID: listingID,
		ActorID:   actorID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toListingResponse(listing))
}

func (h *ListingHandler) PlaceBid(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	listingID, err := uuid.Parse(c.Params("listingID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid listing id"))
	}

	var req PlaceBidRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	bid, err := h.service.PlaceBid(c.Context(), application.PlaceBidDTO{
		ListingID: listingID,
		ActorID:   actorID,
		Amount:    req.Amount,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBidResponse(bid))
}

func (h *ListingHandler) ListBids(c *fiber.Ctx) error {
	listingID, err := uuid.Parse(c.Params("listingID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid listing id"))
	}
	bids, err := h.service.ListBids(c.Context(), listingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBidResponses(bids))
}

// ResolveBid handles PUT /listings/:listingID/bids/:bidID with body
// {"status": "ACCEPTED" | "REJECTED"}.
func (h *ListingHandler) ResolveBid(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	listingID, err := uuid.Parse(c.Params("listingID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid listing id"))
	}
	bidID, err := uuid.Parse(c.Params("bidID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid bid id"))
	}

	var req ResolveBidRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}
	decision, err := domain.ParseDecision(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	bid, err := h.service.ResolveBid(c.Context(), application.ResolveBidDTO{
		ListingID: listingID,
		BidID:     bidID,
		ActorID:   actorID,
		Decision:  decision,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toBidResponse(bid))
}

func respondError(c *fiber.Ctx, err error) error {
	return httpserver.RespondError(c, toAppError(err))
}
