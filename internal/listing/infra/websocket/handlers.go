package websocket

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/websocket"
)

// WatchHandler upgrades GET /ws/listings/:listingID to a websocket and joins
// the client to that listing's broadcast group.
type WatchHandler struct {
	service application.ListingService
	hub     *websocket.Hub
}

func NewWatchHandler(service application.ListingService, hub *websocket.Hub) *WatchHandler {
	return &WatchHandler{service: service, hub: hub}
}

func (h *WatchHandler) RegisterRoutes(app *fiber.App, ctx context.Context) {
	app.Use("/ws/listings/:listingID", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/listings/:listingID", fiberws.New(func(conn *fiberws.Conn) {
		h.serve(ctx, conn)
	}))
}

func (h *WatchHandler) serve(ctx context.Context, conn *fiberws.Conn) {
	listingID, err := uuid.Parse(conn.Params("listingID"))
	if err != nil {
		h.sendError(conn, "invalid listing id")
		_ = conn.Close()
		return
	}
	listing, err := h.service.GetListing(ctx, listingID)
	if err != nil {
		h.sendError(conn, "listing not found")
		_ = conn.Close()
		return
	}

	client := &websocket.Client{
		Hub:       h.hub,
		Conn:      conn,
		Send:      make(chan []byte, 16),
		ListingID: listingID.String(),
		ID:        uuid.NewString(),
	}
	h.hub.RegisterClient(client)

	// current state first, so the client has a baseline before live events
	state := ListingStateMessage{BaseMessage: BaseMessage{Type: MessageTypeListingState}}
	state.Payload.ListingID = listing.ID.String()
	state.Payload.Title = listing.Title
	state.Payload.PricingMode = string(listing.PricingMode)
	state.Payload.Status = string(listing.Status)
	state.Payload.StartingBid = listing.StartingBid
	state.Payload.AuctionEndsAt = listing.AuctionEndsAt
	if data, err := json.Marshal(state); err == nil {
		client.Send <- data
	}

	go client.WritePump(ctx)
	client.ReadPump(ctx) // blocks until the peer disconnects
}

func (h *WatchHandler) sendError(conn *fiberws.Conn, message string) {
	errMsg := ErrorMessage{BaseMessage: BaseMessage{Type: MessageTypeError}}
	errMsg.Payload.Error = message
	if data, err := json.Marshal(errMsg); err == nil {
		_ = conn.WriteMessage(fiberws.TextMessage, data)
	}
}
