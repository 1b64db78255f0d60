package websocket

import (
	"encoding/json"

	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/websocket"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// HubPublisher implements domain.EventPublisher by fanning bid events out to
// everyone watching the listing. Broadcasts are queued on the hub channel and
// never block the resolving request.
type HubPublisher struct {
	hub *websocket.Hub
}

func NewHubPublisher(hub *websocket.Hub) *HubPublisher {
	return &HubPublisher{hub: hub}
}

func (p *HubPublisher) BidPlaced(listing *domain.Listing, bid *domain.Bid) {
	msg := BidPlacedMessage{BaseMessage: BaseMessage{Type: MessageTypeBidPlaced}}
	msg.Payload.ListingID = listing.ID.String()
	msg.Payload.BidID = bid.ID.String()
	msg.Payload.Amount = bid.Amount
	msg.Payload.Status = string(bid.Status)
	p.broadcast(listing.ID.String(), msg)
}

func (p *HubPublisher) BidResolved(listing *domain.Listing, bid *domain.Bid) {
	msg := BidResolvedMessage{BaseMessage: BaseMessage{Type: MessageTypeBidResolved}}
	msg.Payload.ListingID = listing.ID.String()
	msg.Payload.BidID = bid.ID.String()
	msg.Payload.Amount = bid.Amount
	msg.Payload.BidStatus = string(bid.Status)
	msg.Payload.ListingStatus = string(listing.Status)
	p.broadcast(listing.ID.String(), msg)
}

func (p *HubPublisher) broadcast(listingID string, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal ws event", zap.Error(err))
		return
	}
	p.hub.BroadcastToListing(listingID, data)
}
