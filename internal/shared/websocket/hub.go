package websocket

import (
	"context"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Hub keeps the registry of connected clients grouped by listing ID and fans
// server events out to everyone watching the same listing. Clients never send
// domain commands over the socket; mutations go through the HTTP API.
type Hub struct {
	// Registered clients, grouped by listing ID.
	clients map[string]map[*Client]bool
	// Outbound messages to fan out.
	broadcast chan *Message
	// Register requests from the clients.
	register chan *Client
	// Unregister requests from clients.
	unregister chan *Client
}

// Client represents an individual ws connection watching one listing.
type Client struct {
	Hub *Hub
	// The websocket connection.
	Conn *websocket.Conn
	// Buffered channel of outbound messages.
	Send chan []byte
	// The listing ID this client is watching.
	ListingID string
	// Unique identifier for the client.
	ID string
}

type Message struct {
	ListingID string
	Data      []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan *Message, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string]map[*Client]bool),
	}
}

// Run starts the hub listening on its channels until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	log.Info("WebSocket hub started")
	for {
		select {
		case <-ctx.Done():
			log.Info("WebSocket hub shutting down")
			return
		case client := <-h.register:
			if _, ok := h.clients[client.ListingID]; !ok {
				h.clients[client.ListingID] = make(map[*Client]bool)
			}
			h.clients[client.ListingID][client] = true
			log.Info("Client registered",
				zap.String("clientID", client.ID),
				zap.String("listingID", client.ListingID),
			)

		case client := <-h.unregister:
			if clients, ok := h.clients[client.ListingID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					log.Info("Client unregistered",
						zap.String("clientID", client.ID),
						zap.String("listingID", client.ListingID),
					)
					if len(clients) == 0 {
						delete(h.clients, client.ListingID)
					}
				}
			}

		case message := <-h.broadcast:
			if clients, ok := h.clients[message.ListingID]; ok {
				for client := range clients {
					select {
					case client.Send <- message.Data:
					default:
						// client not draining its queue, drop it
						close(client.Send)
						delete(clients, client)
						log.Warn("Failed to send message to client, unregistering",
							zap.String("clientID", client.ID),
							zap.String("listingID", client.ListingID),
						)
					}
				}
			}
		}
	}
}

// RegisterClient registers a new client in the hub.
func (h *Hub) RegisterClient(client *Client) {
	select {
	case h.register <- client:
	default:
		log.Error("Register channel is full, client registration failed",
			zap.String("clientID", client.ID),
			zap.String("listingID", client.ListingID),
		)
		_ = client.Conn.Close()
	}
}

// UnregisterClient removes a client from the hub.
func (h *Hub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	default:
		log.Error("Unregister channel is full, client unregistration failed",
			zap.String("clientID", client.ID),
			zap.String("listingID", client.ListingID),
		)
	}
}

// BroadcastToListing sends a message to every client watching listingID.
func (h *Hub) BroadcastToListing(listingID string, data []byte) {
	select {
	case h.broadcast <- &Message{ListingID: listingID, Data: data}:
	default:
		log.Error("Broadcast channel is full, message dropped", zap.String("listingID", listingID))
	}
}

// ReadPump drains the client connection to keep the pong handler running and
// detect the peer closing. Inbound payloads are ignored.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.Hub.UnregisterClient(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("WebSocket read error",
					zap.String("clientID", c.ID),
					zap.String("listingID", c.ListingID),
					zap.Error(err),
				)
			}
			break
		}
	}
}

// WritePump pumps messages from the hub to the websocket connection. One
// goroutine per connection, keeping a single writer on the socket.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Hub.UnregisterClient(c)
		c.Conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.Conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return

		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// the hub closed the channel
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Error("Failed to write message to client",
					zap.String("clientID", c.ID),
					zap.String("listingID", c.ListingID),
					zap.Error(err),
				)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
