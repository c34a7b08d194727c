package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	wshandler "github.com/kemetlearn/kemet_service/internal/handler/ws"
	"github.com/kemetlearn/kemet_service/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure appropriately for production
	},
}

// WebSocketMessage represents a WebSocket message.
type WebSocketMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Client represents a WebSocket client.
type Client struct {
	ID   string
	Hub  *WebSocketHub
	Conn *websocket.Conn
	Send chan []byte
}

// WebSocketHub manages speech session connections. Playback state
// transitions from the speech service are broadcast to every client so
// all open views stay in sync with the single shared stream.
type WebSocketHub struct {
	clients       map[*Client]bool
	broadcast     chan []byte
	register      chan *Client
	unregister    chan *Client
	mu            sync.RWMutex
	log           zerolog.Logger
	speechService *service.SpeechService
}

// NewWebSocketHub creates a new WebSocket hub.
func NewWebSocketHub(log zerolog.Logger, speechService *service.SpeechService) *WebSocketHub {
	return &WebSocketHub{
		clients:       make(map[*Client]bool),
		broadcast:     make(chan []byte, 256),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		log:           log,
		speechService: speechService,
	}
}

// Run starts the hub and relays playback events until ctx is cancelled.
func (h *WebSocketHub) Run(ctx context.Context) {
	events, cancelEvents := h.speechService.Subscribe()
	defer cancelEvents()

	for {
		select {
		case <-ctx.Done():
			h.log.Info().Msg("WebSocket hub shutting down")
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(wshandler.Response{
				Type:    wshandler.TypeState,
				Payload: event,
			})
			if err != nil {
				continue
			}
			h.broadcastLocked(data)

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Info().Str("client_id", client.ID).Msg("Client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.log.Info().Str("client_id", client.ID).Msg("Client disconnected")

		case message := <-h.broadcast:
			h.broadcastLocked(message)
		}
	}
}

func (h *WebSocketHub) broadcastLocked(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			// Slow client; it will be dropped by its own pumps.
		}
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *WebSocketHub) HandleWebSocket(w http.ResponseWriter, r *http.Request, handler *wshandler.Handler) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	clientID := r.Header.Get("X-Request-ID")
	if clientID == "" {
		clientID = uuid.New().String()
	}

	client := &Client{
		ID:   clientID,
		Hub:  h,
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.register <- client

	go client.writePump()
	go client.readPump(handler)
}

// Broadcast sends a message to all connected clients.
func (h *WebSocketHub) Broadcast(message []byte) {
	h.broadcast <- message
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) readPump(handler *wshandler.Handler) {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Error().Err(err).Msg("WebSocket read error")
			}
			break
		}

		var msg WebSocketMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.Hub.log.Error().Err(err).Msg("Failed to parse WebSocket message")
			continue
		}

		response, err := handler.Handle(context.Background(), c.ID, msg.Type, msg.Payload)
		if err != nil {
			c.Hub.log.Error().Err(err).Str("type", msg.Type).Msg("Failed to handle message")
			continue
		}

		if response != nil {
			c.Send <- response
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		w.Close()
	}
}
