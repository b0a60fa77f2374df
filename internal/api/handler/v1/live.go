package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/slots-pg/dashboard-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	clientBuffer   = 64
	broadcastSize  = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var connectedMsg, _ = json.Marshal(map[string]string{"type": "connected"})

type liveClient struct {
	conn *websocket.Conn
	send chan []byte
}

// LiveHandler fans slot events out to websocket clients. Run owns the client set; everything else
// talks to it through channels.
type LiveHandler struct {
	clients    map[*liveClient]struct{}
	broadcast  chan []byte
	register   chan *liveClient
	unregister chan *liveClient
	done       chan struct{}
}

func NewLiveHandler() *LiveHandler {
	return &LiveHandler{
		clients:    make(map[*liveClient]struct{}),
		broadcast:  make(chan []byte, broadcastSize),
		register:   make(chan *liveClient),
		unregister: make(chan *liveClient),
		done:       make(chan struct{}),
	}
}

func (h *LiveHandler) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			client.send <- connectedMsg
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// Publish queues event for every connected client. The event is dropped when the queue is full.
func (h *LiveHandler) Publish(event domain.SlotEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("failed to encode slot event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- message:
	default:
		zap.L().Warn("live broadcast queue full, slot event dropped",
			zap.String("event_id", event.ID.String()),
			zap.Uint("slot_id", event.Slot.ID),
		)
	}
}

// HandleLive godoc
// @Summary      Live slot events
// @Description  Upgrades to a websocket that receives a JSON domain.SlotEvent for every slot change.
// @Tags         slots
// @Success      101  {string}  string  "Switching Protocols to WebSocket"
// @Router       /slots/live [get]
func (h *LiveHandler) HandleLive(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &liveClient{
		conn: conn,
		send: make(chan []byte, clientBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *liveClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the peer going away; clients have nothing to send.
func (c *liveClient) readPump(h *LiveHandler) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("live client closed", zap.Error(err))
			}
			return
		}
	}
}
