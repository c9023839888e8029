// handlers/realtime.go - Room-based realtime notifications
//
// Each user has a room named "user-<id>". Clients join their own room after
// connecting and receive quest:completed, monster:fed, and
// achievement:unlocked events pushed by the REST handlers.
package handlers

import (
	"fmt"
	"log"
	"sync"
	"time"

	"taskmon/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	pingPeriod     = 15 * time.Second
	sendBufferSize = 64
)

// Message is the wire format for both directions.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type wsClient struct {
	id     string
	userID uint
	conn   *websocket.Conn
	send   chan Message
	rooms  map[string]bool
	mu     sync.Mutex
}

var (
	wsRooms = make(map[string]map[*wsClient]bool)
	wsMu    sync.RWMutex
)

func userRoom(userID uint) string {
	return fmt.Sprintf("user-%d", userID)
}

// EmitToUser pushes an event to every connection in the user's room.
func EmitToUser(userID uint, msgType string, payload interface{}) {
	wsMu.RLock()
	clients := wsRooms[userRoom(userID)]
	msg := Message{Type: msgType, Payload: payload}
	for client := range clients {
		select {
		case client.send <- msg:
		default:
			// Slow consumer; drop rather than block the request path.
		}
	}
	wsMu.RUnlock()
}

// UpgradeMiddleware rejects non-websocket requests on the /ws route.
func UpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebSocketHandler upgrades the connection and runs the read loop. Requires
// WebSocketAuthMiddleware to have stored the user identity in locals.
func WebSocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := localsUserID(conn)
		if !ok {
			conn.Close()
			return
		}

		client := &wsClient{
			id:     uuid.New().String(),
			userID: userID,
			conn:   conn,
			send:   make(chan Message, sendBufferSize),
			rooms:  make(map[string]bool),
		}

		go client.writePump()
		client.joinRoom(userRoom(userID))
		client.sendMessage("connected", fiber.Map{"client_id": client.id})

		defer client.teardown()

		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			client.handleMessage(msg)
		}
	})
}

func localsUserID(conn *websocket.Conn) (uint, bool) {
	switch v := conn.Locals("userId").(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	default:
		return 0, false
	}
}

func (c *wsClient) handleMessage(msg Message) {
	switch msg.Type {
	case "join-user":
		// Clients may only join their own room.
		c.joinRoom(userRoom(c.userID))
	case "leave-user":
		c.leaveRoom(userRoom(c.userID))
	case "ping":
		c.sendMessage("pong", nil)
	default:
		log.Printf("Unknown websocket message type: %s", msg.Type)
	}
}

func (c *wsClient) joinRoom(room string) {
	wsMu.Lock()
	if wsRooms[room] == nil {
		wsRooms[room] = make(map[*wsClient]bool)
	}
	wsRooms[room][c] = true
	wsMu.Unlock()

	c.mu.Lock()
	c.rooms[room] = true
	c.mu.Unlock()
}

func (c *wsClient) leaveRoom(room string) {
	wsMu.Lock()
	if clients, ok := wsRooms[room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(wsRooms, room)
		}
	}
	wsMu.Unlock()

	c.mu.Lock()
	delete(c.rooms, room)
	c.mu.Unlock()
}

func (c *wsClient) sendMessage(msgType string, payload interface{}) {
	select {
	case c.send <- Message{Type: msgType, Payload: payload}:
	default:
	}
}

// writePump is the only goroutine writing to the connection, serializing
// event pushes and keepalive pings.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) teardown() {
	c.mu.Lock()
	rooms := make([]string, 0, len(c.rooms))
	for room := range c.rooms {
		rooms = append(rooms, room)
	}
	c.mu.Unlock()

	for _, room := range rooms {
		c.leaveRoom(room)
	}

	close(c.send)
	c.conn.Close()
}

// RegisterRealtimeRoutes mounts the websocket endpoint on the app.
func RegisterRealtimeRoutes(app *fiber.App) {
	app.Use("/ws", UpgradeMiddleware)
	app.Get("/ws", middleware.WebSocketAuthMiddleware, WebSocketHandler())
}
