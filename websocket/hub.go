package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RefreshEvent is pushed to every connected client when the sample dataset
// is regenerated.
type RefreshEvent struct {
	Event        string    `json:"event"`
	GeneratedAt  time.Time `json:"generated_at"`
	Students     int       `json:"students"`
	Courses      int       `json:"courses"`
	Enrollments  int       `json:"enrollments"`
	Certificates int       `json:"certificates"`
}

type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan RefreshEvent, 8)

// NotifyRefresh queues a refresh event for broadcast without blocking the
// caller when no hub is draining the channel.
func NotifyRefresh(event RefreshEvent) {
	event.Event = "dataset_refreshed"
	select {
	case Broadcast <- event:
	default:
		log.Println("Refresh event dropped: broadcast channel full")
	}
}

// Handler upgrades the connection and parks it in the hub until the client
// goes away.
func Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{ID: uuid.New(), Conn: conn}
		Register <- client
		defer func() {
			Unregister <- client
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.ID)
			clientsMu.Lock()
			clients[client.ID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.ID)
			clientsMu.Lock()
			if conn, ok := clients[client.ID]; ok && conn == client.Conn {
				delete(clients, client.ID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			stale := make([]uuid.UUID, 0)
			for id, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending refresh event to client %s: %v", id, err)
					conn.Close()
					stale = append(stale, id)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, id := range stale {
					delete(clients, id)
				}
				clientsMu.Unlock()
			}
		}
	}
}
