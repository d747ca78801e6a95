package live

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is one ledger mutation pushed to connected dashboard clients.
type Event struct {
	Type   string    `json:"type"`
	Folio  string    `json:"folio,omitempty"`
	ID     string    `json:"id,omitempty"`
	Amount float64   `json:"amount,omitempty"`
	At     time.Time `json:"at"`
}

// Hub fans ledger events out to every connected client. It satisfies the
// EventSink interfaces of the celebration and intention ledgers.
type Hub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.connections[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

func (h *Hub) CelebrationRegistered(folio string) {
	h.Broadcast(Event{Type: "celebration_registered", Folio: folio, At: time.Now()})
}

func (h *Hub) PaymentAdded(folio string, amount float64) {
	h.Broadcast(Event{Type: "payment_added", Folio: folio, Amount: amount, At: time.Now()})
}

func (h *Hub) IntentionRegistered(id string) {
	h.Broadcast(Event{Type: "intention_registered", ID: id, At: time.Now()})
}
