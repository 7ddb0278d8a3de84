package events

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Event is the wire shape pushed to connected clients. The stream is
// read-only, clients refetch the contract on receipt.
type Event struct {
	Type       string `json:"type"`
	ContractID string `json:"contractId,omitempty"`
}

// Hub fans events out to every connected client. Connections are keyed
// by a per-connection id, one user may hold several tabs open.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[connID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[connID] = conn
}

func (h *Hub) Unregister(connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[connID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, connID)
	}
}

// Broadcast writes the event to every connection, dropping the ones that
// fail. Holding the write lock also serializes WriteJSON calls, the
// gorilla Conn does not allow concurrent writers.
func (h *Hub) Broadcast(event Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for connID, conn := range h.connections {
		if conn == nil {
			delete(h.connections, connID)
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			_ = conn.Close()
			delete(h.connections, connID)
		}
	}
}

// ContractChanged implements the change publisher consumed by the
// contracts service.
func (h *Hub) ContractChanged(contractID string) {
	h.Broadcast(Event{Type: "contracts.changed", ContractID: contractID})
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for connID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, connID)
	}
}
