package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Client represents one connected buyer.
type Client struct {
	BuyerID string
	Conn    *websocket.Conn
	Send    chan []byte
}

// Manager tracks all active chat connections.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.BuyerID] = client
				m.mutex.Unlock()
				log.Printf("Chat client registered: %s", client.BuyerID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.BuyerID]; ok {
					delete(m.clients, client.BuyerID)
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Chat client unregistered: %s", client.BuyerID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Connected returns the number of active connections.
func (m *Manager) Connected() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}
