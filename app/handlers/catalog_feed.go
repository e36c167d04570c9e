package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CatalogEvent is broadcast whenever the back office changes a product, so
// open storefront listings can refresh without polling.
type CatalogEvent struct {
	Action    string `json:"action"` // created | updated | deleted
	ProductID string `json:"productId"`
}

type CatalogFeed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewCatalogFeed() *CatalogFeed {
	return &CatalogFeed{clients: make(map[*websocket.Conn]bool)}
}

func (f *CatalogFeed) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.clients, conn)
		f.mu.Unlock()
		conn.Close()
	}()

	// Clients only listen; reading here just detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (f *CatalogFeed) Broadcast(event CatalogEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for client := range f.clients {
		if err := client.WriteJSON(event); err != nil {
			log.Printf("CatalogFeed: dropping client after write error: %v", err)
			client.Close()
			delete(f.clients, client)
		}
	}
}
