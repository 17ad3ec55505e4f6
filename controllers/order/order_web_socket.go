// order_web_socket.go
package orderControllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// OrderFeed polls the upstream order source and pushes status changes to
// connected websocket clients. The last-seen status map is transient
// diff state, discarded when the feed stops.
type OrderFeed struct {
	mc    *marketplace.Client
	token string

	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	statuses map[string]models.OrderStatus
}

func NewOrderFeed(mc *marketplace.Client, serviceToken string) *OrderFeed {
	return &OrderFeed{
		mc:       mc,
		token:    serviceToken,
		clients:  make(map[*websocket.Conn]bool),
		statuses: make(map[string]models.OrderStatus),
	}
}

// Handler upgrades the connection and keeps it registered until the
// client goes away.
func (f *OrderFeed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

// Run polls until ctx is cancelled.
func (f *OrderFeed) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.poll(ctx)
		}
	}
}

func (f *OrderFeed) poll(ctx context.Context) {
	orders, err := f.mc.AllOrders(ctx, f.token)
	if err != nil {
		log.Printf("⚠️ order feed poll failed: %v", err)
		return
	}

	for _, order := range orders {
		f.mu.Lock()
		last, seen := f.statuses[order.ID]
		f.statuses[order.ID] = order.Status
		f.mu.Unlock()

		if seen && last == order.Status {
			continue
		}
		f.broadcast(order)
	}
}

func (f *OrderFeed) broadcast(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
