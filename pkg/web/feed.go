// Package web - live event feed over websockets
package web

import (
	"fmt"
	"net/http"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/mqtt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboards live on other origins
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Feed fans bot events out to all connected websocket clients.
// Slow or broken clients are dropped, never waited on.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

var feed = &Feed{clients: make(map[*websocket.Conn]struct{})}

// GetFeed returns the global event feed
func GetFeed() *Feed {
	return feed
}

// Broadcast serializes the event and pushes it to every client
func (f *Feed) Broadcast(event mqtt.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error(fmt.Sprintf("Error serializando evento del feed: %v", err), "WebFeed")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

// add registers a client connection
func (f *Feed) add(conn *websocket.Conn) {
	f.mu.Lock()
	f.clients[conn] = struct{}{}
	f.mu.Unlock()
}

// remove drops a client connection
func (f *Feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	if _, ok := f.clients[conn]; ok {
		conn.Close()
		delete(f.clients, conn)
	}
	f.mu.Unlock()
}

// feedHandler upgrades the request and keeps the connection registered
// until the client goes away
func feedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error actualizando conexión websocket: %v", err), "WebFeed")
		return
	}

	feed.add(conn)
	logger.Debug("Cliente websocket conectado al feed de eventos", "WebFeed")

	// Drain inbound frames; the feed only pushes
	go func() {
		defer feed.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
