package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/llmdesk/llmdesk/internal/logger"
	"github.com/llmdesk/llmdesk/internal/types"
	"go.uber.org/zap"
)

// feedClient serializes writes to one connection: broadcasts arrive from
// request goroutines while the ping loop writes from its own, and
// gorilla/websocket forbids concurrent writers.
type feedClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *feedClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

func (c *feedClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

var (
	feedClients   = make(map[*feedClient]bool)
	feedClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastTaskRefresh tells every connected dashboard to refetch the task
// list. Called after task submission and status changes.
func BroadcastTaskRefresh() {
	feedClientsMu.RLock()
	if len(feedClients) == 0 {
		feedClientsMu.RUnlock()
		return
	}

	clientsCopy := make([]*feedClient, 0, len(feedClients))
	for client := range feedClients {
		clientsCopy = append(clientsCopy, client)
	}
	feedClientsMu.RUnlock()

	for _, client := range clientsCopy {
		err := client.writeJSON(map[string]string{
			"type":    "refresh",
			"message": "Task data updated",
		})

		if err != nil {
			logger.L().Warn("failed to broadcast refresh to client", zap.Error(err))
			removeFeedClient(client)
			client.conn.Close()
		}
	}
}

func removeFeedClient(client *feedClient) {
	feedClientsMu.Lock()
	delete(feedClients, client)
	feedClientsMu.Unlock()
}

// TaskFeed upgrades the connection and keeps it registered until the client
// goes away. The feed only pushes refresh hints; clients never send data.
func TaskFeed(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.L().Warn("failed to set initial read deadline", zap.Error(err))
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	client := &feedClient{conn: conn}

	feedClientsMu.Lock()
	feedClients[client] = true
	feedClientsMu.Unlock()

	defer func() {
		removeFeedClient(client)
		conn.Close()
	}()

	// Confirms registration; broadcasts sent after this frame will reach
	// the client.
	if err := client.writeJSON(map[string]string{"type": "connected"}); err != nil {
		return
	}

	// Keepalive pings; the read loop below notices dead peers.
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			case <-stop:
				return
			}
		}
	}()
	defer close(stop)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
