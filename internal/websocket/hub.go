package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"quickie-be/internal/entity"
	"quickie-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Hub tracks connected clients per user and fans notifications out to
// them. When Redis is configured, deliveries are also published on the
// cluster_events channel so other instances can reach their own clients.
type Hub struct {
	// UserID -> connected clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

func envelope(notification entity.Notification) []byte {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	return data
}

// push queues the message on each client and reports the ones whose
// buffers were full. The caller unregisters those after releasing the
// lock; only the Run loop closes a client's Send channel.
func push(clients []*Client, message []byte) []*Client {
	var slow []*Client
	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	return slow
}

func (h *Hub) evict(clients []*Client) {
	for _, client := range clients {
		h.unregister <- client
	}
}

// Broadcast sends a notification to ALL connected clients.
func (h *Hub) Broadcast(notification entity.Notification) {
	data := envelope(notification)

	var slow []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		slow = append(slow, push(clients, data)...)
	}
	h.mu.RUnlock()
	h.evict(slow)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_user_id": "*",
			"message":        data,
		})
		h.rdb.Publish(context.Background(), "cluster_events", payload)
	}
}

// Send delivers a notification to one user's clients, local and remote.
func (h *Hub) Send(userID uuid.UUID, notification entity.Notification) {
	data := envelope(notification)

	h.mu.RLock()
	slow := push(h.clients[userID], data)
	h.mu.RUnlock()

	if len(slow) > 0 {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": userID})
	}
	h.evict(slow)

	// Always publish for multi-device and multi-instance delivery.
	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"target_user_id": userID.String(),
			"message":        data,
		})
		h.rdb.Publish(context.Background(), "cluster_events", payload)
	}
}

func (h *Hub) deliverLocal(uid uuid.UUID, message json.RawMessage) {
	h.mu.RLock()
	slow := push(h.clients[uid], message)
	h.mu.RUnlock()
	h.evict(slow)
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.TargetUserID == "*" {
			var slow []*Client
			h.mu.RLock()
			for _, clients := range h.clients {
				slow = append(slow, push(clients, payload.Message)...)
			}
			h.mu.RUnlock()
			h.evict(slow)
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}
		h.deliverLocal(uid, payload.Message)
	}
}
