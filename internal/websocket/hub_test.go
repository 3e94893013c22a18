package websocket

import (
	"testing"
	"time"

	"quickie-be/internal/entity"

	"github.com/google/uuid"
)

type nopLogger struct{}

// waitForClients blocks until the hub tracks n clients in total.
func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		total := 0
		for _, clients := range hub.clients {
			total += len(clients)
		}
		hub.mu.RUnlock()
		if total == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d registered clients", n)
}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestSendEvictsSaturatedClient(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userID := uuid.New()
	slow := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- slow
	hub.register <- healthy
	waitForClients(t, hub, 2)

	// Saturate the slow client's buffer so the next delivery cannot
	// be queued.
	slow.Send <- []byte("backlog")

	hub.Send(userID, entity.Notification{Id: uuid.New(), UserId: userID})

	select {
	case msg := <-healthy.Send:
		if len(msg) == 0 {
			t.Fatal("healthy client received an empty message")
		}
	case <-time.After(time.Second):
		t.Fatal("healthy client did not receive the message")
	}

	// The hub must unregister the saturated client and close its
	// channel exactly once.
	<-slow.Send
	select {
	case _, ok := <-slow.Send:
		if ok {
			t.Fatal("expected the send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("saturated client was not evicted")
	}
}

func TestBroadcastWithSaturatedClients(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	for i := 0; i < 2; i++ {
		client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
		hub.register <- client
		client.Send <- []byte("backlog")
	}
	waitForClients(t, hub, 2)

	done := make(chan struct{})
	go func() {
		hub.Broadcast(entity.Notification{Id: uuid.New()})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast did not finish with saturated clients")
	}
}
