package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
)

func TestWSHubStopTerminatesRun(t *testing.T) {
	hub := NewWSHub(bus.NewMemory())

	stopped := make(chan struct{})
	go func() {
		hub.Run()
		close(stopped)
	}()

	hub.Stop()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub event loop did not exit after Stop")
	}

	assert.Zero(t, hub.ClientCount())
	assert.NotPanics(t, hub.Stop, "Stop is idempotent")
}

func TestWSHubForwardsBusSignals(t *testing.T) {
	b := bus.NewMemory()
	hub := NewWSHub(b)

	go hub.Run()
	defer hub.Stop()

	client := &Client{ID: "test", Send: make(chan []byte, 1), Hub: hub}
	hub.register <- client

	b.Publish()

	select {
	case msg := <-client.Send:
		assert.JSONEq(t, `{"type":"store-update"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("no broadcast reached the client")
	}
}
