package ws

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubBroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub)
	hub.Register(client)

	hub.Broadcast([]byte("hola"))

	select {
	case msg := <-client.Send():
		if string(msg) != "hola" {
			t.Fatalf("got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("broadcast never reached the client")
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(hub)
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.Send():
		if ok {
			t.Fatal("expected closed channel after unregister")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := NewClient(hub)
	// Saturate the send buffer so the next broadcast cannot be queued.
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("backlog")
	}
	hub.Register(slow)

	healthy := NewClient(hub)
	hub.Register(healthy)

	hub.Broadcast([]byte("hola"))

	select {
	case msg := <-healthy.Send():
		if string(msg) != "hola" {
			t.Fatalf("got %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("healthy client must still receive broadcasts")
	}

	deadline := time.After(time.Second)
	for hub.ClientCount() != 1 {
		select {
		case <-deadline:
			t.Fatalf("slow client not dropped, count = %d", hub.ClientCount())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestBroadcasterEncodesChargeStatusMessage(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	client := NewClient(hub)
	hub.Register(client)

	b := NewBroadcaster(hub)
	b.BroadcastChargeStatusChanged("c1", "e1", "u1", "PENDIENTE", "EN_PROGRESO")

	select {
	case raw := <-client.Send():
		var msg struct {
			Type    MessageType         `json:"type"`
			Payload ChargeStatusPayload `json:"payload"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != TypeChargeStatusChanged {
			t.Errorf("type = %s", msg.Type)
		}
		if msg.Payload.ChargeID != "c1" || msg.Payload.NewStatus != "EN_PROGRESO" || msg.Payload.PreviousStatus != "PENDIENTE" {
			t.Errorf("payload = %+v", msg.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("message never delivered")
	}
}
