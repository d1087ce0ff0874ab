package ws

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	TypeEventCreated        MessageType = "event.created"
	TypeEventUpdated        MessageType = "event.updated"
	TypeEventDeleted        MessageType = "event.deleted"
	TypeChargeStatusChanged MessageType = "charge.status_changed"
	TypeChargeAssigned      MessageType = "charge.assigned"
	TypeChargeRemoved       MessageType = "charge.removed"

	TypePing MessageType = "ping"
	TypePong MessageType = "pong"
)

// Message is the envelope every broadcast uses.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

type EventPayload struct {
	EventID    string `json:"event_id"`
	CalendarID string `json:"calendar_id"`
	Name       string `json:"name"`
}

type ChargeStatusPayload struct {
	ChargeID       string `json:"charge_id"`
	EventID        string `json:"event_id"`
	UserID         string `json:"user_id"`
	PreviousStatus string `json:"previous_status,omitempty"`
	NewStatus      string `json:"new_status"`
}

type ChargeAssignmentPayload struct {
	ChargeID string `json:"charge_id"`
	EventID  string `json:"event_id"`
	UserID   string `json:"user_id"`
}
