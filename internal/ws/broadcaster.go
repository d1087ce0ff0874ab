package ws

import "log"

// Broadcaster turns calendar changes into hub messages. Controllers
// call it after a successful operation; delivery is fire-and-forget.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) BroadcastEventCreated(eventID, calendarID, name string) {
	b.send(NewMessage(TypeEventCreated, EventPayload{EventID: eventID, CalendarID: calendarID, Name: name}))
}

func (b *Broadcaster) BroadcastEventUpdated(eventID, calendarID, name string) {
	b.send(NewMessage(TypeEventUpdated, EventPayload{EventID: eventID, CalendarID: calendarID, Name: name}))
}

func (b *Broadcaster) BroadcastEventDeleted(eventID string) {
	b.send(NewMessage(TypeEventDeleted, EventPayload{EventID: eventID}))
}

func (b *Broadcaster) BroadcastChargeStatusChanged(chargeID, eventID, userID, previous, current string) {
	b.send(NewMessage(TypeChargeStatusChanged, ChargeStatusPayload{
		ChargeID:       chargeID,
		EventID:        eventID,
		UserID:         userID,
		PreviousStatus: previous,
		NewStatus:      current,
	}))
}

func (b *Broadcaster) BroadcastChargeAssigned(chargeID, eventID, userID string) {
	b.send(NewMessage(TypeChargeAssigned, ChargeAssignmentPayload{ChargeID: chargeID, EventID: eventID, UserID: userID}))
}

func (b *Broadcaster) BroadcastChargeRemoved(eventID, userID string) {
	b.send(NewMessage(TypeChargeRemoved, ChargeAssignmentPayload{EventID: eventID, UserID: userID}))
}

func (b *Broadcaster) send(msg Message) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("Error encoding websocket message: %v", err)
		return
	}
	b.hub.Broadcast(data)
}
