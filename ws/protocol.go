package ws

import (
	"encoding/json"
	"fmt"

	"chat-rooms/domain/event"
)

// Wire event names. These match what the browser client listens for.
const (
	EventMessage      = "message"
	EventConnected    = "connected"
	EventDisconnected = "disconnected"
)

// Envelope is the frame exchanged in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// InboundMessage is the payload a client sends with a message frame.
type InboundMessage struct {
	Data string `json:"data"`
}

// MessageData is the broadcast payload: either an authored chat message
// or a global system announcement.
type MessageData struct {
	Name     string `json:"name,omitempty"`
	Message  string `json:"message"`
	IsGlobal bool   `json:"is_global,omitempty"`
}

// PresenceData carries the member name on connected/disconnected frames.
type PresenceData struct {
	Name string `json:"name"`
}

// encode translates a domain event into its wire frame. Events without
// a wire representation (raw MessagePosted never leaves the pipeline)
// report ok=false.
func encode(e event.DomainEvent) ([]byte, bool) {
	var (
		name string
		data any
	)
	switch evt := e.(type) {
	case event.SanitizedMessage:
		name = EventMessage
		data = MessageData{Name: evt.Author, Message: evt.Content}
	case event.MemberJoined:
		name = EventMessage
		data = MessageData{IsGlobal: true, Message: fmt.Sprintf("<b>%s</b> has entered the room", evt.Name)}
	case event.MemberLeft:
		name = EventMessage
		data = MessageData{IsGlobal: true, Message: fmt.Sprintf("<b>%s</b> has left the room", evt.Name)}
	case event.Connected:
		name = EventConnected
		data = PresenceData{Name: evt.Name}
	case event.Disconnected:
		name = EventDisconnected
		data = PresenceData{Name: evt.Name}
	default:
		return nil, false
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, false
	}
	frame, err := json.Marshal(Envelope{Event: name, Data: payload})
	if err != nil {
		return nil, false
	}
	return frame, true
}
