package event

import (
	"time"

	"chat-rooms/domain"

	"github.com/google/uuid"
)

// DomainEvent is anything the fan-out can deliver to the sinks
// subscribed to a room.
type DomainEvent interface {
	RoomCode() domain.RoomCode
}

// MessagePosted is the raw inbound text of a bound connection. It only
// travels between the router and the sanitize worker; it never reaches a
// client or the history as-is.
type MessagePosted struct {
	ID      uuid.UUID
	Room    domain.RoomCode
	Author  string
	Content string
	At      time.Time
}

func (m MessagePosted) RoomCode() domain.RoomCode { return m.Room }

// SanitizedMessage is a MessagePosted whose content went through the
// sanitizer. This is what gets broadcast and appended to the history.
type SanitizedMessage struct {
	ID      uuid.UUID
	Room    domain.RoomCode
	Author  string
	Content string
	At      time.Time
}

func (m SanitizedMessage) RoomCode() domain.RoomCode { return m.Room }

// MemberJoined announces an entry to everyone in the room, including the
// member who just joined.
type MemberJoined struct {
	Room domain.RoomCode
	Name string
	At   time.Time
}

func (m MemberJoined) RoomCode() domain.RoomCode { return m.Room }

// MemberLeft announces an exit to the remaining members.
type MemberLeft struct {
	Room domain.RoomCode
	Name string
	At   time.Time
}

func (m MemberLeft) RoomCode() domain.RoomCode { return m.Room }

// Connected is the private acknowledgment delivered to the joining
// connection only, carrying its own name.
type Connected struct {
	Room domain.RoomCode
	Name string
}

func (c Connected) RoomCode() domain.RoomCode { return c.Room }

// Disconnected is the best-effort notice addressed to a room when one of
// its connections goes away.
type Disconnected struct {
	Room domain.RoomCode
	Name string
}

func (d Disconnected) RoomCode() domain.RoomCode { return d.Room }
