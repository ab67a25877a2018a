package domain

import (
	"time"
)

// RoomCode identifies an active room. Codes are short uppercase strings
// generated server-side, never chosen by a client.
type RoomCode string

// Room holds the live state of one chat room: who is present and what has
// been said. A Room never exists with an empty member set; the registry
// destroys it the instant the last member leaves.
//
// Room carries no lock of its own. All mutations go through the registry,
// which serializes them per room.
type Room struct {
	Code       RoomCode
	members    map[string]struct{}
	messages   []Message
	LastActive time.Time
}

func NewRoom(code RoomCode) *Room {
	return &Room{
		Code:       code,
		members:    make(map[string]struct{}),
		messages:   nil,
		LastActive: time.Now().UTC(),
	}
}

// HasMember reports whether name is currently present in the room.
func (r *Room) HasMember(name string) bool {
	_, ok := r.members[name]
	return ok
}

// AddMember inserts name into the member set. Set semantics: adding a
// name twice is the caller's bug, checked by the registry beforehand.
func (r *Room) AddMember(name string) {
	r.members[name] = struct{}{}
	r.LastActive = time.Now().UTC()
}

// RemoveMember discards name and reports whether the room is now empty.
func (r *Room) RemoveMember(name string) (empty bool) {
	delete(r.members, name)
	r.LastActive = time.Now().UTC()
	return len(r.members) == 0
}

func (r *Room) MemberCount() int {
	return len(r.members)
}

// Members returns a copy of the current member names, in no particular
// order.
func (r *Room) Members() []string {
	names := make([]string, 0, len(r.members))
	for name := range r.members {
		names = append(names, name)
	}
	return names
}

// History returns a copy of the message log in insertion order.
func (r *Room) History() []Message {
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Append records a message at the end of the history. When limit is
// non-nil and the history exceeds it, the oldest entries are dropped.
func (r *Room) Append(msg Message, limit *int) {
	r.messages = append(r.messages, msg)
	if limit != nil && *limit > 0 && len(r.messages) > *limit {
		r.messages = r.messages[len(r.messages)-*limit:]
	}
	r.LastActive = time.Now().UTC()
}
