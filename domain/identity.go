// Package domain contains the core concepts of the chat room system:
// rooms, codes, messages, and the session identity a connection is
// bound to. Nothing here knows about transports or storage.
package domain

// Identity is the (name, room) pair established during the HTTP
// handshake. Either field may be empty for a client that reached the
// transport without completing the room-selection form.
type Identity struct {
	Name string
	Room RoomCode
}

// Complete reports whether both fields are present. An incomplete
// identity is rejected silently at connect time.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Room != ""
}
