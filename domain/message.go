package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents one immutable entry in a room's history. Only chat
// messages are recorded; entry and exit announcements are broadcast live
// and never stored.
type Message struct {
	ID        uuid.UUID
	Author    string
	Body      string
	CreatedAt time.Time
}
