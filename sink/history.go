// Package sink holds the permanent consumers of the fan-out: side
// effects fed by every broadcast, independent of any one connection.
package sink

import (
	"context"
	"log/slog"

	"chat-rooms/contract"
	"chat-rooms/domain"
	"chat-rooms/domain/event"
)

// HistorySink appends sanitized messages to the owning room's in-memory
// log. Entry and exit announcements are broadcast-only and never
// recorded, matching what a late viewer should see in the history.
type HistorySink struct {
	registry contract.IRegistry
	log      *slog.Logger
}

func NewHistorySink(registry contract.IRegistry, log *slog.Logger) HistorySink {
	return HistorySink{registry: registry, log: log}
}

func (h HistorySink) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.SanitizedMessage)
	if !ok {
		return nil
	}
	// AppendMessage is a silent no-op when the room was torn down
	// between broadcast and append; that race is expected.
	h.registry.AppendMessage(evt.Room, domain.Message{
		ID:        evt.ID,
		Author:    evt.Author,
		Body:      evt.Content,
		CreatedAt: evt.At,
	})
	return nil
}
