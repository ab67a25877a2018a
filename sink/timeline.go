package sink

import (
	"context"
	"sync"

	"chat-rooms/domain"
	"chat-rooms/domain/event"
)

// Timeline keeps a rolling, capacity-bounded view of the latest
// sanitized messages across all rooms. Purely observational: nothing in
// the core reads it back, it exists for operators and tests.
type Timeline struct {
	mu       sync.Mutex
	capacity int
	messages []domain.Message
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{capacity: capacity}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.SanitizedMessage)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, domain.Message{
		ID:        evt.ID,
		Author:    evt.Author,
		Body:      evt.Content,
		CreatedAt: evt.At,
	})
	if t.capacity > 0 && len(t.messages) > t.capacity {
		t.messages = t.messages[len(t.messages)-t.capacity:]
	}
	return nil
}

// Latest returns a copy of the retained messages in arrival order.
func (t *Timeline) Latest() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}
