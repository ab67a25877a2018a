package workers

import (
	"context"
	"log/slog"

	"chat-rooms/contract"
	"chat-rooms/domain/event"
	"chat-rooms/sanitize"
)

// Ensure *SanitizeWorker implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*SanitizeWorker)(nil)

// SanitizeWorker sits between the router and the fan-out: every raw
// message payload is neutralized here before anything downstream can
// record or broadcast it. Original content never leaves this stage.
type SanitizeWorker struct {
	rawEvents  chan event.DomainEvent
	broadcasts chan event.DomainEvent
	log        *slog.Logger
}

func NewSanitizeWorker(rawEvents, broadcasts chan event.DomainEvent, log *slog.Logger) *SanitizeWorker {
	return &SanitizeWorker{rawEvents: rawEvents, broadcasts: broadcasts, log: log}
}

func (w *SanitizeWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.rawEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			posted, ok := e.(event.MessagePosted)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.broadcasts <- toSanitized(posted):
			}
		}
	}
}

func toSanitized(e event.MessagePosted) event.SanitizedMessage {
	return event.SanitizedMessage{
		ID:      e.ID,
		Room:    e.Room,
		Author:  e.Author,
		Content: sanitize.Sanitize(e.Content),
		At:      e.At,
	}
}
