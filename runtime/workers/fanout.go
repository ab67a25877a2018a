package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-rooms/contract"
	"chat-rooms/domain/event"
)

var _ contract.Worker = (*FanoutWorker)(nil)

// FanoutWorker broadcasts domain events to every sink subscribed to the
// event's room, plus the permanent sinks (history, projections).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across rooms, durability, or retries. Each delivery is
// bounded by sinkTimeout so a slow or disconnecting peer cannot stall
// the others; a failed delivery is logged and isolated, never propagated
// to the sender or to other subscribers.
type FanoutWorker struct {
	log         *slog.Logger
	subs        contract.ISubscriptions
	permanent   []contract.EventSink
	broadcasts  chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewFanoutWorker(log *slog.Logger, subs contract.ISubscriptions,
	permanent []contract.EventSink, broadcasts chan event.DomainEvent,
	sinkTimeout time.Duration) *FanoutWorker {
	return &FanoutWorker{
		log:         log,
		subs:        subs,
		permanent:   permanent,
		broadcasts:  broadcasts,
		sinkTimeout: sinkTimeout,
	}
}

func (w *FanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fan-out")
			return ctx.Err()
		case evt, ok := <-w.broadcasts:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout delivers one event to the room's current subscriber snapshot
// and to every permanent sink.
func (w *FanoutWorker) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := w.subs.SinksForRoom(evt.RoomCode())
	sinks = append(sinks, w.permanent...)

	for _, sink := range sinks {
		w.consume(ctx, sink, evt)
	}
}

func (w *FanoutWorker) consume(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	delivery, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()

	if err := sink.Consume(delivery, evt); err != nil {
		// A connection closing mid-broadcast lands here; not an error.
		w.log.Debug("Sink delivery failed", "room", evt.RoomCode(), "error", err)
	}
}
