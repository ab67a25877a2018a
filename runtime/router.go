// Package runtime wires the room registry, the subscription table, and
// the event pipeline together. It routes connection lifecycle events,
// enforces room invariants, and fans messages out to subscribers without
// containing any transport or rendering logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-rooms/contract"
	"chat-rooms/domain"
	"chat-rooms/domain/event"
	"chat-rooms/errors"

	"github.com/google/uuid"
)

// Router is the core state machine. Each connection moves
// Unbound -> Bound -> Closed; transitions are one-directional and
// terminal at Closed. A connection only ever appears in the table while
// Bound.
type Router struct {
	mu          sync.RWMutex
	log         *slog.Logger
	registry    contract.IRegistry
	subs        contract.ISubscriptions
	rawEvents   chan<- event.DomainEvent
	broadcasts  chan<- event.DomainEvent
	sinkTimeout time.Duration
	bound       map[string]domain.Identity
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, subs contract.ISubscriptions,
	rawEvents, broadcasts chan<- event.DomainEvent, sinkTimeout time.Duration) *Router {
	return &Router{
		log:         log,
		registry:    registry,
		subs:        subs,
		rawEvents:   rawEvents,
		broadcasts:  broadcasts,
		sinkTimeout: sinkTimeout,
		bound:       make(map[string]domain.Identity),
	}
}

// OnConnect resolves a connecting client into a Bound connection.
//
// A client that reached the transport without completing the room form
// has no identity and is rejected silently; a binding to a room that no
// longer exists is stale and detached the same way. Otherwise the
// connection is subscribed, privately acknowledged, entered into the
// member set, and announced to the whole room including itself.
func (r *Router) OnConnect(ctx context.Context, identity domain.Identity, sink contract.EventSink) (string, error) {
	if !identity.Complete() {
		return "", errors.ErrInvalidIdentity
	}
	if !r.registry.Exists(identity.Room) {
		return "", errors.ErrRoomNotFound
	}

	connID := uuid.NewString()
	r.subs.Subscribe(connID, identity.Room, sink)

	r.deliver(ctx, sink, event.Connected{Room: identity.Room, Name: identity.Name})

	if err := r.registry.Join(identity.Room, identity.Name); err != nil {
		// Lost the name race or the room died between the existence
		// check and the join; detach the partial subscription.
		r.subs.Unsubscribe(connID, identity.Room)
		return "", err
	}

	r.mu.Lock()
	r.bound[connID] = identity
	r.mu.Unlock()

	r.dispatch(r.broadcasts, event.MemberJoined{
		Room: identity.Room,
		Name: identity.Name,
		At:   time.Now().UTC(),
	})

	r.log.Info("Connection bound", "room", identity.Room, "name", identity.Name)
	return connID, nil
}

// OnMessage takes the raw text payload of a bound connection and feeds
// it into the pipeline: sanitize first, then broadcast and record. A
// message racing a room teardown is dropped silently; a client that
// disconnected moments ago may still have an in-flight send.
func (r *Router) OnMessage(_ context.Context, connID string, payload string) {
	r.mu.RLock()
	identity, ok := r.bound[connID]
	r.mu.RUnlock()
	if !ok {
		return
	}
	if !r.registry.Exists(identity.Room) {
		return
	}

	r.dispatch(r.rawEvents, event.MessagePosted{
		ID:      uuid.New(),
		Room:    identity.Room,
		Author:  identity.Name,
		Content: payload,
		At:      time.Now().UTC(),
	})
}

// OnDisconnect tears a connection down. The disconnected notice and the
// exit announcement are best-effort; the membership removal, and the
// room teardown when the last member leaves, are not. Safe to call for
// connections that never bound, and safe to call twice.
func (r *Router) OnDisconnect(_ context.Context, connID string) {
	r.mu.Lock()
	identity, ok := r.bound[connID]
	delete(r.bound, connID)
	r.mu.Unlock()
	if !ok {
		return
	}

	r.subs.Unsubscribe(connID, identity.Room)
	r.dispatch(r.broadcasts, event.Disconnected{Room: identity.Room, Name: identity.Name})

	deleted := r.registry.Leave(identity.Room, identity.Name)
	if deleted {
		r.log.Info("Room destroyed with last leave", "room", identity.Room)
		return
	}

	r.dispatch(r.broadcasts, event.MemberLeft{
		Room: identity.Room,
		Name: identity.Name,
		At:   time.Now().UTC(),
	})
}

// BoundCount reports how many connections are currently bound.
func (r *Router) BoundCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bound)
}

// deliver sends one event to one sink with a bounded wait. Used for the
// private acknowledgments that must not go through the room fan-out.
func (r *Router) deliver(ctx context.Context, sink contract.EventSink, e event.DomainEvent) {
	delivery, cancel := context.WithTimeout(ctx, r.sinkTimeout)
	defer cancel()
	if err := sink.Consume(delivery, e); err != nil {
		r.log.Debug("Private delivery failed", "error", err)
	}
}

// dispatch pushes an event into a pipeline channel, dropping with a log
// line when the channel is full. Delivery is best-effort by design.
func (r *Router) dispatch(ch chan<- event.DomainEvent, e event.DomainEvent) {
	select {
	case ch <- e:
	default:
		r.log.Warn(fmt.Sprintf("Pipeline channel full for Room %s, dropping event", e.RoomCode()))
	}
}
