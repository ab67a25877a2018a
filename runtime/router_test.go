package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-rooms/domain"
	"chat-rooms/domain/event"
	"chat-rooms/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	events chan event.DomainEvent
}

func newCaptureSink() *captureSink {
	return &captureSink{events: make(chan event.DomainEvent, 16)}
}

func (s *captureSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.events <- e
	return nil
}

func newTestRouter(t *testing.T) (*Router, *Registry, *Subscriptions, chan event.DomainEvent, chan event.DomainEvent) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(domain.DefaultCodeLength, nil)
	subs := NewSubscriptions()
	rawEvents := make(chan event.DomainEvent, 16)
	broadcasts := make(chan event.DomainEvent, 16)
	router := NewRouter(log, registry, subs, rawEvents, broadcasts, time.Second)
	return router, registry, subs, rawEvents, broadcasts
}

func TestRouter_OnConnect_RejectsIncompleteIdentity(t *testing.T) {
	req := require.New(t)
	router, _, _, _, _ := newTestRouter(t)

	_, err := router.OnConnect(context.Background(), domain.Identity{Name: "alice"}, newCaptureSink())

	req.ErrorIs(err, errors.ErrInvalidIdentity)
	req.Equal(0, router.BoundCount())
}

func TestRouter_OnConnect_RejectsUnknownRoom(t *testing.T) {
	req := require.New(t)
	router, _, _, _, _ := newTestRouter(t)

	identity := domain.Identity{Name: "alice", Room: "NOSUCH"}
	_, err := router.OnConnect(context.Background(), identity, newCaptureSink())

	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestRouter_OnConnect_BindsAndAnnounces(t *testing.T) {
	req := require.New(t)
	router, registry, subs, _, broadcasts := newTestRouter(t)
	code := registry.CreateRoom()
	sink := newCaptureSink()

	// When alice connects
	connID, err := router.OnConnect(context.Background(), domain.Identity{Name: "alice", Room: code}, sink)
	req.NoError(err)
	req.NotEmpty(connID)

	// Then she got a private acknowledgment before anything else
	ack := <-sink.events
	connected, ok := ack.(event.Connected)
	req.True(ok)
	req.Equal("alice", connected.Name)
	req.Equal(code, connected.Room)

	// And the whole room is told she entered
	joined, ok := (<-broadcasts).(event.MemberJoined)
	req.True(ok)
	req.Equal("alice", joined.Name)

	// And she is a member with a live subscription
	members, _, ok := registry.Snapshot(code)
	req.True(ok)
	req.Equal([]string{"alice"}, members)
	req.True(subs.HasSubscribers(code))
	req.Equal(1, router.BoundCount())
}

func TestRouter_OnConnect_LosingNameRaceDetachesSubscription(t *testing.T) {
	req := require.New(t)
	router, registry, subs, _, _ := newTestRouter(t)
	code := registry.CreateRoom()
	identity := domain.Identity{Name: "alice", Room: code}

	_, err := router.OnConnect(context.Background(), identity, newCaptureSink())
	req.NoError(err)

	// When a second connection claims the same name
	_, err = router.OnConnect(context.Background(), identity, newCaptureSink())

	// Then it is rejected and leaves no half-open subscription behind
	req.ErrorIs(err, errors.ErrNameTaken)
	req.Len(subs.SinksForRoom(code), 1)
	req.Equal(1, router.BoundCount())
}

func TestRouter_OnMessage_FeedsPipeline(t *testing.T) {
	req := require.New(t)
	router, registry, _, rawEvents, broadcasts := newTestRouter(t)
	code := registry.CreateRoom()

	connID, err := router.OnConnect(context.Background(), domain.Identity{Name: "alice", Room: code}, newCaptureSink())
	req.NoError(err)
	<-broadcasts // drain the join announcement

	// When the bound connection posts a message
	router.OnMessage(context.Background(), connID, "hello room")

	// Then the raw payload enters the pipeline untouched
	posted, ok := (<-rawEvents).(event.MessagePosted)
	req.True(ok)
	req.Equal("alice", posted.Author)
	req.Equal("hello room", posted.Content)
	req.Equal(code, posted.Room)
	req.NotZero(posted.ID)
}

func TestRouter_OnMessage_UnboundConnectionIsDropped(t *testing.T) {
	req := require.New(t)
	router, _, _, rawEvents, _ := newTestRouter(t)

	router.OnMessage(context.Background(), "never-bound", "hello")

	req.Empty(rawEvents)
}

func TestRouter_OnDisconnect_AnnouncesLeave(t *testing.T) {
	req := require.New(t)
	router, registry, _, _, broadcasts := newTestRouter(t)
	code := registry.CreateRoom()

	aliceID, err := router.OnConnect(context.Background(), domain.Identity{Name: "alice", Room: code}, newCaptureSink())
	req.NoError(err)
	_, err = router.OnConnect(context.Background(), domain.Identity{Name: "bob", Room: code}, newCaptureSink())
	req.NoError(err)
	<-broadcasts // alice joined
	<-broadcasts // bob joined

	// When alice disconnects while bob remains
	router.OnDisconnect(context.Background(), aliceID)

	// Then the room hears the notice and the exit announcement
	_, ok := (<-broadcasts).(event.Disconnected)
	req.True(ok)
	left, ok := (<-broadcasts).(event.MemberLeft)
	req.True(ok)
	req.Equal("alice", left.Name)

	// And the room survives with bob inside
	members, _, ok := registry.Snapshot(code)
	req.True(ok)
	req.Equal([]string{"bob"}, members)
}

func TestRouter_OnDisconnect_LastMemberDestroysRoomSilently(t *testing.T) {
	req := require.New(t)
	router, registry, subs, _, broadcasts := newTestRouter(t)
	code := registry.CreateRoom()

	connID, err := router.OnConnect(context.Background(), domain.Identity{Name: "alice", Room: code}, newCaptureSink())
	req.NoError(err)
	<-broadcasts // alice joined

	// When the only member disconnects
	router.OnDisconnect(context.Background(), connID)

	// Then the notice goes out but no exit announcement follows:
	// the room is already gone and nobody is left to read it
	_, ok := (<-broadcasts).(event.Disconnected)
	req.True(ok)
	req.Empty(broadcasts)
	req.False(registry.Exists(code))
	req.False(subs.HasSubscribers(code))

	// And a second disconnect for the same connection is a no-op
	router.OnDisconnect(context.Background(), connID)
	req.Empty(broadcasts)
}
