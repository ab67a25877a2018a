package runtime

import (
	"context"
	"testing"

	"chat-rooms/domain"
	"chat-rooms/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestSubscriptions_Subscribe_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	subs := NewSubscriptions()
	connID := uuid.NewString()
	code := domain.RoomCode("ABCDEF")
	sink := Sink{}

	// Given no connection observes any room
	req.False(subs.HasSubscribers(code))

	// When a connection subscribes a room
	subs.Subscribe(connID, code, sink)

	// Then
	req.True(subs.HasSubscribers(code))
	req.Len(subs.SinksForRoom(code), 1)
	req.Contains(subs.SinksForRoom(code), sink)
}

func TestSubscriptions_Subscribe_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	subs := NewSubscriptions()
	connID1 := uuid.NewString()
	connID2 := uuid.NewString()
	code := domain.RoomCode("ABCDEF")
	sink1 := Sink{}
	sink2 := Sink{}

	// When connections subscribe a room
	subs.Subscribe(connID1, code, sink1)
	subs.Subscribe(connID2, code, sink2)

	// Then
	req.Len(subs.SinksForRoom(code), 2)
	req.Contains(subs.SinksForRoom(code), sink1)
}

func TestSubscriptions_Unsubscribe_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	subs := NewSubscriptions()
	connID := uuid.NewString()
	code := domain.RoomCode("ABCDEF")
	sink := Sink{}

	// Given a connection subscribes a room
	subs.Subscribe(connID, code, sink)

	// When the connection unsubscribes the room
	subs.Unsubscribe(connID, code)

	// Then no connection left
	// And the room entry doesn't exist anymore
	req.False(subs.HasSubscribers(code))

	// And no sink left for the room
	req.Nil(subs.SinksForRoom(code))
}

func TestSubscriptions_Unsubscribe_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	subs := NewSubscriptions()
	connID1 := uuid.NewString()
	connID2 := uuid.NewString()
	code := domain.RoomCode("ABCDEF")
	sink1 := Sink{}
	sink2 := Sink{}

	// When connections subscribe a room
	subs.Subscribe(connID1, code, sink1)
	subs.Subscribe(connID2, code, sink2)

	// When one connection unsubscribes the room
	subs.Unsubscribe(connID1, code)

	// Then only one connection left
	req.True(subs.HasSubscribers(code))
	req.Len(subs.SinksForRoom(code), 1)
	req.Contains(subs.SinksForRoom(code), sink2)
}
