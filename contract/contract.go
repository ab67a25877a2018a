//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-rooms/domain"
	"chat-rooms/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one consumer of fanned-out events: a live connection, the
// history writer, a projection. Consume must respect ctx; the fan-out
// bounds each delivery with a timeout so one slow sink cannot stall the
// others.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry is the single source of truth for which rooms exist and who
// is in them.
type IRegistry interface {
	CreateRoom() domain.RoomCode
	Exists(code domain.RoomCode) bool
	Join(code domain.RoomCode, name string) error
	Leave(code domain.RoomCode, name string) (deleted bool)
	AppendMessage(code domain.RoomCode, msg domain.Message)
	Snapshot(code domain.RoomCode) (members []string, messages []domain.Message, ok bool)
}

// ISubscriptions maps live connections to the rooms they observe.
type ISubscriptions interface {
	Subscribe(connID string, code domain.RoomCode, sink EventSink)
	Unsubscribe(connID string, code domain.RoomCode)
	SinksForRoom(code domain.RoomCode) []EventSink
	HasSubscribers(code domain.RoomCode) bool
}

// IRouter is what the transport layer dispatches raw connection
// lifecycle events into.
type IRouter interface {
	OnConnect(ctx context.Context, identity domain.Identity, sink EventSink) (connID string, err error)
	OnMessage(ctx context.Context, connID string, payload string)
	OnDisconnect(ctx context.Context, connID string)
}
