package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-rooms/contract"
	"chat-rooms/domain/event"
	"chat-rooms/mocks"

	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"
)

func TestFanoutWorker_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSubs := mocks.NewMockISubscriptions(ctrl)

	mockSink := mocks.NewMockEventSink(ctrl)
	permSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{mockSink, mockSink}

	fanoutWorker := NewFanoutWorker(
		log, mockSubs, []contract.EventSink{permSink},
		make(chan event.DomainEvent), 10*time.Second)

	// Given two room sinks exist
	mockSubs.EXPECT().SinksForRoom(gomock.Any()).Return(roomSinks).Times(1)
	// Given room sinks and the permanent sink are consumed
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	permSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	evt := event.SanitizedMessage{Room: "ABCDEF"}

	// When an event is received and handled by worker
	fanoutWorker.Fanout(context.Background(), evt)
}

func TestFanoutWorker_SinkTimeout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubs := mocks.NewMockISubscriptions(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)
	roomSinks := []contract.EventSink{mockSink}

	sinkTimeout := 20 * time.Millisecond
	fanoutWorker := NewFanoutWorker(
		log, mockSubs, nil,
		make(chan event.DomainEvent), sinkTimeout)

	mockSubs.EXPECT().SinksForRoom(gomock.Any()).Return(roomSinks).Times(1)
	// Given a sink stuck until its delivery deadline fires
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(
			func(ctx context.Context, evt event.DomainEvent) error {
				<-ctx.Done()     // Waiting for timeout to trigger cancellation
				return ctx.Err() // Sending back "context deadline exceeded"
			},
		).
		Times(1)

	evt := event.SanitizedMessage{Room: "ABCDEF"}

	// When an event is received and handled by worker
	// Then the delivery is abandoned after the timeout, not stuck forever
	start := time.Now()
	fanoutWorker.Fanout(context.Background(), evt)
	if time.Since(start) > time.Second {
		t.Fatal("Fanout blocked far past the sink timeout")
	}
}

func TestFanoutWorker_Run_StopsOnClosedChannel(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSubs := mocks.NewMockISubscriptions(ctrl)
	broadcasts := make(chan event.DomainEvent)
	fanoutWorker := NewFanoutWorker(log, mockSubs, nil, broadcasts, time.Second)

	done := make(chan error, 1)
	go func() {
		done <- fanoutWorker.Run(context.Background())
	}()

	close(broadcasts)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("worker did not stop on closed channel")
	}
}
