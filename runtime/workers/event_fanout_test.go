package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/domain/event"
	"chat-ledger/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_EventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	sessionID := uuid.New()
	sinks := []contract.EventSink{mockSink, mockSink}
	worker := NewEventFanout(log, mockRegistry, 10, 10*time.Second)

	// Given two sinks listen on the event's session
	mockRegistry.EXPECT().GetSinksForSession(sessionID).Return(sinks).Times(1)
	// Given both sinks consume the event
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	evt := event.MessageIssued{Message: domain.MessageRecord{ID: uuid.New(), SessionID: sessionID}}

	// When the event is fanned out
	worker.Fanout(context.Background(), evt)
}

func Test_EventFanout_SinkTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	sessionID := uuid.New()
	sinkTimeout := 20 * time.Millisecond
	worker := NewEventFanout(log, mockRegistry, 10, sinkTimeout)

	mockRegistry.EXPECT().GetSinksForSession(sessionID).Return([]contract.EventSink{mockSink}).Times(1)
	// Given a sink that never answers on its own
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).Times(1)

	evt := event.MessageIssued{Message: domain.MessageRecord{ID: uuid.New(), SessionID: sessionID}}

	// When the event is fanned out
	started := time.Now()
	worker.Fanout(context.Background(), evt)

	// Then the worker moved on once the per-sink budget expired
	req.Less(time.Since(started), 10*sinkTimeout)
}

func Test_EventFanout_Run_Drains_Published_Events(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	mockSink := mocks.NewMockEventSink(ctrl)

	sessionID := uuid.New()
	worker := NewEventFanout(log, mockRegistry, 10, time.Second)

	done := make(chan struct{})
	mockRegistry.EXPECT().GetSinksForSession(sessionID).Return([]contract.EventSink{mockSink}).Times(1)
	mockSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			close(done)
			return nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// When an event is published
	worker.Publish(event.MessageIssued{Message: domain.MessageRecord{ID: uuid.New(), SessionID: sessionID}})

	// Then the running worker delivered it
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		req.Fail("Goroutine did not terminated at time")
	}
}
