// Package workers contains the supervised background workers of a node.
package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain/event"
)

// EventFanout delivers protocol completion events to the local observers
// registered for the affected session.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker:
// cross-party propagation happens through each party's own responder, not
// through this worker.
//
// EventFanout is safe for concurrent use by multiple goroutines.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry, bufferSize int, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		events:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout: sinkTimeout,
	}
}

// Publish enqueues an event for fanout. Blocks when the buffer is full so
// protocol completions are never silently dropped.
func (w *EventFanout) Publish(e event.DomainEvent) {
	w.events <- e
}

// Queue exposes the event buffer for depth sampling.
func (w *EventFanout) Queue() chan event.DomainEvent { return w.events }

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.Fanout(ctx, evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout One sink for each registered observer of the event's session.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := w.registry.GetSinksForSession(evt.SessionID())
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "kind", evt.Kind(), "error", err)
		}
		cancel()
	}
}
