package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// QueueDepth periodically reports the current length and capacity of the
// watched channels. Reading len(channel) and cap(channel) is non-blocking,
// so sampling never interferes with the goroutines draining them.
type QueueDepth struct {
	log      *slog.Logger
	channels []NamedChannel
	interval time.Duration
}

func NewQueueDepth(log *slog.Logger, channels []NamedChannel, interval time.Duration) *QueueDepth {
	return &QueueDepth{log: log, channels: channels, interval: interval}
}

func (w QueueDepth) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping queue depth sampling")
			return nil
		case <-ticker.C:
			for _, nc := range w.channels {
				v := reflect.ValueOf(nc.Channel)
				// Verify if this is a channel
				if v.Kind() != reflect.Chan {
					w.log.Error("Provided object is not a channel", "name", nc.Name)
					continue
				}
				capacity := v.Cap()
				length := v.Len()
				if capacity > 0 && length*10 >= capacity*8 {
					w.log.Warn("Queue close to capacity", "name", nc.Name, "length", length, "capacity", capacity)
					continue
				}
				w.log.Debug("Queue depth", "name", nc.Name, "length", length, "capacity", capacity)
			}
		}
	}
}
