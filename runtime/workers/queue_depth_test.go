package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueDepth_StopsOnCancel(t *testing.T) {
	req := require.New(t)
	log := slog.Default()

	ch := make(chan int, 8)
	ch <- 1
	worker := NewQueueDepth(log, []NamedChannel{
		{Name: "test-queue", Channel: ch},
		{Name: "not-a-channel", Channel: 42}, // logged, never fatal
	}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Let a few sampling ticks happen before stopping
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(500 * time.Millisecond):
		req.Fail("Worker should have stopped on cancellation")
	}
}
