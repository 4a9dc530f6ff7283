package protocol

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Flow_Walks_The_Happy_Path(t *testing.T) {
	f := newFlow(slog.Default(), "update", uuid.New())
	f.to(flowAwaitingSignatures)
	f.to(flowCommitted)
}

func Test_Flow_Can_Fail_From_Any_Live_State(t *testing.T) {
	req := require.New(t)
	f := newFlow(slog.Default(), "close", uuid.New())
	f.to(flowAwaitingSignatures)

	err := f.fail(assertedError{})
	req.Error(err)
	req.Equal(flowFailed, f.state)
}

func Test_Flow_Panics_On_Illegal_Step(t *testing.T) {
	req := require.New(t)
	f := newFlow(slog.Default(), "update", uuid.New())

	// skipping the signature collection is a protocol bug
	req.Panics(func() { f.to(flowCommitted) })
}

type assertedError struct{}

func (assertedError) Error() string { return "asserted failure" }
