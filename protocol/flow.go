// Package protocol implements the consensus-style state-transition and
// message-fanout operations: session create, participant updates, close,
// message issuance and retirement. Every multi-party operation runs as an
// explicit flow state machine rather than an unbroken call stack, so each
// suspension point (awaiting signatures, awaiting finality) is a named
// state.
package protocol

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

type flowState string

const (
	flowProposed           flowState = "PROPOSED"
	flowAwaitingSignatures flowState = "AWAITING_SIGNATURES"
	flowCommitted          flowState = "COMMITTED"
	flowFailed             flowState = "FAILED"
)

// legalFlowSteps encodes the only allowed state transitions of an
// in-flight operation.
var legalFlowSteps = map[flowState][]flowState{
	flowProposed:           {flowAwaitingSignatures, flowFailed},
	flowAwaitingSignatures: {flowCommitted, flowFailed},
}

// flow tracks one in-flight protocol operation.
type flow struct {
	log       *slog.Logger
	op        string
	sessionID uuid.UUID
	state     flowState
}

func newFlow(log *slog.Logger, op string, sessionID uuid.UUID) *flow {
	f := &flow{log: log, op: op, sessionID: sessionID, state: flowProposed}
	log.Debug("Flow started", "op", op, "session", sessionID, "state", f.state)
	return f
}

func (f *flow) to(next flowState) {
	for _, allowed := range legalFlowSteps[f.state] {
		if allowed == next {
			f.log.Debug("Flow step", "op", f.op, "session", f.sessionID, "from", f.state, "to", next)
			f.state = next
			return
		}
	}
	// a bug in the protocol itself, not a runtime condition
	panic(fmt.Sprintf("illegal flow step %s -> %s in %s", f.state, next, f.op))
}

// fail marks the flow failed and passes the error through.
func (f *flow) fail(err error) error {
	f.log.Debug("Flow failed", "op", f.op, "session", f.sessionID, "from", f.state, "error", err)
	f.state = flowFailed
	return err
}
