package event

import (
	"fmt"

	"chat-ledger/errors"
)

// Visitor receives exactly one callback per dispatched event. Adding a new
// event kind forces a new method here, so no kind can go silently
// unhandled at the fanout boundary.
type Visitor interface {
	OnSessionCreated(SessionCreated)
	OnMessageIssued(MessageIssued)
	OnSessionClosed(SessionClosed)
	OnParticipantsAdded(ParticipantsAdded)
	OnParticipantsRemoved(ParticipantsRemoved)
}

// Dispatch routes e to the matching visitor method. An event kind outside
// the closed set is an error, never a silent drop.
func Dispatch(e DomainEvent, v Visitor) error {
	switch evt := e.(type) {
	case SessionCreated:
		v.OnSessionCreated(evt)
	case MessageIssued:
		v.OnMessageIssued(evt)
	case SessionClosed:
		v.OnSessionClosed(evt)
	case ParticipantsAdded:
		v.OnParticipantsAdded(evt)
	case ParticipantsRemoved:
		v.OnParticipantsRemoved(evt)
	default:
		return fmt.Errorf("%w: %T", errors.ErrUnknownEvent, e)
	}
	return nil
}
