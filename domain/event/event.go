// Package event defines the closed set of notifications a node emits to
// its local observers after a protocol operation completes locally.
// Fanout is per-party only; cross-party propagation happens because every
// stakeholder runs its own responder and its own local fanout.
package event

import (
	"chat-ledger/domain"

	"github.com/google/uuid"
)

type Type string

const (
	SessionCreatedType      Type = "SESSION_CREATED"
	MessageIssuedType       Type = "MESSAGE_ISSUED"
	SessionClosedType       Type = "SESSION_CLOSED"
	ParticipantsAddedType   Type = "PARTICIPANTS_ADDED"
	ParticipantsRemovedType Type = "PARTICIPANTS_REMOVED"
)

// DomainEvent is implemented by every notification payload. The session id
// scopes fanout to the observers of that session.
type DomainEvent interface {
	Kind() Type
	SessionID() uuid.UUID
}

type SessionCreated struct {
	Session domain.SessionRecord
	Message domain.MessageRecord // first message issued with the session
}

func (e SessionCreated) Kind() Type          { return SessionCreatedType }
func (e SessionCreated) SessionID() uuid.UUID { return e.Session.ID }

type MessageIssued struct {
	Message domain.MessageRecord
}

func (e MessageIssued) Kind() Type          { return MessageIssuedType }
func (e MessageIssued) SessionID() uuid.UUID { return e.Message.SessionID }

type SessionClosed struct {
	Session domain.SessionRecord // last version before retirement
}

func (e SessionClosed) Kind() Type          { return SessionClosedType }
func (e SessionClosed) SessionID() uuid.UUID { return e.Session.ID }

type ParticipantsAdded struct {
	Session domain.SessionRecord // new current version
	Added   []domain.Party
}

func (e ParticipantsAdded) Kind() Type          { return ParticipantsAddedType }
func (e ParticipantsAdded) SessionID() uuid.UUID { return e.Session.ID }

type ParticipantsRemoved struct {
	Session domain.SessionRecord // new current version
	Removed []domain.Party
}

func (e ParticipantsRemoved) Kind() Type          { return ParticipantsRemovedType }
func (e ParticipantsRemoved) SessionID() uuid.UUID { return e.Session.ID }
