//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-ledger/domain"
	"chat-ledger/domain/event"

	"github.com/google/uuid"
)

// RecordStore is the local vault: every party keeps its own copy of
// session and message records. Retiring keeps the record queryable as
// history; it never deletes. Implementations must make each method an
// atomic local transaction so concurrent readers see pre- or
// post-transition state, never an intermediate one.
type RecordStore interface {
	PutSession(s domain.SessionRecord) error
	// CurrentSession returns the single unretired version for id, or
	// ErrNotFound when none exists locally.
	CurrentSession(id uuid.UUID) (domain.SessionRecord, error)
	// RetireSession retires the current version. With a non-nil successor
	// the retire and the put commit in one transaction.
	RetireSession(id uuid.UUID, successor *domain.SessionRecord) (domain.SessionRecord, error)
	SessionIDs(includeClosed bool) ([]uuid.UUID, error)
	SessionHistory(id uuid.UUID) ([]domain.SessionRecord, error)

	PutMessage(m domain.MessageRecord) error
	Messages(sessionID uuid.UUID, includeRetired bool) ([]domain.MessageRecord, error)
	AllMessages(includeRetired bool) ([]domain.MessageRecord, error)
	// RetireMessages consumes every unretired message of the session in a
	// single transaction and returns the consumed records.
	RetireMessages(sessionID uuid.UUID) ([]domain.MessageRecord, error)
	// RestoreMessages compensates a retirement whose surrounding operation
	// failed, moving the records back to the active space.
	RestoreMessages(msgs []domain.MessageRecord) error

	Close() error
}

// TransitionKind discriminates multi-party transitions.
type TransitionKind string

const (
	TransitionUpdate TransitionKind = "SESSION_UPDATE"
	TransitionClose  TransitionKind = "SESSION_CLOSE"
)

// Transition is a proposed atomic state change of one session: it consumes
// the current version (InputVersionID) and, for updates, produces the next
// one. It commits only once every required signer approved and the notary
// accepted the input as unconsumed.
type Transition struct {
	Kind           TransitionKind
	Proposer       domain.Party
	SessionID      uuid.UUID
	InputVersionID uuid.UUID
	Input          domain.SessionRecord
	Output         *domain.SessionRecord // nil for close
	Added          []domain.Party        // update only, drives notification kind
	Removed        []domain.Party
	Signers        []domain.Party // required signer set
	DistributeTo   []domain.Party // parties receiving the finalized transition
}

// InstructionOp names point-to-point protocol instructions.
type InstructionOp string

const (
	// OpRetireMessages tells a peer to consume its own held messages for a
	// session, used during close and participant removal.
	OpRetireMessages InstructionOp = "RETIRE_MESSAGES"
)

type Instruction struct {
	Op        InstructionOp
	SessionID uuid.UUID
}

// Responder is the per-node protocol surface the substrate calls into.
// Every method is invoked at most once per (operation, node) pair; the
// substrate retries are absorbed before reaching it.
type Responder interface {
	// VerifyTransition decides whether this node co-signs the proposal.
	// Returning an error withholds the signature and aborts the commit.
	VerifyTransition(ctx context.Context, t Transition) error
	// CommitTransition applies a finalized transition to the local vault
	// and triggers local fanout. Called exactly once per party.
	CommitTransition(ctx context.Context, t Transition) error
	// AcceptSession stores a passively received session copy (creation
	// requires no co-signing from receivers).
	AcceptSession(ctx context.Context, s domain.SessionRecord) error
	// AcceptMessage stores this node's copy of an issued message. first
	// marks the message bundled with session creation.
	AcceptMessage(ctx context.Context, m domain.MessageRecord, first bool) error
	// HandleInstruction executes a point-to-point instruction.
	HandleInstruction(ctx context.Context, ins Instruction) error
}

// LedgerClient is one party's handle into the atomic-commit substrate.
type LedgerClient interface {
	Identity() domain.Party
	// ProposeTransition collects the required signatures, commits the
	// transition atomically at the notary and distributes the finalized
	// transition. A non-nil error means the transition did not commit and
	// no party applied anything. On success the transition is notarized;
	// the returned parties are those whose finality delivery failed and
	// who will converge on their own (empty when everyone confirmed).
	ProposeTransition(ctx context.Context, t Transition) ([]domain.Party, error)
	// IssueSession distributes a fresh session record to every
	// participant, the issuer included. Only the issuer signs.
	IssueSession(ctx context.Context, s domain.SessionRecord) error
	// IssueMessage delivers one message copy to its holder. Only the
	// sender signs; this is a broadcast primitive, not a joint commit.
	IssueMessage(ctx context.Context, m domain.MessageRecord, first bool) error
	// SendInstruction delivers ins to the peer and waits for its
	// acknowledgement.
	SendInstruction(ctx context.Context, to domain.Party, ins Instruction) error
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	GetSinksForSession(sessionID uuid.UUID) []EventSink
	Subscribe(observerID string, sessionID uuid.UUID, sink EventSink)
	Unsubscribe(observerID string, sessionID uuid.UUID)
	SubscribeAll(observerID string, sink EventSink)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
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
