package protocol

import (
	"sync"
	"time"

	"chat-ledger/domain"
	"chat-ledger/domain/event"

	"github.com/google/uuid"
)

// RetirePolicy decides what retiring the messages of a session that holds
// none means. The original protocol treated an empty set as an error;
// lenient mode makes it a no-op so a session that never received a
// message can still close.
type RetirePolicy string

const (
	RetireStrict  RetirePolicy = "strict"
	RetireLenient RetirePolicy = "lenient"
)

// Config bounds the protocol's suspension points.
type Config struct {
	// PeerTimeout caps each wait on a stakeholder (signature, finality
	// acknowledgement, instruction acknowledgement).
	PeerTimeout time.Duration
	RetireEmpty RetirePolicy
}

// Publisher is the local fanout boundary: one event per completed
// operation per party.
type Publisher interface {
	Publish(e event.DomainEvent)
}

// CommitReceipt reports a committed retirement transition. Unreached
// names the stakeholders whose finality delivery failed after the
// notary committed; they converge on their own, the way unconfirmed
// message copies do.
type CommitReceipt struct {
	SessionID         uuid.UUID
	ConsumedVersionID uuid.UUID
	CommittedAt       time.Time
	Unreached         []domain.Party
}

// Complete reports whether every stakeholder confirmed finality.
func (r CommitReceipt) Complete() bool { return len(r.Unreached) == 0 }

// keyedMutex serializes concurrent operations on the same session id so
// two local successor proposals never race against the same current
// version. Cross-party races stay possible and are the notary's problem.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
