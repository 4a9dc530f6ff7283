// Package projection builds local read models from observed events.
// Handles ordering, deduplication, and per-session views. Does not emit
// events or touch the vault; its state is rebuilt from fanout alone.
package projection

import (
	"context"
	"sort"
	"sync"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/domain/event"

	"github.com/google/uuid"
)

// Timeline is an EventSink maintaining a chronological message view per
// session, plus the membership and closure facts observed along the way.
// Safe for concurrent use: fanout writes, readers poll.
type Timeline struct {
	mu       sync.RWMutex
	owner    domain.Party
	messages map[uuid.UUID][]domain.MessageRecord
	seen     map[uuid.UUID]struct{} // message ids, dedup across redeliveries
	closed   map[uuid.UUID]bool
}

func NewTimeline(owner domain.Party) *Timeline {
	return &Timeline{
		owner:    owner,
		messages: make(map[uuid.UUID][]domain.MessageRecord),
		seen:     make(map[uuid.UUID]struct{}),
		closed:   make(map[uuid.UUID]bool),
	}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return event.Dispatch(e, t)
}

func (t *Timeline) OnSessionCreated(e event.SessionCreated) {
	t.append(e.Message)
}

func (t *Timeline) OnMessageIssued(e event.MessageIssued) {
	t.append(e.Message)
}

func (t *Timeline) OnSessionClosed(e event.SessionClosed) {
	t.closed[e.Session.ID] = true
}

func (t *Timeline) OnParticipantsAdded(event.ParticipantsAdded) {}

func (t *Timeline) OnParticipantsRemoved(event.ParticipantsRemoved) {}

// append inserts one message copy, dropping duplicates and keeping the
// slice sorted by creation time. Fanout is best effort, so arrival order
// is not trusted.
func (t *Timeline) append(m domain.MessageRecord) {
	if _, dup := t.seen[m.ID]; dup {
		return
	}
	t.seen[m.ID] = struct{}{}

	msgs := append(t.messages[m.SessionID], m)
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	t.messages[m.SessionID] = msgs
}

// Messages returns the observed conversation for one session, oldest
// first. The slice is a copy.
func (t *Timeline) Messages(sessionID uuid.UUID) []domain.MessageRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	msgs := t.messages[sessionID]
	out := make([]domain.MessageRecord, len(msgs))
	copy(out, msgs)
	return out
}

// Closed reports whether a closure event was observed for the session.
func (t *Timeline) Closed(sessionID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.closed[sessionID]
}

var _ contract.EventSink = (*Timeline)(nil)
