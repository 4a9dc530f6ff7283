package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Messages issues chat messages into active sessions and bulk-retires a
// session's held messages. Issuance is a best-effort broadcast, one
// independent single-party commit per participant; it is deliberately not
// an atomic multi-party transaction.
type Messages struct {
	log    *slog.Logger
	store  contract.RecordStore
	ledger contract.LedgerClient
	cfg    Config
}

func NewMessages(log *slog.Logger, store contract.RecordStore, ledger contract.LedgerClient, cfg Config) *Messages {
	return &Messages{log: log, store: store, ledger: ledger, cfg: cfg}
}

// DeliveryReport names the recipients whose copy was not confirmed.
// Callers that need stronger guarantees reconcile from here.
type DeliveryReport struct {
	mu     sync.Mutex
	failed map[domain.Party]error
}

func (r *DeliveryReport) record(p domain.Party, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failed == nil {
		r.failed = make(map[domain.Party]error)
	}
	r.failed[p] = err
}

// Complete reports whether every participant confirmed its copy.
func (r *DeliveryReport) Complete() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.failed) == 0
}

// FailedParties lists the recipients whose copy was not confirmed.
func (r *DeliveryReport) FailedParties() []domain.Party {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.Keys(r.failed)
}

// Send issues one message into the session: one physical copy per
// participant, the sender included, all sharing id, content, sender and
// timestamp and differing only in holder. The returned record is the
// sender-held copy. Partial delivery failure is not an error; the report
// says who did not confirm.
func (m *Messages) Send(ctx context.Context, sessionID uuid.UUID, content string) (domain.MessageRecord, *DeliveryReport, error) {
	return m.send(ctx, sessionID, content, false)
}

// Reply is an alias of Send kept for callers thinking in terms of
// replying to an existing conversation.
func (m *Messages) Reply(ctx context.Context, sessionID uuid.UUID, content string) (domain.MessageRecord, *DeliveryReport, error) {
	return m.send(ctx, sessionID, content, false)
}

// SendFirst issues the message bundled with session creation; receivers
// emit a created notification instead of a message one.
func (m *Messages) SendFirst(ctx context.Context, sessionID uuid.UUID, content string) (domain.MessageRecord, *DeliveryReport, error) {
	return m.send(ctx, sessionID, content, true)
}

func (m *Messages) send(ctx context.Context, sessionID uuid.UUID, content string, first bool) (domain.MessageRecord, *DeliveryReport, error) {
	cur, err := m.store.CurrentSession(sessionID)
	if err != nil {
		return domain.MessageRecord{}, nil, err
	}
	self := m.ledger.Identity()
	if !cur.HasParticipant(self) {
		return domain.MessageRecord{}, nil, fmt.Errorf("%w: %s is not a participant of session %s",
			errors.ErrAuthorization, self, sessionID)
	}

	msg := domain.MessageRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
		Content:   content,
		Sender:    self,
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.PeerTimeout)
	defer cancel()

	report := &DeliveryReport{}
	var g errgroup.Group // no shared cancellation: one failed copy must not stop the others
	for _, p := range cur.Participants() {
		g.Go(func() error {
			if err := m.ledger.IssueMessage(ctx, msg.CopyFor(p), first); err != nil {
				report.record(p, err)
				m.log.Warn("Message copy not confirmed", "message", msg.ID, "holder", p, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return msg.CopyFor(self), report, nil
}

// RetireAll consumes every message this party holds for the session,
// subject to the configured empty-set policy.
func (m *Messages) RetireAll(ctx context.Context, sessionID uuid.UUID) ([]domain.MessageRecord, error) {
	_ = ctx // local transaction only; kept for interface symmetry
	return retireAll(m.store, sessionID, m.cfg.RetireEmpty)
}

func retireAll(store contract.RecordStore, sessionID uuid.UUID, policy RetirePolicy) ([]domain.MessageRecord, error) {
	msgs, err := store.RetireMessages(sessionID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 && policy == RetireStrict {
		return nil, fmt.Errorf("%w: session %s", errors.ErrNoMessages, sessionID)
	}
	return msgs, nil
}
