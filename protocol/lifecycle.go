package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Lifecycle creates, mutates and closes sessions. Every stakeholder ends
// up holding the identical resulting version, or none on failure.
//
// Updates evolve in place: the successor version consumes the current one,
// signed by the complete old stakeholder set (admin plus old receivers);
// added members receive a copy without having signed, removed members see
// their copy consumed and receive no successor.
type Lifecycle struct {
	log    *slog.Logger
	store  contract.RecordStore
	ledger contract.LedgerClient
	fanout Publisher
	cfg    Config
	locks  *keyedMutex
}

func NewLifecycle(log *slog.Logger, store contract.RecordStore, ledger contract.LedgerClient, fanout Publisher, cfg Config) *Lifecycle {
	return &Lifecycle{
		log:    log,
		store:  store,
		ledger: ledger,
		fanout: fanout,
		cfg:    cfg,
		locks:  newKeyedMutex(),
	}
}

func (l *Lifecycle) self() domain.Party { return l.ledger.Identity() }

// Create builds the first version of a session with the caller as admin
// and distributes it to every receiver. Receivers do not co-sign; they
// passively record their copy.
//
// Receivers announce the new session to their observers when the bundled
// first message arrives (SendFirst), not on the bare copy: a Create with
// no following message stays silent at receivers until traffic arrives.
func (l *Lifecycle) Create(ctx context.Context, subject string, receivers []domain.Party) (domain.SessionRecord, error) {
	if lo.Contains(receivers, l.self()) {
		return domain.SessionRecord{}, fmt.Errorf("%w: initiator cannot be its own receiver", errors.ErrValidation)
	}
	rec, err := domain.NewSessionRecord(l.self(), receivers, subject)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, l.cfg.PeerTimeout)
	defer cancel()

	if err := l.ledger.IssueSession(ctx, rec); err != nil {
		return domain.SessionRecord{}, err
	}
	l.log.Info("Session created", "session", rec.ID, "receivers", rec.Receivers)
	return rec, nil
}

// Update applies toAdd and toRemove to the receiver set as one atomic
// version transition; no intermediate version with only one side applied
// is ever observable. Removed parties are first instructed to retire
// their held messages, then see their session copy consumed.
//
// The caller's business logic checks admin authorization before invoking;
// every co-signing stakeholder re-verifies it independently.
func (l *Lifecycle) Update(ctx context.Context, id uuid.UUID, toAdd, toRemove []domain.Party) (domain.SessionRecord, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	cur, err := l.store.CurrentSession(id)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	next, err := cur.NextVersion(lo.Without(lo.Union(cur.Receivers, toAdd), toRemove...))
	if err != nil {
		return domain.SessionRecord{}, err
	}

	f := newFlow(l.log, "update", id)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.PeerTimeout)
	defer cancel()

	// removed parties consume their held messages before their session
	// copy disappears, so no message outlives its session anywhere
	for _, party := range lo.Intersect(cur.Receivers, toRemove) {
		if err := l.ledger.SendInstruction(ctx, party, contract.Instruction{
			Op:        contract.OpRetireMessages,
			SessionID: id,
		}); err != nil {
			return domain.SessionRecord{}, f.fail(err)
		}
	}

	t := contract.Transition{
		Kind:           contract.TransitionUpdate,
		Proposer:       l.self(),
		SessionID:      id,
		InputVersionID: cur.VersionID,
		Input:          cur,
		Output:         &next,
		Added:          lo.Without(lo.Uniq(toAdd), cur.Receivers...),
		Removed:        lo.Intersect(cur.Receivers, toRemove),
		Signers:        cur.Participants(),
		DistributeTo:   lo.Uniq(append(cur.Participants(), toAdd...)),
	}

	f.to(flowAwaitingSignatures)
	unreached, err := l.ledger.ProposeTransition(ctx, t)
	if err != nil {
		return domain.SessionRecord{}, f.fail(err)
	}
	f.to(flowCommitted)

	if len(unreached) > 0 {
		l.log.Warn("Stakeholders missed update finality", "session", id, "parties", unreached)
	}
	l.log.Info("Session updated", "session", id, "version", next.Version,
		"added", t.Added, "removed", t.Removed)
	return next, nil
}

// Close retires the session everywhere, in strict order: the initiator's
// own messages first, then every receiver's messages, then the session
// record itself under full-stakeholder signature. A second Close for the
// same id fails with ErrNotFound.
func (l *Lifecycle) Close(ctx context.Context, id uuid.UUID) (CommitReceipt, error) {
	unlock := l.locks.lock(id)
	defer unlock()

	cur, err := l.store.CurrentSession(id)
	if err != nil {
		return CommitReceipt{}, err
	}

	f := newFlow(l.log, "close", id)
	ctx, cancel := context.WithTimeout(ctx, l.cfg.PeerTimeout)
	defer cancel()

	retired, err := retireAll(l.store, id, l.cfg.RetireEmpty)
	if err != nil {
		return CommitReceipt{}, f.fail(err)
	}
	// runs only while the transition is still uncommitted: the initiator's
	// own retirement is rolled back so no partial state remains at the call
	// boundary. Once the notary has committed, restoring would resurrect
	// messages for a session that no longer has a current version.
	restore := func() {
		if err := l.store.RestoreMessages(retired); err != nil {
			l.log.Error("Failed to restore retired messages", "session", id, "error", err)
		}
	}

	for _, party := range cur.Receivers {
		if err := l.ledger.SendInstruction(ctx, party, contract.Instruction{
			Op:        contract.OpRetireMessages,
			SessionID: id,
		}); err != nil {
			restore()
			return CommitReceipt{}, f.fail(err)
		}
	}

	t := contract.Transition{
		Kind:           contract.TransitionClose,
		Proposer:       l.self(),
		SessionID:      id,
		InputVersionID: cur.VersionID,
		Input:          cur,
		Signers:        cur.Participants(),
		DistributeTo:   cur.Participants(),
	}

	f.to(flowAwaitingSignatures)
	unreached, err := l.ledger.ProposeTransition(ctx, t)
	if err != nil {
		restore()
		return CommitReceipt{}, f.fail(err)
	}
	f.to(flowCommitted)

	if len(unreached) > 0 {
		l.log.Warn("Stakeholders missed close finality", "session", id, "parties", unreached)
	}
	l.log.Info("Session closed", "session", id)
	return CommitReceipt{
		SessionID:         id,
		ConsumedVersionID: cur.VersionID,
		CommittedAt:       time.Now().UTC(),
		Unreached:         unreached,
	}, nil
}
