package protocol

import (
	"context"
	"fmt"
	"log/slog"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/domain/event"
	"chat-ledger/errors"

	stderrors "errors"
)

// Responder is the protocol logic every party runs upon receiving a peer
// handshake message: co-signing decisions, finality application, passive
// record acceptance and point-to-point instructions. Each party's
// responder triggers its own local fanout, which is how notifications
// propagate across the network without any cross-party fanout step.
type Responder struct {
	log    *slog.Logger
	self   domain.Party
	store  contract.RecordStore
	fanout Publisher
	cfg    Config
}

func NewResponder(log *slog.Logger, self domain.Party, store contract.RecordStore, fanout Publisher, cfg Config) *Responder {
	return &Responder{log: log, self: self, store: store, fanout: fanout, cfg: cfg}
}

// VerifyTransition re-derives every invariant the initiator claims before
// lending this party's signature. The protocol trusts no caller context
// across the wire.
func (r *Responder) VerifyTransition(ctx context.Context, t contract.Transition) error {
	cur, err := r.store.CurrentSession(t.SessionID)
	if err != nil {
		return err
	}
	if cur.VersionID != t.InputVersionID {
		return fmt.Errorf("%w: proposal built on version %s, current is %s",
			errors.ErrConflict, t.InputVersionID, cur.VersionID)
	}
	if t.Proposer != cur.Admin {
		return fmt.Errorf("%w: %s is not the admin of session %s",
			errors.ErrAuthorization, t.Proposer, t.SessionID)
	}

	if t.Kind == contract.TransitionClose {
		return nil
	}

	next := t.Output
	if next == nil {
		return fmt.Errorf("%w: update without output version", errors.ErrCommitFailed)
	}
	switch {
	case next.ID != cur.ID:
		return fmt.Errorf("%w: output changes session id", errors.ErrValidation)
	case next.Admin != cur.Admin:
		return fmt.Errorf("%w: output changes admin", errors.ErrValidation)
	case next.Subject != cur.Subject:
		return fmt.Errorf("%w: output changes subject", errors.ErrValidation)
	case next.Version != cur.Version+1:
		return fmt.Errorf("%w: output version %d does not succeed %d", errors.ErrValidation, next.Version, cur.Version)
	case next.PrevVersionID != cur.VersionID:
		return fmt.Errorf("%w: output does not chain to current version", errors.ErrValidation)
	}
	return next.Validate()
}

// CommitTransition applies a finalized transition: the input version is
// retired, the successor (if any, and if this party belongs to it) is
// stored, and exactly one typed notification goes to local observers.
func (r *Responder) CommitTransition(ctx context.Context, t contract.Transition) error {
	switch t.Kind {
	case contract.TransitionClose:
		if _, err := r.store.RetireSession(t.SessionID, nil); err != nil {
			return err
		}
		r.fanout.Publish(event.SessionClosed{Session: t.Input})
		return nil

	case contract.TransitionUpdate:
		var successor *domain.SessionRecord
		if t.Output.HasParticipant(r.self) {
			successor = t.Output
		}
		if _, err := r.store.RetireSession(t.SessionID, successor); err != nil {
			if stderrors.Is(err, errors.ErrNotFound) && successor != nil {
				// an added member holds no prior version to retire
				if err := r.store.PutSession(*successor); err != nil {
					return err
				}
			} else {
				return err
			}
		}
		if len(t.Added) > 0 {
			r.fanout.Publish(event.ParticipantsAdded{Session: *t.Output, Added: t.Added})
		} else {
			r.fanout.Publish(event.ParticipantsRemoved{Session: *t.Output, Removed: t.Removed})
		}
		return nil

	default:
		return fmt.Errorf("%w: transition kind %q", errors.ErrCommitFailed, t.Kind)
	}
}

// AcceptSession records a passively received session copy.
func (r *Responder) AcceptSession(ctx context.Context, s domain.SessionRecord) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.HasParticipant(r.self) {
		return fmt.Errorf("%w: %s is not a stakeholder of session %s", errors.ErrAuthorization, r.self, s.ID)
	}
	return r.store.PutSession(s)
}

// AcceptMessage records this party's copy. The copy bundled with session
// creation announces the session; every later copy announces itself.
func (r *Responder) AcceptMessage(ctx context.Context, m domain.MessageRecord, first bool) error {
	if m.Holder != r.self {
		return fmt.Errorf("%w: copy addressed to %s delivered to %s", errors.ErrValidation, m.Holder, r.self)
	}
	cur, err := r.store.CurrentSession(m.SessionID)
	if err != nil {
		return err // a message must not be appended to a closed session view
	}
	if !cur.HasParticipant(m.Sender) {
		return fmt.Errorf("%w: sender %s is not a participant of session %s",
			errors.ErrAuthorization, m.Sender, m.SessionID)
	}
	if err := r.store.PutMessage(m); err != nil {
		return err
	}
	if first {
		r.fanout.Publish(event.SessionCreated{Session: cur, Message: m})
	} else {
		r.fanout.Publish(event.MessageIssued{Message: m})
	}
	return nil
}

// HandleInstruction executes point-to-point protocol instructions.
func (r *Responder) HandleInstruction(ctx context.Context, ins contract.Instruction) error {
	switch ins.Op {
	case contract.OpRetireMessages:
		_, err := retireAll(r.store, ins.SessionID, r.cfg.RetireEmpty)
		return err
	default:
		return fmt.Errorf("%w: instruction %q", errors.ErrCommitFailed, ins.Op)
	}
}

var _ contract.Responder = (*Responder)(nil)
