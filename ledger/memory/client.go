package memory

import (
	"context"
	"fmt"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/google/uuid"
)

// Client is one party's handle into the network. It implements
// contract.LedgerClient.
type Client struct {
	net   *Network
	party domain.Party
}

func (c *Client) Identity() domain.Party { return c.party }

// ProposeTransition drives the handshake: collect a signature from every
// required signer, consume the input version at the notary, then
// distribute the finalized transition. Any withheld signature or notary
// rejection aborts before any party commits and returns an error. Past
// the notary the transition is committed for good; a failed finality
// delivery no longer fails the proposal, the affected parties are
// reported back instead.
func (c *Client) ProposeTransition(ctx context.Context, t contract.Transition) ([]domain.Party, error) {
	if err := validateTransition(t); err != nil {
		return nil, err
	}

	for _, signer := range t.Signers {
		if signer == c.party {
			continue // initiator signs implicitly
		}
		if err := c.net.rpc(ctx, c.party, signer, wireVerify, t); err != nil {
			return nil, fmt.Errorf("signature withheld by %s: %w", signer, err)
		}
	}

	if err := c.net.notary.commit(t); err != nil {
		return nil, err
	}

	var unreached []domain.Party
	for _, party := range t.DistributeTo {
		if err := c.net.rpc(ctx, c.party, party, wireCommit, t); err != nil {
			c.net.log.Error("finality delivery failed", "party", party, "error", err)
			unreached = append(unreached, party)
		}
	}
	return unreached, nil
}

// IssueSession registers the first version at the notary and delivers a
// copy to every participant, the issuer included. Receivers do not
// co-sign session creation.
func (c *Client) IssueSession(ctx context.Context, s domain.SessionRecord) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.net.notary.register(s.VersionID)
	for _, p := range s.Participants() {
		if err := c.net.rpc(ctx, c.party, p, wireSession, s); err != nil {
			return err
		}
	}
	return nil
}

// IssueMessage delivers one copy to its holder. No cross-party consensus:
// a failed delivery affects only that holder's copy.
func (c *Client) IssueMessage(ctx context.Context, m domain.MessageRecord, first bool) error {
	return c.net.rpc(ctx, c.party, m.Holder, wireMessage, messageWire{Message: m, First: first})
}

// SendInstruction delivers a point-to-point instruction and waits for the
// peer to acknowledge having executed it.
func (c *Client) SendInstruction(ctx context.Context, to domain.Party, ins contract.Instruction) error {
	return c.net.rpc(ctx, c.party, to, wireInstruction, ins)
}

func validateTransition(t contract.Transition) error {
	switch {
	case t.SessionID == uuid.Nil:
		return fmt.Errorf("%w: transition without session id", errors.ErrCommitFailed)
	case t.InputVersionID == uuid.Nil:
		return fmt.Errorf("%w: transition without input version", errors.ErrCommitFailed)
	case len(t.Signers) == 0:
		return fmt.Errorf("%w: transition without signers", errors.ErrCommitFailed)
	case t.Kind == contract.TransitionUpdate && t.Output == nil:
		return fmt.Errorf("%w: update without output version", errors.ErrCommitFailed)
	case t.Kind == contract.TransitionClose && t.Output != nil:
		return fmt.Errorf("%w: close with output version", errors.ErrCommitFailed)
	case t.Kind != contract.TransitionUpdate && t.Kind != contract.TransitionClose:
		return fmt.Errorf("%w: unknown transition kind %q", errors.ErrCommitFailed, t.Kind)
	}
	return nil
}
