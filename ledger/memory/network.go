// Package memory is an in-process LedgerService substrate: a network of
// registered parties, a notary enforcing transition uniqueness, and
// reliable ordered peer delivery. It exists so that multiple logical nodes
// run inside one test process; a real deployment would swap in a client
// for an external ledger behind the same contract interfaces.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chat-ledger/codec"
	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"
)

type wireKind string

const (
	wireVerify      wireKind = "verify"
	wireCommit      wireKind = "commit"
	wireSession     wireKind = "session"
	wireMessage     wireKind = "message"
	wireInstruction wireKind = "instruction"
)

// envelope is one peer message on the wire. Payloads travel CBOR-encoded
// even in-process, so the wire shapes stay honest.
type envelope struct {
	kind    wireKind
	from    domain.Party
	payload []byte
	reply   chan error
}

type messageWire struct {
	Message domain.MessageRecord
	First   bool
}

// endpoint is one party's attachment point: a single inbox pumped by one
// goroutine, which gives per-receiver total order of deliveries.
type endpoint struct {
	party     domain.Party
	responder contract.Responder
	inbox     chan envelope
}

// Network connects endpoints and hosts the notary. Safe for concurrent
// use by many in-flight protocol operations.
type Network struct {
	mu        sync.RWMutex
	log       *slog.Logger
	endpoints map[domain.Party]*endpoint
	notary    *notary

	runCtx  context.Context
	cancel  context.CancelFunc
	pumps   sync.WaitGroup
	bufSize int
}

func NewNetwork(log *slog.Logger, bufferSize int) *Network {
	ctx, cancel := context.WithCancel(context.Background())
	return &Network{
		log:       log,
		endpoints: make(map[domain.Party]*endpoint),
		notary:    newNotary(),
		runCtx:    ctx,
		cancel:    cancel,
		bufSize:   bufferSize,
	}
}

// Join attaches a party and its responder, returning the party's ledger
// client. Joining twice replaces the responder but keeps the inbox.
func (n *Network) Join(party domain.Party, responder contract.Responder) contract.LedgerClient {
	n.mu.Lock()
	defer n.mu.Unlock()

	ep, ok := n.endpoints[party]
	if !ok {
		ep = &endpoint{party: party, inbox: make(chan envelope, n.bufSize)}
		n.endpoints[party] = ep
		n.pumps.Add(1)
		go n.pump(ep)
	}
	ep.responder = responder
	return &Client{net: n, party: party}
}

// Close stops all inbox pumps. In-flight sends observe ErrPeerTimeout.
func (n *Network) Close() {
	n.cancel()
	n.pumps.Wait()
}

func (n *Network) lookup(party domain.Party) (*endpoint, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ep, ok := n.endpoints[party]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownParty, party)
	}
	return ep, nil
}

// pump delivers envelopes to the responder one at a time.
func (n *Network) pump(ep *endpoint) {
	defer n.pumps.Done()
	for {
		select {
		case env := <-ep.inbox:
			env.reply <- n.deliver(ep, env)
		case <-n.runCtx.Done():
			return
		}
	}
}

func (n *Network) deliver(ep *endpoint, env envelope) error {
	ctx := n.runCtx
	switch env.kind {
	case wireVerify, wireCommit:
		var t contract.Transition
		if err := codec.Unmarshal(env.payload, &t); err != nil {
			return fmt.Errorf("%w: decode transition: %v", errors.ErrCommitFailed, err)
		}
		if env.kind == wireVerify {
			return ep.responder.VerifyTransition(ctx, t)
		}
		return ep.responder.CommitTransition(ctx, t)
	case wireSession:
		var s domain.SessionRecord
		if err := codec.Unmarshal(env.payload, &s); err != nil {
			return fmt.Errorf("%w: decode session: %v", errors.ErrCommitFailed, err)
		}
		return ep.responder.AcceptSession(ctx, s)
	case wireMessage:
		var mw messageWire
		if err := codec.Unmarshal(env.payload, &mw); err != nil {
			return fmt.Errorf("%w: decode message: %v", errors.ErrCommitFailed, err)
		}
		return ep.responder.AcceptMessage(ctx, mw.Message, mw.First)
	case wireInstruction:
		var ins contract.Instruction
		if err := codec.Unmarshal(env.payload, &ins); err != nil {
			return fmt.Errorf("%w: decode instruction: %v", errors.ErrCommitFailed, err)
		}
		return ep.responder.HandleInstruction(ctx, ins)
	default:
		return fmt.Errorf("%w: wire kind %q", errors.ErrCommitFailed, env.kind)
	}
}

// rpc sends one envelope and waits for the peer's acknowledgement. A
// context deadline while enqueueing or awaiting the reply surfaces as
// ErrPeerTimeout, leaving no local state behind.
func (n *Network) rpc(ctx context.Context, from, to domain.Party, kind wireKind, payload any) error {
	ep, err := n.lookup(to)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", errors.ErrCommitFailed, kind, err)
	}
	env := envelope{kind: kind, from: from, payload: data, reply: make(chan error, 1)}

	select {
	case ep.inbox <- env:
	case <-ctx.Done():
		return fmt.Errorf("%w: %s did not accept %s", errors.ErrPeerTimeout, to, kind)
	case <-n.runCtx.Done():
		return fmt.Errorf("%w: network closed", errors.ErrPeerTimeout)
	}

	select {
	case err := <-env.reply:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %s did not acknowledge %s", errors.ErrPeerTimeout, to, kind)
	case <-n.runCtx.Done():
		return fmt.Errorf("%w: network closed", errors.ErrPeerTimeout)
	}
}
