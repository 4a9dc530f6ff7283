// Package node assembles one party: identity, vault, ledger client,
// protocols, observer registry and the fanout worker. All dependencies
// are injected explicitly so many logical nodes can share one process.
package node

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"
	"chat-ledger/protocol"
	"chat-ledger/query"
	"chat-ledger/runtime"
	"chat-ledger/runtime/workers"

	"github.com/google/uuid"
)

// Joiner attaches a party's responder to the substrate and hands back its
// ledger client. ledger/memory implements it; a client for an external
// ledger would too.
type Joiner interface {
	Join(party domain.Party, responder contract.Responder) contract.LedgerClient
}

type Node struct {
	log      *slog.Logger
	identity domain.Party
	store    contract.RecordStore
	ledger   contract.LedgerClient

	lifecycle *protocol.Lifecycle
	messages  *protocol.Messages
	queries   *query.Facade

	registry *runtime.Registry
	fanout   *workers.EventFanout
	sup      *workers.Supervisor
}

// New wires one party into the network.
func New(log *slog.Logger, identity domain.Party, store contract.RecordStore, network Joiner, cfg protocol.Config, fanoutBuffer int) *Node {
	registry := runtime.NewRegistry()
	fanout := workers.NewEventFanout(log, registry, fanoutBuffer, cfg.PeerTimeout)
	responder := protocol.NewResponder(log, identity, store, fanout, cfg)
	client := network.Join(identity, responder)

	return &Node{
		log:       log,
		identity:  identity,
		store:     store,
		ledger:    client,
		lifecycle: protocol.NewLifecycle(log, store, client, fanout, cfg),
		messages:  protocol.NewMessages(log, store, client, cfg),
		queries:   query.NewFacade(store),
		registry:  registry,
		fanout:    fanout,
		sup:       workers.NewSupervisor(log),
	}
}

func (n *Node) Identity() domain.Party { return n.identity }

const queueDepthInterval = 10 * time.Second

// Start runs the node's background workers until ctx is canceled.
func (n *Node) Start(ctx context.Context) {
	depth := workers.NewQueueDepth(n.log, []workers.NamedChannel{
		{Name: string(n.identity) + "-fanout", Channel: n.fanout.Queue()},
	}, queueDepthInterval)
	n.sup.Add(n.fanout, depth)
	go n.sup.Run(ctx)
}

// Stop halts the workers and closes the vault.
func (n *Node) Stop() error {
	n.sup.Stop()
	return n.store.Close()
}

// CreateSessionResult is what the initiator gets back: the session, the
// sender-held copy of the first message, and the delivery report for the
// message broadcast.
type CreateSessionResult struct {
	Session  domain.SessionRecord
	Message  domain.MessageRecord
	Delivery *protocol.DeliveryReport
}

// CreateSession creates a session with the node as admin and issues its
// first message to every participant.
func (n *Node) CreateSession(ctx context.Context, req CreateSessionRequest) (CreateSessionResult, error) {
	if err := req.Validate(); err != nil {
		return CreateSessionResult{}, err
	}
	session, err := n.lifecycle.Create(ctx, req.Subject, req.Receivers)
	if err != nil {
		return CreateSessionResult{}, err
	}
	msg, report, err := n.messages.SendFirst(ctx, session.ID, req.FirstMessage)
	if err != nil {
		return CreateSessionResult{}, err
	}
	return CreateSessionResult{Session: session, Message: msg, Delivery: report}, nil
}

// SendMessage issues one message into an active session this node
// participates in.
func (n *Node) SendMessage(ctx context.Context, req SendMessageRequest) (domain.MessageRecord, *protocol.DeliveryReport, error) {
	if err := req.Validate(); err != nil {
		return domain.MessageRecord{}, nil, err
	}
	return n.messages.Send(ctx, req.SessionID, req.Content)
}

// AddParticipants grows the receiver set. Only the admin may call it; the
// check happens here, before any peer contact, and again independently at
// every co-signer.
func (n *Node) AddParticipants(ctx context.Context, sessionID uuid.UUID, parties []domain.Party) (domain.SessionRecord, error) {
	if err := n.requireAdmin(sessionID); err != nil {
		return domain.SessionRecord{}, err
	}
	return n.lifecycle.Update(ctx, sessionID, parties, nil)
}

// RemoveParticipants shrinks the receiver set. Removed parties retire
// their held messages and keep no current session version.
func (n *Node) RemoveParticipants(ctx context.Context, sessionID uuid.UUID, parties []domain.Party) (domain.SessionRecord, error) {
	if err := n.requireAdmin(sessionID); err != nil {
		return domain.SessionRecord{}, err
	}
	return n.lifecycle.Update(ctx, sessionID, nil, parties)
}

// CloseSession retires the session and all its messages at every
// stakeholder. Admin only.
func (n *Node) CloseSession(ctx context.Context, sessionID uuid.UUID) (protocol.CommitReceipt, error) {
	if err := n.requireAdmin(sessionID); err != nil {
		return protocol.CommitReceipt{}, err
	}
	return n.lifecycle.Close(ctx, sessionID)
}

func (n *Node) requireAdmin(sessionID uuid.UUID) error {
	cur, err := n.store.CurrentSession(sessionID)
	if err != nil {
		return err
	}
	if cur.Admin != n.identity {
		return fmt.Errorf("%w: %s is not the admin of session %s", errors.ErrAuthorization, n.identity, sessionID)
	}
	return nil
}

// Queries exposes the read-side facade.
func (n *Node) Queries() *query.Facade { return n.queries }

// Subscribe registers a local observer for one session's events.
func (n *Node) Subscribe(observerID string, sessionID uuid.UUID, sink contract.EventSink) {
	n.registry.Subscribe(observerID, sessionID, sink)
}

// SubscribeAll registers a local observer for every session's events.
func (n *Node) SubscribeAll(observerID string, sink contract.EventSink) {
	n.registry.SubscribeAll(observerID, sink)
}

func (n *Node) Unsubscribe(observerID string, sessionID uuid.UUID) {
	n.registry.Unsubscribe(observerID, sessionID)
}
