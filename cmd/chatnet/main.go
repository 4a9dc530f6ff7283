package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/domain/event"
	"chat-ledger/internal"
	"chat-ledger/ledger/memory"
	"chat-ledger/node"
	"chat-ledger/projection"
	"chat-ledger/runtime/workers"
	"chat-ledger/vault"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run boots a three-party network over per-party vaults, plays a short
// scripted conversation and waits for a signal. Returning the error to
// main keeps every defer (vault close, network close) running on exit.
func run() error {
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	network := memory.NewNetwork(log, config.NetworkBufferSize)
	defer network.Close()

	// process-wide health sampling, independent of any single node
	sup := workers.NewSupervisor(log)
	sup.Add(workers.NewHealth(log, config.HealthInterval))
	go sup.Run(ctx)
	defer sup.Stop()

	parties := []domain.Party{"alice", "bob", "carol"}
	nodes := make(map[domain.Party]*node.Node, len(parties))
	for _, p := range parties {
		store, err := vault.Open(filepath.Join(config.VaultDir, p.String()), log)
		if err != nil {
			return fmt.Errorf("vault for %s: %w", p, err)
		}
		n := node.New(log, p, store, network, config.ProtocolConfig(), config.FanoutBufferSize)
		n.Start(ctx)
		defer func() {
			log.Info("Stopping node", "party", p)
			_ = n.Stop()
		}()
		n.SubscribeAll("console-"+p.String(), &logSink{log: log, party: p})
		nodes[p] = n
	}

	// bob also keeps a projected timeline of everything he observes
	timeline := projection.NewTimeline("bob")
	nodes["bob"].SubscribeAll("timeline-bob", timeline)

	sessionID, err := converse(ctx, log, nodes)
	if err != nil {
		return err
	}
	// fanout is asynchronous, give the workers a beat before reading
	time.Sleep(200 * time.Millisecond)
	for i, m := range timeline.Messages(sessionID) {
		log.Info("Timeline entry", "index", i, "sender", m.Sender, "content", m.Content)
	}

	log.Info("Conversation done, Ctrl-C to exit")
	<-ctx.Done()
	return nil
}

// converse runs the scripted session: alice opens a session with bob,
// adds carol, bob replies, alice closes.
func converse(ctx context.Context, log *slog.Logger, nodes map[domain.Party]*node.Node) (uuid.UUID, error) {
	alice, bob := nodes["alice"], nodes["bob"]

	created, err := alice.CreateSession(ctx, node.CreateSessionRequest{
		Subject:      "release planning",
		Receivers:    []domain.Party{"bob"},
		FirstMessage: "kicking this off",
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("create session: %w", err)
	}
	id := created.Session.ID

	if _, err := alice.AddParticipants(ctx, id, []domain.Party{"carol"}); err != nil {
		return uuid.Nil, fmt.Errorf("add carol: %w", err)
	}
	if _, _, err := bob.SendMessage(ctx, node.SendMessageRequest{SessionID: id, Content: "glad to be here"}); err != nil {
		return uuid.Nil, fmt.Errorf("bob reply: %w", err)
	}
	if _, err := alice.CloseSession(ctx, id); err != nil {
		return uuid.Nil, fmt.Errorf("close session: %w", err)
	}
	log.Info("Scripted conversation finished", "session", id)
	return id, nil
}

// logSink prints every event a node observes.
type logSink struct {
	log   *slog.Logger
	party domain.Party
}

func (s *logSink) Consume(ctx context.Context, e event.DomainEvent) error {
	s.log.Info("Observed event", "party", s.party, "kind", e.Kind(), "session", e.SessionID())
	return nil
}

var _ contract.EventSink = (*logSink)(nil)
