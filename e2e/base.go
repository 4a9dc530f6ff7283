package e2e

import (
	"context"
	"fmt"

	"chat-ledger/domain"
	"chat-ledger/ledger/memory"
	"chat-ledger/node"
	"chat-ledger/protocol"
	"chat-ledger/vault"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseSuite boots a fresh in-process network of nodes for every test so
// scenarios never share ledger state.
type BaseSuite struct {
	suite.Suite
	Config Config

	net    *memory.Network
	nodes  map[domain.Party]*node.Node
	cancel context.CancelFunc
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) SetupTest() {
	log := logs.GetLoggerFromString(s.Config.LogLevel)
	s.net = memory.NewNetwork(log, 16)
	s.nodes = make(map[domain.Party]*node.Node)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	cfg := protocol.Config{
		PeerTimeout: s.Config.PeerTimeout,
		RetireEmpty: protocol.RetireLenient,
	}
	for _, name := range []domain.Party{"alice", "bob", "carol"} {
		store, err := vault.Open(s.T().TempDir(), log)
		s.Require().NoError(err)

		n := node.New(log, name, store, s.net, cfg, 16)
		n.Start(ctx)
		s.nodes[name] = n
	}
}

func (s *BaseSuite) TearDownTest() {
	s.cancel()
	for _, n := range s.nodes {
		s.Require().NoError(n.Stop())
	}
	s.net.Close()
}

func (s *BaseSuite) Node(name domain.Party) *node.Node {
	n, ok := s.nodes[name]
	s.Require().True(ok, "unknown node %s", name)
	return n
}

// Step prints a colorized header so scenario logs read as a storyboard.
func (s *BaseSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}
