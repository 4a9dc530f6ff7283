package e2e

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"chat-ledger/domain"
	"chat-ledger/domain/event"
	"chat-ledger/node"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type testSessionLifecycleSuite struct {
	BaseSuite
}

func TestSessionLifecycleSuite(t *testing.T) {
	suite.Run(t, &testSessionLifecycleSuite{})
}

// countingSink tallies observed events per kind without blocking fanout.
type countingSink struct {
	created   atomic.Int64
	messages  atomic.Int64
	additions atomic.Int64
	removals  atomic.Int64
	closures  atomic.Int64
}

func (c *countingSink) Consume(ctx context.Context, e event.DomainEvent) error {
	switch e.Kind() {
	case event.SessionCreatedType:
		c.created.Add(1)
	case event.MessageIssuedType:
		c.messages.Add(1)
	case event.ParticipantsAddedType:
		c.additions.Add(1)
	case event.ParticipantsRemovedType:
		c.removals.Add(1)
	case event.SessionClosedType:
		c.closures.Add(1)
	}
	return nil
}

func (s *testSessionLifecycleSuite) TestFullSessionLifecycle() {
	ctx := context.Background()
	var sessionID uuid.UUID
	bobEvents := &countingSink{}
	s.Node("bob").SubscribeAll("bob-observer", bobEvents)

	// --- STEP 0: SESSION CREATION WITH FIRST MESSAGE ---
	s.Step("Step 0: Alice opens a session with Bob", func() {
		created, err := s.Node("alice").CreateSession(ctx, node.CreateSessionRequest{
			Subject:      "incident 4711",
			Receivers:    []domain.Party{"bob"},
			FirstMessage: "paging you about the incident",
		})
		s.Require().NoError(err)
		s.Require().True(created.Delivery.Complete(), "first message must reach every participant")
		sessionID = created.Session.ID

		// Bob's vault converged on the same session
		status, err := s.Node("bob").Queries().CurrentStatus(sessionID)
		s.Require().NoError(err)
		s.Require().Equal(domain.StatusActive, status)
	})

	// --- STEP 1: BIDIRECTIONAL MESSAGING ---
	s.Step("Step 1: Bob replies and both read the same thread", func() {
		_, report, err := s.Node("bob").SendMessage(ctx, node.SendMessageRequest{
			SessionID: sessionID,
			Content:   "on it, mitigating now",
		})
		s.Require().NoError(err)
		s.Require().True(report.Complete())

		for _, name := range []domain.Party{"alice", "bob"} {
			msgs, err := s.Node(name).Queries().ListMessages(sessionID, false)
			s.Require().NoError(err)
			s.Require().Len(msgs, 2, "party %s", name)
			s.Require().Equal("paging you about the incident", msgs[0].Content)
			s.Require().Equal("on it, mitigating now", msgs[1].Content)
		}
	})

	// --- STEP 2: MEMBERSHIP CHANGES ---
	s.Step("Step 2: Carol is pulled in, then released", func() {
		updated, err := s.Node("alice").AddParticipants(ctx, sessionID, []domain.Party{"carol"})
		s.Require().NoError(err)
		s.Require().ElementsMatch([]domain.Party{"bob", "carol"}, updated.Receivers)

		parties, err := s.Node("carol").Queries().Participants(sessionID)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]domain.Party{"alice", "bob", "carol"}, parties)

		_, err = s.Node("alice").RemoveParticipants(ctx, sessionID, []domain.Party{"carol"})
		s.Require().NoError(err)

		// Carol's view is closed, the remaining stakeholders moved to v3
		status, err := s.Node("carol").Queries().CurrentStatus(sessionID)
		s.Require().NoError(err)
		s.Require().Equal(domain.StatusClosed, status)

		history, err := s.Node("alice").Queries().History(sessionID)
		s.Require().NoError(err)
		s.Require().Len(history, 3)
	})

	// --- STEP 3: CLOSE AND AUDIT ---
	s.Step("Step 3: Alice closes, everything is retired but auditable", func() {
		receipt, err := s.Node("alice").CloseSession(ctx, sessionID)
		s.Require().NoError(err)
		s.Require().Equal(sessionID, receipt.SessionID)
		s.Require().True(receipt.Complete())

		for _, name := range []domain.Party{"alice", "bob"} {
			status, err := s.Node(name).Queries().CurrentStatus(sessionID)
			s.Require().NoError(err)
			s.Require().Equal(domain.StatusClosed, status, "party %s", name)

			active, err := s.Node(name).Queries().ListMessages(sessionID, false)
			s.Require().NoError(err)
			s.Require().Empty(active, "party %s", name)

			archived, err := s.Node(name).Queries().ListMessages(sessionID, true)
			s.Require().NoError(err)
			s.Require().Len(archived, 2, "party %s", name)
		}
	})

	// --- STEP 4: ASYNCHRONOUS OBSERVER VALIDATION ---
	s.Step("Step 4: Bob's observer saw the whole story", func() {
		s.Eventually(func() bool {
			return bobEvents.created.Load() == 1 &&
				bobEvents.messages.Load() == 1 &&
				bobEvents.additions.Load() == 1 &&
				bobEvents.removals.Load() == 1 &&
				bobEvents.closures.Load() == 1
		}, s.Config.EventTimeout, 50*time.Millisecond, "observer events not all delivered within timeout")
	})
}

func (s *testSessionLifecycleSuite) TestNonAdminCannotMutate() {
	ctx := context.Background()

	created, err := s.Node("alice").CreateSession(ctx, node.CreateSessionRequest{
		Subject:      "admin rights",
		Receivers:    []domain.Party{"bob", "carol"},
		FirstMessage: "only I drive this one",
	})
	s.Require().NoError(err)

	s.Step("Bob cannot change membership or close", func() {
		_, err := s.Node("bob").AddParticipants(ctx, created.Session.ID, []domain.Party{"carol"})
		s.Require().Error(err)
		_, err = s.Node("bob").CloseSession(ctx, created.Session.ID)
		s.Require().Error(err)
	})

	s.Step("The session is still fully usable", func() {
		_, report, err := s.Node("carol").SendMessage(ctx, node.SendMessageRequest{
			SessionID: created.Session.ID,
			Content:   "still here",
		})
		s.Require().NoError(err)
		s.Require().True(report.Complete())
	})
}
