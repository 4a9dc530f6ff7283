package projection

import (
	"context"
	"testing"
	"time"

	"chat-ledger/domain"
	"chat-ledger/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func message(sessionID uuid.UUID, content string, at time.Time) domain.MessageRecord {
	return domain.MessageRecord{
		ID:        uuid.New(),
		SessionID: sessionID,
		CreatedAt: at,
		Content:   content,
		Sender:    "alice",
		Holder:    "bob",
	}
}

func Test_Timeline_Orders_Out_Of_Order_Arrivals(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("bob")
	sessionID := uuid.New()
	ctx := context.Background()
	at := time.Now().UTC()

	second := message(sessionID, "second", at.Add(time.Minute))
	first := message(sessionID, "first", at)

	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: second}))
	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: first}))

	msgs := timeline.Messages(sessionID)
	req.Len(msgs, 2)
	req.Equal("first", msgs[0].Content)
	req.Equal("second", msgs[1].Content)
}

func Test_Timeline_Drops_Duplicate_Deliveries(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("bob")
	sessionID := uuid.New()
	ctx := context.Background()

	m := message(sessionID, "once", time.Now().UTC())
	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: m}))
	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: m}))

	req.Len(timeline.Messages(sessionID), 1)
}

func Test_Timeline_Counts_The_Creation_Message(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("bob")
	ctx := context.Background()

	session, err := domain.NewSessionRecord("alice", []domain.Party{"bob"}, "projected")
	req.NoError(err)
	opener := message(session.ID, "opening line", time.Now().UTC())

	req.NoError(timeline.Consume(ctx, event.SessionCreated{Session: session, Message: opener}))
	req.NoError(timeline.Consume(ctx, event.SessionClosed{Session: session}))

	msgs := timeline.Messages(session.ID)
	req.Len(msgs, 1)
	req.Equal("opening line", msgs[0].Content)
	req.True(timeline.Closed(session.ID))
}

func Test_Timeline_Keeps_Sessions_Apart(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("bob")
	ctx := context.Background()
	one, two := uuid.New(), uuid.New()
	at := time.Now().UTC()

	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: message(one, "in one", at)}))
	req.NoError(timeline.Consume(ctx, event.MessageIssued{Message: message(two, "in two", at)}))

	req.Len(timeline.Messages(one), 1)
	req.Len(timeline.Messages(two), 1)
	req.False(timeline.Closed(one))
}
