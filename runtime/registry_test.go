package runtime

import (
	"testing"

	"chat-ledger/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Registry_Resolves_Session_And_Global_Observers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	sessionID := uuid.New()

	registry.Subscribe("member", sessionID, mocks.NewMockEventSink(ctrl))
	registry.SubscribeAll("auditor", mocks.NewMockEventSink(ctrl))

	req.Len(registry.GetSinksForSession(sessionID), 2)
	// for an unrelated session only the global observer listens
	req.Len(registry.GetSinksForSession(uuid.New()), 1)
}

func Test_Registry_Deduplicates_Observer_Subscribed_Both_Ways(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	sessionID := uuid.New()
	sink := mocks.NewMockEventSink(ctrl)

	registry.Subscribe("watcher", sessionID, sink)
	registry.SubscribeAll("watcher", sink)

	req.Len(registry.GetSinksForSession(sessionID), 1)
}

func Test_Registry_Unsubscribe_Drops_Orphan_Sink(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	one, two := uuid.New(), uuid.New()
	sink := mocks.NewMockEventSink(ctrl)

	registry.Subscribe("watcher", one, sink)
	registry.Subscribe("watcher", two, sink)

	registry.Unsubscribe("watcher", one)
	req.Empty(registry.GetSinksForSession(one))
	// still subscribed elsewhere, the sink survives
	req.Len(registry.GetSinksForSession(two), 1)

	registry.Unsubscribe("watcher", two)
	req.Empty(registry.GetSinksForSession(two))
}

func Test_Registry_Global_Observer_Survives_Session_Unsubscribe(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := NewRegistry()
	sessionID := uuid.New()
	sink := mocks.NewMockEventSink(ctrl)

	registry.SubscribeAll("auditor", sink)
	registry.Subscribe("auditor", sessionID, sink)

	registry.Unsubscribe("auditor", sessionID)
	req.Len(registry.GetSinksForSession(sessionID), 1)
}
