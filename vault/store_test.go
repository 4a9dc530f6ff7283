package vault

import (
	"log/slog"
	"testing"
	"time"

	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newSession(t *testing.T, admin domain.Party, receivers ...domain.Party) domain.SessionRecord {
	t.Helper()
	rec, err := domain.NewSessionRecord(admin, receivers, "subject under test")
	require.NoError(t, err)
	return rec
}

func newMessage(session domain.SessionRecord, sender, holder domain.Party, content string, at time.Time) domain.MessageRecord {
	return domain.MessageRecord{
		ID:        uuid.New(),
		SessionID: session.ID,
		CreatedAt: at,
		Content:   content,
		Sender:    sender,
		Holder:    holder,
	}
}

func Test_Put_And_Get_Current_Session(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	rec := newSession(t, "alice", "bob")

	req.NoError(store.PutSession(rec))

	fetched, err := store.CurrentSession(rec.ID)
	req.NoError(err)
	req.Equal(rec.ID, fetched.ID)
	req.Equal(rec.VersionID, fetched.VersionID)
	req.Equal(rec.Receivers, fetched.Receivers)
	req.True(rec.CreatedAt.Equal(fetched.CreatedAt))
}

func Test_Current_Session_Unknown_Id(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	_, err := store.CurrentSession(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Retire_Session_With_Successor(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	first := newSession(t, "alice", "bob")
	req.NoError(store.PutSession(first))

	next, err := first.NextVersion([]domain.Party{"bob", "carol"})
	req.NoError(err)

	retired, err := store.RetireSession(first.ID, &next)
	req.NoError(err)
	req.Equal(first.VersionID, retired.VersionID)

	current, err := store.CurrentSession(first.ID)
	req.NoError(err)
	req.Equal(next.VersionID, current.VersionID)

	history, err := store.SessionHistory(first.ID)
	req.NoError(err)
	req.Len(history, 2)
	req.Equal(uint64(1), history[0].Version)
	req.Equal(uint64(2), history[1].Version)
}

func Test_Retire_Session_Without_Successor_Closes(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	rec := newSession(t, "alice", "bob")
	req.NoError(store.PutSession(rec))

	_, err := store.RetireSession(rec.ID, nil)
	req.NoError(err)

	_, err = store.CurrentSession(rec.ID)
	req.ErrorIs(err, errors.ErrNotFound)

	// the id disappears from the active listing but stays in history
	active, err := store.SessionIDs(false)
	req.NoError(err)
	req.Empty(active)

	all, err := store.SessionIDs(true)
	req.NoError(err)
	req.Equal([]uuid.UUID{rec.ID}, all)
}

func Test_Retire_Unknown_Session(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	_, err := store.RetireSession(uuid.New(), nil)
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Messages_Sorted_Chronologically(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	rec := newSession(t, "alice", "bob")
	req.NoError(store.PutSession(rec))

	at := time.Now().UTC()
	contents := []string{"first", "second", "third"}
	// stored out of order on purpose
	req.NoError(store.PutMessage(newMessage(rec, "alice", "alice", contents[2], at.Add(2*time.Minute))))
	req.NoError(store.PutMessage(newMessage(rec, "bob", "alice", contents[0], at)))
	req.NoError(store.PutMessage(newMessage(rec, "alice", "alice", contents[1], at.Add(1*time.Minute))))

	msgs, err := store.Messages(rec.ID, false)
	req.NoError(err)
	req.Len(msgs, 3)
	for i, m := range msgs {
		req.Equal(contents[i], m.Content)
	}
}

func Test_Retire_Messages_Moves_To_History(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	rec := newSession(t, "alice", "bob")
	req.NoError(store.PutSession(rec))

	at := time.Now().UTC()
	req.NoError(store.PutMessage(newMessage(rec, "alice", "alice", "hello", at)))
	req.NoError(store.PutMessage(newMessage(rec, "bob", "alice", "hi", at.Add(time.Second))))

	retired, err := store.RetireMessages(rec.ID)
	req.NoError(err)
	req.Len(retired, 2)

	active, err := store.Messages(rec.ID, false)
	req.NoError(err)
	req.Empty(active)

	all, err := store.Messages(rec.ID, true)
	req.NoError(err)
	req.Len(all, 2)
}

func Test_Retire_Messages_Requires_Current_Session(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)

	_, err := store.RetireMessages(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Restore_Messages_Compensates_Retirement(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	rec := newSession(t, "alice", "bob")
	req.NoError(store.PutSession(rec))

	req.NoError(store.PutMessage(newMessage(rec, "alice", "alice", "hello", time.Now().UTC())))

	retired, err := store.RetireMessages(rec.ID)
	req.NoError(err)
	req.Len(retired, 1)

	req.NoError(store.RestoreMessages(retired))

	active, err := store.Messages(rec.ID, false)
	req.NoError(err)
	req.Len(active, 1)
	req.Equal("hello", active[0].Content)

	// the historical copy moved back, it is not duplicated
	all, err := store.Messages(rec.ID, true)
	req.NoError(err)
	req.Len(all, 1)
}

func Test_All_Messages_Across_Sessions(t *testing.T) {
	req := require.New(t)
	store := openTestStore(t)
	one := newSession(t, "alice", "bob")
	two := newSession(t, "alice", "carol")
	req.NoError(store.PutSession(one))
	req.NoError(store.PutSession(two))

	at := time.Now().UTC()
	req.NoError(store.PutMessage(newMessage(one, "alice", "alice", "in one", at)))
	req.NoError(store.PutMessage(newMessage(two, "alice", "alice", "in two", at)))

	msgs, err := store.AllMessages(false)
	req.NoError(err)
	req.Len(msgs, 2)
}
