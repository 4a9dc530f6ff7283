package domain

import (
	"testing"

	"chat-ledger/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_New_Session_Record(t *testing.T) {
	req := require.New(t)

	rec, err := NewSessionRecord("alice", []Party{"bob", "carol"}, "standup")
	req.NoError(err)
	req.NotEqual(uuid.Nil, rec.ID)
	req.NotEqual(uuid.Nil, rec.VersionID)
	req.Equal(uuid.Nil, rec.PrevVersionID)
	req.Equal(uint64(1), rec.Version)
	req.Equal(Party("alice"), rec.Admin)
	req.Equal([]Party{"bob", "carol"}, rec.Receivers)
	req.Equal("standup", rec.Subject)
}

func Test_New_Session_Record_Collapses_Duplicate_Receivers(t *testing.T) {
	req := require.New(t)

	rec, err := NewSessionRecord("alice", []Party{"bob", "bob", "carol"}, "standup")
	req.NoError(err)
	req.Equal([]Party{"bob", "carol"}, rec.Receivers)
}

func Test_New_Session_Record_Rejects_Empty_Receivers(t *testing.T) {
	req := require.New(t)

	_, err := NewSessionRecord("alice", nil, "standup")
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_New_Session_Record_Rejects_Admin_As_Receiver(t *testing.T) {
	req := require.New(t)

	_, err := NewSessionRecord("alice", []Party{"bob", "alice"}, "standup")
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_Next_Version_Keeps_Identity_And_Chains(t *testing.T) {
	req := require.New(t)
	first, err := NewSessionRecord("alice", []Party{"bob"}, "standup")
	req.NoError(err)

	next, err := first.NextVersion([]Party{"bob", "carol"})
	req.NoError(err)
	req.Equal(first.ID, next.ID)
	req.Equal(first.Admin, next.Admin)
	req.Equal(first.Subject, next.Subject)
	req.Equal(first.Version+1, next.Version)
	req.Equal(first.VersionID, next.PrevVersionID)
	req.NotEqual(first.VersionID, next.VersionID)
	req.Equal([]Party{"bob", "carol"}, next.Receivers)
}

func Test_Next_Version_Created_At_Strictly_Increases(t *testing.T) {
	req := require.New(t)
	rec, err := NewSessionRecord("alice", []Party{"bob"}, "standup")
	req.NoError(err)

	// successors built back to back must still be strictly ordered in time
	for i := 0; i < 5; i++ {
		next, err := rec.NextVersion(rec.Receivers)
		req.NoError(err)
		req.True(next.CreatedAt.After(rec.CreatedAt))
		rec = next
	}
}

func Test_Next_Version_Rejects_Admin_Joining_Receivers(t *testing.T) {
	req := require.New(t)
	rec, err := NewSessionRecord("alice", []Party{"bob"}, "standup")
	req.NoError(err)

	_, err = rec.NextVersion([]Party{"bob", "alice"})
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_Participants_And_Membership(t *testing.T) {
	req := require.New(t)
	rec, err := NewSessionRecord("alice", []Party{"bob", "carol"}, "standup")
	req.NoError(err)

	req.ElementsMatch([]Party{"alice", "bob", "carol"}, rec.Participants())
	req.True(rec.HasParticipant("alice"))
	req.True(rec.HasParticipant("carol"))
	req.False(rec.HasParticipant("mallory"))
}
