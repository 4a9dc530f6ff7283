// Package domain contains core concepts of the shared chat ledger.
// This file defines MessageRecord. Messages are immutable once issued.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageRecord is one party's physical copy of a chat message. Issuing a
// message produces one record per participant of the session; the copies
// share ID, SessionID, Content, Sender and CreatedAt and differ only in
// Holder, the party this copy is addressed to.
type MessageRecord struct {
	ID        uuid.UUID
	SessionID uuid.UUID // the SessionRecord.ID this message belongs to
	CreatedAt time.Time
	Content   string
	Sender    Party
	Holder    Party
}

// CopyFor returns the same logical message addressed to another holder.
func (m MessageRecord) CopyFor(holder Party) MessageRecord {
	m.Holder = holder
	return m
}
