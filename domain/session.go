// Package domain contains core concepts of the shared chat ledger.
// This file defines the versioned SessionRecord and its invariants.
package domain

import (
	"fmt"
	"time"

	"chat-ledger/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Status is the derived state of a session on one party's vault.
// CLOSED is virtual: a closed session has no current version at all.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

// SessionRecord is one version of a chat session. The session is identified
// by ID across all versions; each version carries its own VersionID and a
// back-reference to the version it superseded. The version counter is the
// authority for "current", not timestamps, which are fragile under clock
// skew between nodes.
type SessionRecord struct {
	ID            uuid.UUID
	VersionID     uuid.UUID
	PrevVersionID uuid.UUID // zero for the first version
	Version       uint64    // starts at 1, strictly increases
	CreatedAt     time.Time // creation time of this version
	Admin         Party
	Receivers     []Party
	Subject       string
}

// NewSessionRecord builds the first version of a session. Duplicate
// receivers are collapsed; the remaining invariants are enforced.
func NewSessionRecord(admin Party, receivers []Party, subject string) (SessionRecord, error) {
	s := SessionRecord{
		ID:        uuid.New(),
		VersionID: uuid.New(),
		Version:   1,
		CreatedAt: time.Now().UTC(),
		Admin:     admin,
		Receivers: lo.Uniq(receivers),
		Subject:   subject,
	}
	if err := s.Validate(); err != nil {
		return SessionRecord{}, err
	}
	return s, nil
}

// NextVersion produces the successor version with the given receiver set.
// ID, Admin and Subject never change across versions.
func (s SessionRecord) NextVersion(receivers []Party) (SessionRecord, error) {
	next := SessionRecord{
		ID:            s.ID,
		VersionID:     uuid.New(),
		PrevVersionID: s.VersionID,
		Version:       s.Version + 1,
		CreatedAt:     time.Now().UTC(),
		Admin:         s.Admin,
		Receivers:     lo.Uniq(receivers),
		Subject:       s.Subject,
	}
	if !next.CreatedAt.After(s.CreatedAt) {
		// same-tick successor, nudge forward so CreatedAt stays strictly increasing
		next.CreatedAt = s.CreatedAt.Add(time.Nanosecond)
	}
	if err := next.Validate(); err != nil {
		return SessionRecord{}, err
	}
	return next, nil
}

// Validate enforces the per-record invariants. The single-current-version
// invariant is the vault's to uphold, not the record's.
func (s SessionRecord) Validate() error {
	if len(s.Receivers) == 0 {
		return fmt.Errorf("%w: receivers must not be empty", errors.ErrValidation)
	}
	if lo.Contains(s.Receivers, s.Admin) {
		return fmt.Errorf("%w: admin %q must not be a receiver", errors.ErrValidation, s.Admin)
	}
	if len(lo.Uniq(s.Receivers)) != len(s.Receivers) {
		return fmt.Errorf("%w: duplicate receivers", errors.ErrValidation)
	}
	return nil
}

// Participants is the derived stakeholder set: receivers plus admin.
func (s SessionRecord) Participants() []Party {
	return append(lo.Uniq(s.Receivers), s.Admin)
}

// HasParticipant reports whether p is the admin or one of the receivers.
func (s SessionRecord) HasParticipant(p Party) bool {
	return p == s.Admin || lo.Contains(s.Receivers, p)
}
