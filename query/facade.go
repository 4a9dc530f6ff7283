// Package query is the read side: pure lookups over the local vault,
// never triggering protocol side effects. Results reflect this party's
// local view, which may briefly trail another party's committed state.
package query

import (
	stderrors "errors"

	"chat-ledger/contract"
	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/google/uuid"
)

type Facade struct {
	store contract.RecordStore
}

func NewFacade(store contract.RecordStore) *Facade {
	return &Facade{store: store}
}

// ListSessionIDs returns the distinct session ids held locally; with
// includeClosed, ids whose every version is retired are listed too.
func (f *Facade) ListSessionIDs(includeClosed bool) ([]uuid.UUID, error) {
	return f.store.SessionIDs(includeClosed)
}

// ListMessages returns the copies addressed to this party for one
// session, in storage order (chronological per the vault's key layout;
// callers needing a different order sort themselves).
func (f *Facade) ListMessages(sessionID uuid.UUID, includeClosed bool) ([]domain.MessageRecord, error) {
	return f.store.Messages(sessionID, includeClosed)
}

// ListAllMessages returns every message copy this party holds.
func (f *Facade) ListAllMessages(includeClosed bool) ([]domain.MessageRecord, error) {
	return f.store.AllMessages(includeClosed)
}

// CurrentStatus is ACTIVE iff an unretired session version exists
// locally. CLOSED is a derived answer, including for ids never seen.
func (f *Facade) CurrentStatus(sessionID uuid.UUID) (domain.Status, error) {
	_, err := f.store.CurrentSession(sessionID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return domain.StatusClosed, nil
	}
	if err != nil {
		return "", err
	}
	return domain.StatusActive, nil
}

// Participants derives the stakeholder set of the current version, or
// empty when no current version exists.
func (f *Facade) Participants(sessionID uuid.UUID) ([]domain.Party, error) {
	cur, err := f.store.CurrentSession(sessionID)
	if stderrors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cur.Participants(), nil
}

// History returns every version of a session this party ever held.
func (f *Facade) History(sessionID uuid.UUID) ([]domain.SessionRecord, error) {
	return f.store.SessionHistory(sessionID)
}
