// Package vault is the Badger-backed local record store. Each party owns
// one vault; no party's vault is authoritative. Retired records move from
// the active key space to the historical one and stay queryable forever.
package vault

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"chat-ledger/codec"
	"chat-ledger/domain"
	"chat-ledger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Key layout:
//
//	session:current:{id}                      -> current version
//	session:hist:{id}:{version 010d}          -> every version ever held
//	msg:active:{session}:{ts 019d}:{msg id}   -> unretired message copy
//	msg:hist:{session}:{ts 019d}:{msg id}     -> retired message copy
//
// The 19-digit zero-padded timestamp keeps messages chronologically sorted
// under lexicographic iteration; the message id disambiguates copies
// issued in the same nanosecond.
const (
	sessionCurrentPrefix = "session:current:"
	sessionHistPrefix    = "session:hist:"
	msgActivePrefix      = "msg:active:"
	msgHistPrefix        = "msg:hist:"
)

type Store struct {
	db  *badger.DB
	log *slog.Logger
}

func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Open opens a Badger vault at path. Tests pass t.TempDir().
func Open(path string, log *slog.Logger) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("vault opening failed: %w", err)
	}
	return NewStore(db, log), nil
}

func (s *Store) Close() error { return s.db.Close() }

func currentKey(id uuid.UUID) []byte {
	return []byte(sessionCurrentPrefix + id.String())
}

func histKey(rec domain.SessionRecord) []byte {
	return []byte(fmt.Sprintf("%s%s:%010d", sessionHistPrefix, rec.ID, rec.Version))
}

func messageKey(prefix string, m domain.MessageRecord) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s", prefix, m.SessionID, m.CreatedAt.UnixNano(), m.ID))
}

// PutSession records a session version as current and appends it to the
// version history in one transaction.
func (s *Store) PutSession(rec domain.SessionRecord) error {
	data, err := codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", errors.ErrCommitFailed, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(currentKey(rec.ID), data); err != nil {
			return err
		}
		return txn.Set(histKey(rec), data)
	})
}

// CurrentSession returns the single unretired version for id.
func (s *Store) CurrentSession(id uuid.UUID) (domain.SessionRecord, error) {
	var rec domain.SessionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(currentKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return codec.Unmarshal(val, &rec)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.SessionRecord{}, fmt.Errorf("%w: session %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

// RetireSession drops the current version pointer; history is untouched.
// A non-nil successor is written as the new current version in the same
// transaction, so no reader ever observes the session without a current
// version mid-update.
func (s *Store) RetireSession(id uuid.UUID, successor *domain.SessionRecord) (domain.SessionRecord, error) {
	var retired domain.SessionRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(currentKey(id))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return codec.Unmarshal(val, &retired)
		}); err != nil {
			return err
		}
		if successor == nil {
			return txn.Delete(currentKey(id))
		}
		data, err := codec.Marshal(*successor)
		if err != nil {
			return fmt.Errorf("%w: encode session: %v", errors.ErrCommitFailed, err)
		}
		if err := txn.Set(currentKey(id), data); err != nil {
			return err
		}
		return txn.Set(histKey(*successor), data)
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.SessionRecord{}, fmt.Errorf("%w: session %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.SessionRecord{}, err
	}
	return retired, nil
}

// SessionIDs lists distinct session ids. Without includeClosed only ids
// with a current version are returned.
func (s *Store) SessionIDs(includeClosed bool) ([]uuid.UUID, error) {
	prefix := sessionCurrentPrefix
	if includeClosed {
		prefix = sessionHistPrefix
	}
	var ids []uuid.UUID
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			rest := strings.TrimPrefix(string(it.Item().Key()), prefix)
			// historical keys carry a :{version} suffix
			if i := strings.IndexByte(rest, ':'); i >= 0 {
				rest = rest[:i]
			}
			id, err := uuid.Parse(rest)
			if err != nil {
				return fmt.Errorf("malformed session key %q: %w", it.Item().Key(), err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Uniq(ids), nil
}

// SessionHistory returns every version ever held for id, oldest first.
func (s *Store) SessionHistory(id uuid.UUID) ([]domain.SessionRecord, error) {
	var recs []domain.SessionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return s.scanSessions(txn, sessionHistPrefix+id.String()+":", &recs)
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *Store) scanSessions(txn *badger.Txn, prefix string, out *[]domain.SessionRecord) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		var rec domain.SessionRecord
		if err := it.Item().Value(func(val []byte) error {
			return codec.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}
		*out = append(*out, rec)
	}
	return nil
}

// PutMessage persists one message copy as active.
func (s *Store) PutMessage(m domain.MessageRecord) error {
	data, err := codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: encode message: %v", errors.ErrCommitFailed, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(messageKey(msgActivePrefix, m), data)
	})
}

// Messages returns this party's copies for one session, oldest first.
func (s *Store) Messages(sessionID uuid.UUID, includeRetired bool) ([]domain.MessageRecord, error) {
	var msgs []domain.MessageRecord
	err := s.db.View(func(txn *badger.Txn) error {
		if err := s.scanMessages(txn, msgActivePrefix+sessionID.String()+":", &msgs); err != nil {
			return err
		}
		if includeRetired {
			return s.scanMessages(txn, msgHistPrefix+sessionID.String()+":", &msgs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// AllMessages returns every message copy the party holds, across sessions.
func (s *Store) AllMessages(includeRetired bool) ([]domain.MessageRecord, error) {
	var msgs []domain.MessageRecord
	err := s.db.View(func(txn *badger.Txn) error {
		if err := s.scanMessages(txn, msgActivePrefix, &msgs); err != nil {
			return err
		}
		if includeRetired {
			return s.scanMessages(txn, msgHistPrefix, &msgs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Store) scanMessages(txn *badger.Txn, prefix string, out *[]domain.MessageRecord) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		var m domain.MessageRecord
		if err := it.Item().Value(func(val []byte) error {
			return codec.Unmarshal(val, &m)
		}); err != nil {
			return err
		}
		*out = append(*out, m)
	}
	return nil
}

// RetireMessages consumes every active message of the session in a single
// transaction, moving each copy to the historical key space. The current
// session version is read in the same transaction as a non-consuming
// reference, binding the retirement to a session that still exists.
func (s *Store) RetireMessages(sessionID uuid.UUID) ([]domain.MessageRecord, error) {
	var retired []domain.MessageRecord
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(currentKey(sessionID)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: session %s", errors.ErrNotFound, sessionID)
			}
			return err
		}

		prefix := []byte(msgActivePrefix + sessionID.String() + ":")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		type move struct {
			key  []byte
			data []byte
			rec  domain.MessageRecord
		}
		var moves []move
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var m domain.MessageRecord
			data, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := codec.Unmarshal(data, &m); err != nil {
				return err
			}
			moves = append(moves, move{key: item.KeyCopy(nil), data: data, rec: m})
		}
		it.Close()

		for _, mv := range moves {
			if err := txn.Delete(mv.key); err != nil {
				return err
			}
			if err := txn.Set(messageKey(msgHistPrefix, mv.rec), mv.data); err != nil {
				return err
			}
			retired = append(retired, mv.rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("retired messages", "session", sessionID, "count", len(retired))
	return retired, nil
}

// RestoreMessages moves retired copies back to the active key space in
// one transaction. Compensation for an operation that failed after it
// already retired this party's messages.
func (s *Store) RestoreMessages(msgs []domain.MessageRecord) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, m := range msgs {
			data, err := codec.Marshal(m)
			if err != nil {
				return fmt.Errorf("%w: encode message: %v", errors.ErrCommitFailed, err)
			}
			if err := txn.Delete(messageKey(msgHistPrefix, m)); err != nil {
				return err
			}
			if err := txn.Set(messageKey(msgActivePrefix, m), data); err != nil {
				return err
			}
		}
		return nil
	})
}
