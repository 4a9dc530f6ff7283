package memory

import (
	"fmt"
	"sync"

	"chat-ledger/contract"
	"chat-ledger/errors"

	"github.com/google/uuid"
)

// notary is the uniqueness authority: it tracks every session version ever
// issued and which of them have been consumed. Two transitions consuming
// the same version can never both commit.
type notary struct {
	mu       sync.Mutex
	known    map[uuid.UUID]bool // version id -> issued
	consumed map[uuid.UUID]bool // version id -> consumed by a committed transition
}

func newNotary() *notary {
	return &notary{
		known:    make(map[uuid.UUID]bool),
		consumed: make(map[uuid.UUID]bool),
	}
}

// register records a freshly issued session version.
func (n *notary) register(versionID uuid.UUID) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.known[versionID] = true
}

// commit atomically consumes the transition's input version and registers
// its output. An unknown input is a malformed proposal; an already
// consumed input is a conflict the caller may retry after re-reading.
func (n *notary) commit(t contract.Transition) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.known[t.InputVersionID] {
		return fmt.Errorf("%w: unknown input version %s", errors.ErrCommitFailed, t.InputVersionID)
	}
	if n.consumed[t.InputVersionID] {
		return fmt.Errorf("%w: version %s already consumed", errors.ErrConflict, t.InputVersionID)
	}
	n.consumed[t.InputVersionID] = true
	if t.Output != nil {
		n.known[t.Output.VersionID] = true
	}
	return nil
}
