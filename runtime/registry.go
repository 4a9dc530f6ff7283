// Package runtime hosts the per-node observer registry and the workers
// that drive local event fanout.
package runtime

import (
	"sync"

	"chat-ledger/contract"

	"github.com/google/uuid"
)

type set map[string]struct{}

// Registry tracks which local observers want events for which sessions.
// Observers are per node; the registry never crosses the network.
type Registry struct {
	mu             sync.RWMutex
	observers      map[string]contract.EventSink // observer id -> sink
	sessionMembers map[uuid.UUID]set             // session id -> observer ids
	global         set                           // observers receiving every event
}

func NewRegistry() *Registry {
	return &Registry{
		observers:      make(map[string]contract.EventSink),
		sessionMembers: make(map[uuid.UUID]set),
		global:         make(set),
	}
}

// GetSinksForSession resolves the sinks to notify for one session: the
// session's subscribers plus every global observer. Returns nil when
// nobody listens.
func (r *Registry) GetSinksForSession(sessionID uuid.UUID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(set)
	var sinks []contract.EventSink
	appendSink := func(observerID string) {
		if _, dup := seen[observerID]; dup {
			return
		}
		if sink, ok := r.observers[observerID]; ok {
			seen[observerID] = struct{}{}
			sinks = append(sinks, sink)
		}
	}
	for observerID := range r.sessionMembers[sessionID] {
		appendSink(observerID)
	}
	for observerID := range r.global {
		appendSink(observerID)
	}
	return sinks
}

// Subscribe registers an observer's sink and attaches it to a session.
func (r *Registry) Subscribe(observerID string, sessionID uuid.UUID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observers[observerID] = sink
	if _, ok := r.sessionMembers[sessionID]; !ok {
		r.sessionMembers[sessionID] = make(set)
	}
	r.sessionMembers[sessionID][observerID] = struct{}{}
}

// SubscribeAll registers an observer for every session, current and future.
func (r *Registry) SubscribeAll(observerID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observers[observerID] = sink
	r.global[observerID] = struct{}{}
}

// Unsubscribe detaches an observer from one session and drops its sink
// when no subscription remains. Empty member sets are removed so closed
// sessions do not leak registry entries.
func (r *Registry) Unsubscribe(observerID string, sessionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.sessionMembers[sessionID]; ok {
		delete(members, observerID)
		if len(members) == 0 {
			delete(r.sessionMembers, sessionID)
		}
	}
	if _, ok := r.global[observerID]; ok {
		return
	}
	for _, members := range r.sessionMembers {
		if _, ok := members[observerID]; ok {
			return
		}
	}
	delete(r.observers, observerID)
}
