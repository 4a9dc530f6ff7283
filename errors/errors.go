package errors

import "fmt"

var (
	// ErrValidation covers invariant violations: empty receivers, the admin
	// listed as a receiver, or a mutation against a non-active session.
	ErrValidation = fmt.Errorf("validation failed")

	// ErrAuthorization is returned when the caller is not the admin or
	// participant the operation requires.
	ErrAuthorization = fmt.Errorf("authorization failed")

	// ErrNotFound means no current record exists locally for the given id.
	// This can be a stale view if another party just closed the session.
	ErrNotFound = fmt.Errorf("record not found")

	// ErrConflict means the notary rejected the transition because a
	// concurrent transition consumed the same current version. Retryable
	// after re-reading current state.
	ErrConflict = fmt.Errorf("transition conflict")

	// ErrPeerTimeout means a stakeholder did not answer within the bound.
	ErrPeerTimeout = fmt.Errorf("peer unresponsive")

	// ErrCommitFailed is a substrate failure that is not a conflict, for
	// example a malformed proposal. Not retried automatically.
	ErrCommitFailed = fmt.Errorf("commit failed")

	// ErrNoMessages is returned by the strict retire-all policy when a
	// session holds no unretired messages.
	ErrNoMessages = fmt.Errorf("no messages held for session")

	ErrUnknownParty   = fmt.Errorf("party not registered on network")
	ErrUnknownEvent   = fmt.Errorf("unhandled event kind")
	ErrInvalidPayload = fmt.Errorf("invalid payload type")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
)
