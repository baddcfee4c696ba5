package services

import "errors"

// Sentinel errors surfaced by the core services. Handlers match them with
// errors.Is and translate them to HTTP statuses; none of them leaves persisted
// state partially mutated because every mutating operation runs in a single
// transaction.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrInsufficientPlayers: allocation needs at least two full teams.
	ErrInsufficientPlayers = errors.New("not enough enrolled players to form at least 2 teams")

	// ErrTeamsAlreadyAllocated guards the one-shot allocation; running it twice
	// would create a second waiting pool and break the per-event invariant.
	ErrTeamsAlreadyAllocated = errors.New("teams already allocated for this event")

	// ErrEnrollmentExists: a player can enroll in an event only once.
	ErrEnrollmentExists = errors.New("player already enrolled in this event")

	// ErrInvalidMatchState: an operation was called out of sequence in the
	// awaiting_start -> in_progress -> played state machine.
	ErrInvalidMatchState = errors.New("operation not allowed in current match state")

	// ErrTeamInactive: matches cannot be created with inactive teams.
	ErrTeamInactive = errors.New("cannot create a match with an inactive team")

	// ErrPlayerNotInMatch: an action was recorded for a player on neither side.
	ErrPlayerNotInMatch = errors.New("player does not belong to either team of this match")

	// ErrWaitingTeamNotConfigured is a data-integrity gap: every allocated
	// event must have exactly one waiting pool. Never silently recovered.
	ErrWaitingTeamNotConfigured = errors.New("waiting pool not configured for this event")

	// ErrNoCountersToRemove: removal was requested with nothing to decrement.
	ErrNoCountersToRemove = errors.New("no recorded actions of this kind to remove")
)
