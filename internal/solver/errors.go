package solver

import "errors"

// The sentinel error kinds a driver call can return. Unsatisfiability
// is deliberately not among them: a "no solution" result is a
// negative answer, not a bug, so every driver returns (nil, nil) for
// it rather than wrapping one of these sentinels.
var (
	// ErrInvalidHorizon: N < 0. Rejected before any allocation.
	ErrInvalidHorizon = errors.New("solver: horizon must be non-negative")

	// ErrParityMismatch (checkmate only): the designated winner
	// cannot make the horizon's final move. Rejected before encoding.
	ErrParityMismatch = errors.New("solver: winning player cannot make the final half-move at this horizon")

	// ErrMissingPiece (reachability only): the target piece id is
	// absent from the initial-piece list. Rejected before encoding.
	ErrMissingPiece = errors.New("solver: target piece id not present in initial setup")

	// ErrIncompleteRoster: fewer than 8 initial-piece descriptors were
	// supplied while Config.RequireFullRoster is set.
	ErrIncompleteRoster = errors.New("solver: initial-piece list must describe all 8 pieces")

	// ErrDuplicatePieceID: the same piece id appears twice in the
	// initial-piece list.
	ErrDuplicatePieceID = errors.New("solver: duplicate piece id in initial setup")

	// ErrBackendFailure: the SMT backend reported something other
	// than sat/unsat (timeout, internal error). Propagated
	// untranslated in severity; the core does not retry.
	ErrBackendFailure = errors.New("solver: smt backend failure")
)
