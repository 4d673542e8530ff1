// Package solver exposes the three problem-class entry points
// (reachability, checkmate, constraint-satisfaction) and their
// shortest-solution wrappers. It is the only package external
// collaborators — move-list renderers, command-line front ends,
// property-based test harnesses — need to import: every other
// package in this module (board aside) is encoding plumbing. Callers
// writing constraint-satisfaction Predicates also use smt and symbolic,
// since a Predicate receives an *smt.Encoder and a *symbolic.State.
package solver

import (
	"fmt"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/memo"
	"github.com/dobutsu-bmc/solver/internal/rules"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// Config governs how a Facade builds and caches problem instances.
type Config struct {
	// RequireFullRoster rejects any initial-piece list that does not
	// describe all 8 pieces. Defaults to true via DefaultConfig;
	// callers building deliberately partial scenarios (for unit tests
	// of a single piece's geometry, say) must opt out explicitly.
	RequireFullRoster bool

	// CacheDir, if non-empty, enables a BadgerDB-backed memoization
	// cache at that path. Every driver call first checks the cache
	// and, on a miss, stores its solved or unsatisfiable outcome before
	// returning; ConstraintSatisfaction calls with an empty Label
	// bypass the cache.
	CacheDir string
}

// DefaultConfig returns the recommended configuration: full-roster
// validation on, caching off.
func DefaultConfig() Config {
	return Config{RequireFullRoster: true}
}

// Facade is the entry point for solving bounded model-checking
// problems over a Dōbutsu Shōgi position. A Facade is safe for
// concurrent use; each driver call allocates its own SMT context.
type Facade struct {
	cfg   Config
	cache *memo.Cache
}

// New constructs a Facade. If cfg.CacheDir is set, it opens the
// memoization cache immediately; callers must Close the Facade when
// done.
func New(cfg Config) (*Facade, error) {
	f := &Facade{cfg: cfg}
	if cfg.CacheDir != "" {
		c, err := memo.Open(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("solver: %w", err)
		}
		f.cache = c
	}
	return f, nil
}

// Close releases the memoization cache, if one is open.
func (f *Facade) Close() error {
	if f.cache == nil {
		return nil
	}
	return f.cache.Close()
}

// validateRoster checks the initial-piece list for duplicate ids and,
// if required, full coverage of all 8 pieces.
func validateRoster(pieces []board.InitialPiece, requireFull bool) error {
	seen := make(map[board.PieceID]bool, len(pieces))
	for _, ip := range pieces {
		if seen[ip.ID] {
			return fmt.Errorf("%w: piece id %d", ErrDuplicatePieceID, ip.ID)
		}
		seen[ip.ID] = true
	}
	if requireFull && len(pieces) != board.NPieces {
		return fmt.Errorf("%w: got %d descriptors, want %d", ErrIncompleteRoster, len(pieces), board.NPieces)
	}
	return nil
}

func containsPieceID(pieces []board.InitialPiece, id board.PieceID) bool {
	for _, ip := range pieces {
		if ip.ID == id {
			return true
		}
	}
	return false
}

// newFormula allocates a fresh encoder and symbolic state and asserts
// the shared formula (domain restrictions, initial position, basic
// invariants, movement schema) for one driver call's horizon.
func newFormula(initial []board.InitialPiece, horizon int) (*smt.Encoder, *symbolic.State) {
	enc := smt.NewEncoder()
	st := symbolic.New(enc, horizon)
	rules.BuildCommon(enc, st, initial)
	return enc, st
}
