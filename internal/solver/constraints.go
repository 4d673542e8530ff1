package solver

import (
	"fmt"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/memo"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// Predicate builds an additional boolean constraint against a
// problem's symbolic state, letting a caller express Tsume-style
// goals ("the opponent's Lion is captured by move 3 and never
// escapes check before then") that don't fit the fixed shapes of
// Reachability or Checkmate.
type Predicate func(e *smt.Encoder, s *symbolic.State) smt.BoolExpr

// ConstraintProblem asks whether Initial, run for exactly Horizon
// half-moves under the movement schema, can satisfy every predicate
// in Extras simultaneously. Label identifies the predicate set for
// memoization purposes; it is never interpreted, only compared, so
// two structurally different predicate sets sharing a Label will
// silently share a cache entry. Leave Label empty to disable caching
// for this call.
type ConstraintProblem struct {
	Initial []board.InitialPiece
	Horizon int
	Extras  []Predicate
	Label   string
}

// ConstraintSolution is a witness satisfying every predicate.
type ConstraintSolution struct {
	Moves []board.MoveRecord
}

// ConstraintSatisfaction answers one ConstraintProblem. It returns
// (nil, nil) if no qualifying sequence exists at this horizon.
func (f *Facade) ConstraintSatisfaction(p ConstraintProblem) (*ConstraintSolution, error) {
	if p.Horizon < 0 {
		return nil, ErrInvalidHorizon
	}
	if err := validateRoster(p.Initial, f.cfg.RequireFullRoster); err != nil {
		return nil, err
	}

	cacheable := f.cache != nil && p.Label != ""
	var key memo.Key
	if cacheable {
		key = constraintKey(p)
		if moves, solved, found, err := f.cache.Lookup(key); err == nil && found {
			if !solved {
				return nil, nil
			}
			return &ConstraintSolution{Moves: moves}, nil
		}
	}

	enc, st := newFormula(p.Initial, p.Horizon)
	defer enc.Close()

	for _, extra := range p.Extras {
		enc.Assert(extra(enc, st))
	}

	result, model, err := enc.Check()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	switch result {
	case smt.Unknown:
		return nil, fmt.Errorf("%w: backend returned unknown", ErrBackendFailure)
	case smt.Unsat:
		if cacheable {
			_ = f.cache.Store(key, false, nil)
		}
		return nil, nil
	}

	moves, err := decodeMoves(model, st, p.Horizon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}

	if cacheable {
		_ = f.cache.Store(key, true, moves)
	}

	return &ConstraintSolution{Moves: moves}, nil
}

func constraintKey(p ConstraintProblem) memo.Key {
	return memo.Key{
		PositionHash: board.HashInitialSetup(p.Initial),
		Class:        "constraint",
		Horizon:      p.Horizon,
		Extra:        p.Label,
	}
}
