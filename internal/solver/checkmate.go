package solver

import (
	"fmt"
	"log"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/memo"
	"github.com/dobutsu-bmc/solver/internal/rules"
	"github.com/dobutsu-bmc/solver/internal/smt"
)

// CheckmateProblem asks whether some play sequence gives Winner a win
// (Lion capture or far-rank arrival) in exactly Horizon half-moves, with Winner
// making the final one. This is a cooperative, bounded search — it
// asks for the existence of a winning sequence, not that every reply
// the opponent could choose loses; a full minimax solve is out of
// scope.
type CheckmateProblem struct {
	Initial []board.InitialPiece
	Winner  board.Player
	Horizon int
}

// CheckmateSolution is a winning-sequence witness: exactly Horizon
// half-moves, the last one made by Winner, after which Victory holds
// for Winner.
type CheckmateSolution struct {
	Moves  []board.MoveRecord
	Winner board.Player
}

// Checkmate answers one CheckmateProblem. It returns (nil, nil) if no
// qualifying sequence exists at exactly this horizon.
func (f *Facade) Checkmate(p CheckmateProblem) (*CheckmateSolution, error) {
	if p.Horizon < 0 {
		return nil, ErrInvalidHorizon
	}
	if err := validateRoster(p.Initial, f.cfg.RequireFullRoster); err != nil {
		return nil, err
	}
	// At horizon 0 there is no final half-move for either player to
	// have made, so the winner can never be said to have delivered
	// the winning move; reject without touching the backend.
	if p.Horizon == 0 {
		return nil, ErrParityMismatch
	}
	if board.PlayerAt(p.Horizon-1) != p.Winner {
		return nil, ErrParityMismatch
	}

	log.Printf("[solver] checkmate horizon=%d winner=%v", p.Horizon, p.Winner)

	key := checkmateKey(p)
	if f.cache != nil {
		if moves, solved, found, err := f.cache.Lookup(key); err == nil && found {
			if !solved {
				return nil, nil
			}
			return &CheckmateSolution{Moves: moves, Winner: p.Winner}, nil
		}
	}

	enc, st := newFormula(p.Initial, p.Horizon)
	defer enc.Close()

	enc.Assert(rules.Victory(enc, st, p.Horizon, p.Winner))
	// A mate in N must not also be a mate in fewer moves: the winner's
	// predicate must be false at every earlier time step, or the
	// solver could return a model that wins early and then shuffles.
	for t := 0; t < p.Horizon; t++ {
		enc.Assert(enc.Not(rules.Victory(enc, st, t, p.Winner)))
	}

	result, model, err := enc.Check()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	switch result {
	case smt.Unknown:
		return nil, fmt.Errorf("%w: backend returned unknown", ErrBackendFailure)
	case smt.Unsat:
		if f.cache != nil {
			_ = f.cache.Store(key, false, nil)
		}
		return nil, nil
	}

	moves, err := decodeMoves(model, st, p.Horizon)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}

	if f.cache != nil {
		_ = f.cache.Store(key, true, moves)
	}

	return &CheckmateSolution{Moves: moves, Winner: p.Winner}, nil
}

// ShortestMate finds the minimal horizon, from 1 up to maxHorizon
// inclusive, at which Winner has a winning sequence, by calling Checkmate
// with increasing horizons and skipping the ones parity already rules
// out. It returns (nil, nil) if no horizon up to maxHorizon succeeds.
func (f *Facade) ShortestMate(initial []board.InitialPiece, winner board.Player, maxHorizon int) (*CheckmateSolution, error) {
	for n := 1; n <= maxHorizon; n++ {
		if board.PlayerAt(n-1) != winner {
			continue
		}
		sol, err := f.Checkmate(CheckmateProblem{Initial: initial, Winner: winner, Horizon: n})
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
	}
	return nil, nil
}

func checkmateKey(p CheckmateProblem) memo.Key {
	return memo.Key{
		PositionHash: board.HashInitialSetup(p.Initial),
		Class:        "checkmate",
		Horizon:      p.Horizon,
		Extra:        fmt.Sprintf("winner=%d", p.Winner),
	}
}
