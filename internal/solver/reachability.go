package solver

import (
	"fmt"
	"log"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/memo"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// ReachabilityProblem asks whether some sequence of at most Horizon
// half-moves from Initial lands PieceID, under ownership Owner, on
// Target, not captured at that time. Captures of the piece earlier in
// the sequence are not excluded.
type ReachabilityProblem struct {
	Initial []board.InitialPiece
	PieceID board.PieceID
	Owner   board.Player
	Target  board.Position
	Horizon int
}

// ReachabilitySolution is a witness: the shortest prefix of moves (of
// at most Horizon half-moves) after which the target piece sits on
// Target.
type ReachabilitySolution struct {
	Moves   []board.MoveRecord
	PieceID board.PieceID
	Reached board.Position
	AtTime  int
}

// Reachability answers one ReachabilityProblem. It returns (nil, nil)
// if no qualifying sequence exists within the horizon.
func (f *Facade) Reachability(p ReachabilityProblem) (*ReachabilitySolution, error) {
	if p.Horizon < 0 {
		return nil, ErrInvalidHorizon
	}
	if err := validateRoster(p.Initial, f.cfg.RequireFullRoster); err != nil {
		return nil, err
	}
	if !containsPieceID(p.Initial, p.PieceID) {
		return nil, fmt.Errorf("%w: piece %d", ErrMissingPiece, p.PieceID)
	}

	log.Printf("[solver] reachability piece=%d owner=%v target=%v horizon=%d", p.PieceID, p.Owner, p.Target, p.Horizon)

	key := reachabilityKey(p)
	if f.cache != nil {
		if moves, solved, found, err := f.cache.Lookup(key); err == nil && found {
			if !solved {
				return nil, nil
			}
			return &ReachabilitySolution{
				Moves:   moves,
				PieceID: p.PieceID,
				Reached: p.Target,
				AtTime:  len(moves),
			}, nil
		}
	}

	enc, st := newFormula(p.Initial, p.Horizon)
	defer enc.Close()

	var disjuncts []smt.BoolExpr
	for t := 0; t <= p.Horizon; t++ {
		disjuncts = append(disjuncts, enc.And(
			st.Row[t][p.PieceID].Eq(enc.Int(p.Target.Row)),
			st.Col[t][p.PieceID].Eq(enc.Int(p.Target.Col)),
			st.Owner[t][p.PieceID].Eq(enc.Int(int(p.Owner))),
			enc.Not(st.Captured[t][p.PieceID]),
		))
	}
	enc.Assert(enc.Or(disjuncts...))

	result, model, err := enc.Check()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	switch result {
	case smt.Unknown:
		return nil, fmt.Errorf("%w: backend returned unknown", ErrBackendFailure)
	case smt.Unsat:
		log.Printf("[solver] reachability piece=%d horizon=%d: unsatisfiable", p.PieceID, p.Horizon)
		if f.cache != nil {
			_ = f.cache.Store(key, false, nil)
		}
		return nil, nil
	}

	reachedAt, err := earliestReachedTime(model, st, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}
	moves, err := decodeMoves(model, st, reachedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendFailure, err)
	}

	if f.cache != nil {
		_ = f.cache.Store(key, true, moves)
	}

	return &ReachabilitySolution{
		Moves:   moves,
		PieceID: p.PieceID,
		Reached: p.Target,
		AtTime:  reachedAt,
	}, nil
}

// earliestReachedTime scans the witnessing model for the first time
// layer at which the target piece satisfies the reachability
// condition, so the returned move sequence is exactly as long as
// needed rather than padded out to the full horizon.
func earliestReachedTime(m *smt.Model, st *symbolic.State, p ReachabilityProblem) (int, error) {
	for t := 0; t <= st.Horizon; t++ {
		row, err := m.EvalInt(st.Row[t][p.PieceID])
		if err != nil {
			return 0, err
		}
		col, err := m.EvalInt(st.Col[t][p.PieceID])
		if err != nil {
			return 0, err
		}
		owner, err := m.EvalInt(st.Owner[t][p.PieceID])
		if err != nil {
			return 0, err
		}
		captured, err := m.EvalBool(st.Captured[t][p.PieceID])
		if err != nil {
			return 0, err
		}
		if int(row) == p.Target.Row && int(col) == p.Target.Col && int(owner) == int(p.Owner) && !captured {
			return t, nil
		}
	}
	return st.Horizon, nil
}

// ShortestPath finds the minimal horizon, from 0 up to maxHorizon
// inclusive, at which PieceID can reach Target, by calling
// Reachability with increasing horizons and stopping at the first
// success. It returns (nil, nil) if no horizon up to maxHorizon
// succeeds.
func (f *Facade) ShortestPath(initial []board.InitialPiece, pieceID board.PieceID, owner board.Player, target board.Position, maxHorizon int) (*ReachabilitySolution, error) {
	for n := 0; n <= maxHorizon; n++ {
		sol, err := f.Reachability(ReachabilityProblem{
			Initial: initial,
			PieceID: pieceID,
			Owner:   owner,
			Target:  target,
			Horizon: n,
		})
		if err != nil {
			return nil, err
		}
		if sol != nil {
			return sol, nil
		}
	}
	return nil, nil
}

func reachabilityKey(p ReachabilityProblem) memo.Key {
	return memo.Key{
		PositionHash: board.HashInitialSetup(p.Initial),
		Class:        "reachability",
		Horizon:      p.Horizon,
		Extra:        fmt.Sprintf("piece=%d,owner=%d,target=(%d,%d)", p.PieceID, p.Owner, p.Target.Row, p.Target.Col),
	}
}
