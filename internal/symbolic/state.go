// Package symbolic is the symbolic state allocator: it materializes
// one SMT variable per dynamic cell of the state grid and per
// move-slot field, and emits the domain-restriction constraints that
// keep every field within its declared range. It knows nothing about
// Dōbutsu Shōgi's rules — that is internal/rules's job — only about
// the shape of the state space.
package symbolic

import (
	"fmt"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
)

// MoveVars are the per-half-move SMT variables of a move-slot, before
// any model has been decoded into a concrete board.MoveRecord.
type MoveVars struct {
	PieceID  smt.IntExpr
	FromRow  smt.IntExpr
	FromCol  smt.IntExpr
	ToRow    smt.IntExpr
	ToCol    smt.IntExpr
	IsDrop   smt.BoolExpr
	Captures smt.IntExpr
}

// State is the (time, piece)-indexed variable grid plus the N move
// slots, for one driver call's horizon.
type State struct {
	Enc     *smt.Encoder
	Horizon int // N

	// Static, time-independent piece attribute.
	PieceType [board.NPieces]smt.IntExpr

	// Dynamic, per-(time, piece) attributes. Indexed [t][pieceID],
	// t in 0..Horizon inclusive.
	Owner     [][]smt.IntExpr
	Row       [][]smt.IntExpr
	Col       [][]smt.IntExpr
	Captured  [][]smt.BoolExpr
	Promoted  [][]smt.BoolExpr
	HolderOf  [][]smt.IntExpr // holder ∈ {-1, 0, 1}

	// Per-half-move move-slot variables, indexed [t], t in 0..Horizon-1.
	Moves []MoveVars
}

// New allocates every variable for a horizon of N half-moves: N+1
// state layers (t=0..N) and N move slots (t=0..N-1).
func New(enc *smt.Encoder, horizon int) *State {
	s := &State{Enc: enc, Horizon: horizon}

	for p := 0; p < board.NPieces; p++ {
		s.PieceType[p] = enc.IntVar(fmt.Sprintf("piece_%d_type", p))
	}

	layers := horizon + 1
	s.Owner = make([][]smt.IntExpr, layers)
	s.Row = make([][]smt.IntExpr, layers)
	s.Col = make([][]smt.IntExpr, layers)
	s.Captured = make([][]smt.BoolExpr, layers)
	s.Promoted = make([][]smt.BoolExpr, layers)
	s.HolderOf = make([][]smt.IntExpr, layers)

	for t := 0; t < layers; t++ {
		s.Owner[t] = make([]smt.IntExpr, board.NPieces)
		s.Row[t] = make([]smt.IntExpr, board.NPieces)
		s.Col[t] = make([]smt.IntExpr, board.NPieces)
		s.Captured[t] = make([]smt.BoolExpr, board.NPieces)
		s.Promoted[t] = make([]smt.BoolExpr, board.NPieces)
		s.HolderOf[t] = make([]smt.IntExpr, board.NPieces)
		for p := 0; p < board.NPieces; p++ {
			s.Owner[t][p] = enc.IntVar(fmt.Sprintf("piece_%d_owner_t%d", p, t))
			s.Row[t][p] = enc.IntVar(fmt.Sprintf("piece_%d_row_t%d", p, t))
			s.Col[t][p] = enc.IntVar(fmt.Sprintf("piece_%d_col_t%d", p, t))
			s.Captured[t][p] = enc.BoolVar(fmt.Sprintf("piece_%d_captured_t%d", p, t))
			s.Promoted[t][p] = enc.BoolVar(fmt.Sprintf("piece_%d_promoted_t%d", p, t))
			s.HolderOf[t][p] = enc.IntVar(fmt.Sprintf("piece_%d_holder_t%d", p, t))
		}
	}

	s.Moves = make([]MoveVars, horizon)
	for t := 0; t < horizon; t++ {
		s.Moves[t] = MoveVars{
			PieceID:  enc.IntVar(fmt.Sprintf("move_%d_piece", t)),
			FromRow:  enc.IntVar(fmt.Sprintf("move_%d_from_row", t)),
			FromCol:  enc.IntVar(fmt.Sprintf("move_%d_from_col", t)),
			ToRow:    enc.IntVar(fmt.Sprintf("move_%d_to_row", t)),
			ToCol:    enc.IntVar(fmt.Sprintf("move_%d_to_col", t)),
			IsDrop:   enc.BoolVar(fmt.Sprintf("move_%d_is_drop", t)),
			Captures: enc.IntVar(fmt.Sprintf("move_%d_captures", t)),
		}
	}

	return s
}

// DomainConstraints restricts every allocated field to its declared
// range: piece kinds, owners, board coordinates, hand-holder values,
// and move-slot fields.
func (s *State) DomainConstraints() []smt.BoolExpr {
	e := s.Enc
	var cs []smt.BoolExpr

	for p := 0; p < board.NPieces; p++ {
		cs = append(cs,
			s.PieceType[p].GE(e.Int(board.MinKindValue())),
			s.PieceType[p].LE(e.Int(board.MaxKindValue())),
		)
	}

	for t := 0; t <= s.Horizon; t++ {
		for p := 0; p < board.NPieces; p++ {
			cs = append(cs,
				s.Owner[t][p].GE(e.Int(0)), s.Owner[t][p].LE(e.Int(1)),
				s.Row[t][p].GE(e.Int(1)), s.Row[t][p].LE(e.Int(board.Rows)),
				s.Col[t][p].GE(e.Int(1)), s.Col[t][p].LE(e.Int(board.Cols)),
				s.HolderOf[t][p].GE(e.Int(-1)), s.HolderOf[t][p].LE(e.Int(1)),
			)
		}
	}

	for t := 0; t < s.Horizon; t++ {
		mv := s.Moves[t]
		cs = append(cs,
			mv.PieceID.GE(e.Int(0)), mv.PieceID.LT(e.Int(board.NPieces)),
			mv.FromRow.GE(e.Int(0)), mv.FromRow.LE(e.Int(board.Rows)),
			mv.FromCol.GE(e.Int(0)), mv.FromCol.LE(e.Int(board.Cols)),
			mv.ToRow.GE(e.Int(1)), mv.ToRow.LE(e.Int(board.Rows)),
			mv.ToCol.GE(e.Int(1)), mv.ToCol.LE(e.Int(board.Cols)),
			mv.Captures.GE(e.Int(-1)), mv.Captures.LT(e.Int(board.NPieces)),
		)
	}

	return cs
}
