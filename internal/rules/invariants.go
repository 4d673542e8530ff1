package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// Basic emits the time-invariant constraints that don't depend on a
// move slot: no two on-board pieces share a square, a piece is
// captured exactly when it has a hand holder, and promotion is
// confined to Chicks. The frame condition (unmoved, uncaptured pieces
// keep their attributes) is not emitted here — it is baked into the
// transition constraint in transition.go.
func Basic(e *smt.Encoder, s *symbolic.State) []smt.BoolExpr {
	var cs []smt.BoolExpr
	cs = append(cs, noOverlap(e, s)...)
	cs = append(cs, handCaptured(e, s)...)
	cs = append(cs, promotionConfined(e, s)...)
	return cs
}

// noOverlap: any two non-captured pieces occupy distinct squares.
func noOverlap(e *smt.Encoder, s *symbolic.State) []smt.BoolExpr {
	var cs []smt.BoolExpr
	for t := 0; t <= s.Horizon; t++ {
		for p1 := 0; p1 < board.NPieces; p1++ {
			for p2 := p1 + 1; p2 < board.NPieces; p2++ {
				cs = append(cs, e.Implies(
					e.And(e.Not(s.Captured[t][p1]), e.Not(s.Captured[t][p2])),
					e.Or(s.Row[t][p1].NE(s.Row[t][p2]), s.Col[t][p1].NE(s.Col[t][p2])),
				))
			}
		}
	}
	return cs
}

// handCaptured: captured iff holder >= 0.
func handCaptured(e *smt.Encoder, s *symbolic.State) []smt.BoolExpr {
	var cs []smt.BoolExpr
	for t := 0; t <= s.Horizon; t++ {
		for p := 0; p < board.NPieces; p++ {
			cs = append(cs, s.Captured[t][p].Eq(s.HolderOf[t][p].GE(e.Int(0))))
		}
	}
	return cs
}

// promotionConfined: promoted implies kind = Chick.
func promotionConfined(e *smt.Encoder, s *symbolic.State) []smt.BoolExpr {
	var cs []smt.BoolExpr
	for t := 0; t <= s.Horizon; t++ {
		for p := 0; p < board.NPieces; p++ {
			cs = append(cs, e.Implies(s.Promoted[t][p], s.PieceType[p].Eq(e.Int(int(board.Chick)))))
		}
	}
	return cs
}
