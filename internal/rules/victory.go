package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// Victory emits the victory predicate for player w at time t: w has
// won iff w now holds a captured Lion (necessarily the opponent's,
// since a piece switches hands to its captor on capture), or w's own
// Lion is on-board on w's far rank. The "try" rule's check-safety
// side-condition (the mover must not simultaneously be in check) is
// deliberately not encoded.
func Victory(e *smt.Encoder, s *symbolic.State, t int, w board.Player) smt.BoolExpr {
	var conds []smt.BoolExpr

	for p := 0; p < board.NPieces; p++ {
		// A captured piece changes hands to its captor (moveEffects'
		// capturedBranch sets Owner to the mover's player), so a
		// captured Lion now owned by w is necessarily w's opponent's
		// original Lion.
		isLion := s.PieceType[p].Eq(e.Int(int(board.Lion)))
		capturedByW := e.And(isLion, s.Captured[t][p], s.Owner[t][p].Eq(e.Int(int(w))))
		conds = append(conds, capturedByW)

		onFarRank := s.Row[t][p].Eq(e.Int(w.FarRank()))
		conds = append(conds, e.And(isLion, s.Owner[t][p].Eq(e.Int(int(w))), e.Not(s.Captured[t][p]), onFarRank))
	}

	return e.Or(conds...)
}
