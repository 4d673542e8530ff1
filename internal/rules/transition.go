package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// Movement emits the per-half-move constraints: the mover must belong
// to the player to move, normal moves and drops are gated separately,
// and the frame condition is baked into the next-state schema via an
// if/else per piece role (mover, captured, uninvolved).
func Movement(e *smt.Encoder, s *symbolic.State) []smt.BoolExpr {
	var cs []smt.BoolExpr
	for t := 0; t < s.Horizon; t++ {
		currentPlayer := int(board.PlayerAt(t))
		cs = append(cs, playerOwnership(e, s, t, currentPlayer)...)
		cs = append(cs, moveTypeConstraints(e, s, t, currentPlayer)...)
		cs = append(cs, moveEffects(e, s, t, currentPlayer)...)
		cs = append(cs, captureLogic(e, s, t, currentPlayer)...)
	}
	return cs
}

// playerOwnership: the moving piece must belong to the player to move.
func playerOwnership(e *smt.Encoder, s *symbolic.State, t, currentPlayer int) []smt.BoolExpr {
	mv := s.Moves[t]
	var cs []smt.BoolExpr
	for p := 0; p < board.NPieces; p++ {
		cs = append(cs, e.Implies(mv.PieceID.Eq(e.Int(p)), s.Owner[t][p].Eq(e.Int(currentPlayer))))
	}
	return cs
}

// squareEmptyOrOpponent: every non-captured piece occupying (row,col)
// must belong to the opponent — used to gate normal-move destinations
// against capturing one's own piece (drops use squareEmpty instead).
func squareEmptyOrOpponent(e *smt.Encoder, s *symbolic.State, t int, row, col smt.IntExpr, currentPlayer int) smt.BoolExpr {
	var conds []smt.BoolExpr
	for p := 0; p < board.NPieces; p++ {
		occupiedByP := e.And(e.Not(s.Captured[t][p]), s.Row[t][p].Eq(row), s.Col[t][p].Eq(col))
		conds = append(conds, e.Implies(occupiedByP, s.Owner[t][p].NE(e.Int(currentPlayer))))
	}
	return e.And(conds...)
}

// squareEmpty: no non-captured piece, of either player, occupies
// (row,col) — drops are forbidden onto any occupied square, even an
// opponent's.
func squareEmpty(e *smt.Encoder, s *symbolic.State, t int, row, col smt.IntExpr) smt.BoolExpr {
	var conds []smt.BoolExpr
	for p := 0; p < board.NPieces; p++ {
		conds = append(conds, e.Implies(e.Not(s.Captured[t][p]), e.Or(s.Row[t][p].NE(row), s.Col[t][p].NE(col))))
	}
	return e.And(conds...)
}

// moveTypeConstraints handles regular moves vs drops.
func moveTypeConstraints(e *smt.Encoder, s *symbolic.State, t, currentPlayer int) []smt.BoolExpr {
	mv := s.Moves[t]
	var cs []smt.BoolExpr
	for p := 0; p < board.NPieces; p++ {
		dropConstraints := e.And(
			s.Captured[t][p],
			s.HolderOf[t][p].Eq(e.Int(currentPlayer)),
			mv.FromRow.Eq(e.Int(0)),
			mv.FromCol.Eq(e.Int(0)),
			mv.Captures.Eq(e.Int(int(board.NoPieceID))),
			squareEmpty(e, s, t, mv.ToRow, mv.ToCol),
		)
		normalConstraints := e.And(
			e.Not(s.Captured[t][p]),
			mv.FromRow.Eq(s.Row[t][p]),
			mv.FromCol.Eq(s.Col[t][p]),
			validMovePattern(e, s, t, mv, p),
			squareEmptyOrOpponent(e, s, t, mv.ToRow, mv.ToCol, currentPlayer),
		)
		cs = append(cs, e.Implies(mv.PieceID.Eq(e.Int(p)), e.IfBool(mv.IsDrop, dropConstraints, normalConstraints)))
	}
	return cs
}

// moveEffects applies the next-state schema to every piece: the mover
// lands on the destination (and promotes if it is a Chick reaching
// its far rank), the captured piece (if any) changes hands and
// demotes, and every other piece is unaffected (the frame condition).
func moveEffects(e *smt.Encoder, s *symbolic.State, t, currentPlayer int) []smt.BoolExpr {
	mv := s.Moves[t]
	nextT := t + 1
	var cs []smt.BoolExpr

	for r := 0; r < board.NPieces; r++ {
		isMoving := mv.PieceID.Eq(e.Int(r))
		isCaptured := e.And(mv.Captures.Eq(e.Int(r)), e.Not(mv.IsDrop))

		samePosition := e.And(s.Row[nextT][r].Eq(s.Row[t][r]), s.Col[nextT][r].Eq(s.Col[t][r]))
		sameCaptured := s.Captured[nextT][r].Eq(s.Captured[t][r])
		samePromoted := s.Promoted[nextT][r].Eq(s.Promoted[t][r])
		sameHolder := s.HolderOf[nextT][r].Eq(s.HolderOf[t][r])
		sameOwner := s.Owner[nextT][r].Eq(s.Owner[t][r])

		reachesFarRank := e.Or(
			e.And(s.Owner[t][r].Eq(e.Int(int(board.Sente))), mv.ToRow.Eq(e.Int(board.Sente.FarRank()))),
			e.And(s.Owner[t][r].Eq(e.Int(int(board.Gote))), mv.ToRow.Eq(e.Int(board.Gote.FarRank()))),
		)
		becomesPromoted := e.And(s.PieceType[r].Eq(e.Int(int(board.Chick))), reachesFarRank)
		promotionEffect := e.IfBool(becomesPromoted, s.Promoted[nextT][r].Eq(e.Bool(true)), samePromoted)

		movingBranch := e.And(
			s.Row[nextT][r].Eq(mv.ToRow),
			s.Col[nextT][r].Eq(mv.ToCol),
			s.Captured[nextT][r].Eq(e.Bool(false)),
			s.HolderOf[nextT][r].Eq(e.Int(board.HandNone)),
			sameOwner,
			promotionEffect,
		)

		capturedBranch := e.And(
			s.Captured[nextT][r].Eq(e.Bool(true)),
			s.HolderOf[nextT][r].Eq(e.Int(currentPlayer)),
			s.Promoted[nextT][r].Eq(e.Bool(false)),
			s.Owner[nextT][r].Eq(e.Int(currentPlayer)),
			samePosition,
		)

		uninvolvedBranch := e.And(samePosition, sameCaptured, samePromoted, sameHolder, sameOwner)

		cs = append(cs, e.IfBool(isMoving, movingBranch, e.IfBool(isCaptured, capturedBranch, uninvolvedBranch)))
	}

	return cs
}

// captureLogic resolves the captures variable: the id of the unique
// opposing, non-captured piece sitting on the destination square, or
// -1 if none. Capturing one's own piece never satisfies the equality,
// so it is never legal.
func captureLogic(e *smt.Encoder, s *symbolic.State, t, currentPlayer int) []smt.BoolExpr {
	mv := s.Moves[t]
	var cs []smt.BoolExpr

	for p := 0; p < board.NPieces; p++ {
		isCandidate := e.And(
			e.Not(s.Captured[t][p]),
			mv.PieceID.NE(e.Int(p)),
			s.Row[t][p].Eq(mv.ToRow),
			s.Col[t][p].Eq(mv.ToCol),
			s.Owner[t][p].NE(e.Int(currentPlayer)),
		)
		cs = append(cs, e.Implies(isCandidate, mv.Captures.Eq(e.Int(p))))
	}

	var noneCandidate []smt.BoolExpr
	for p := 0; p < board.NPieces; p++ {
		noneCandidate = append(noneCandidate, e.Or(
			s.Captured[t][p],
			mv.PieceID.Eq(e.Int(p)),
			s.Row[t][p].NE(mv.ToRow),
			s.Col[t][p].NE(mv.ToCol),
			s.Owner[t][p].Eq(e.Int(currentPlayer)),
		))
	}
	cs = append(cs, e.Implies(e.And(noneCandidate...), mv.Captures.Eq(e.Int(int(board.NoPieceID)))))

	return cs
}
