package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// effectiveKind resolves the piece's effective kind for movement
// purposes: a promoted Chick moves as a Hen, every other piece moves
// as its own kind.
func effectiveKind(e *smt.Encoder, s *symbolic.State, t, pieceID int) smt.IntExpr {
	return e.IfInt(s.Promoted[t][pieceID], e.Int(int(board.Hen)), s.PieceType[pieceID])
}

// forwardDelta returns the forward row delta (+1 for Sente, -1 for
// Gote) as a symbolic expression keyed off the piece's owner at t
// rather than a static player constant.
func forwardDelta(e *smt.Encoder, ownerAtT smt.IntExpr) smt.IntExpr {
	return e.IfInt(ownerAtT.Eq(e.Int(int(board.Sente))), e.Int(board.Sente.Forward()), e.Int(board.Gote.Forward()))
}

// validMovePattern is the per-kind geometry disjunction, gated on the
// piece's effective kind, evaluated for the delta (toRow-fromRow,
// toCol-fromCol) of a single move slot. One step only in all cases.
func validMovePattern(e *smt.Encoder, s *symbolic.State, t int, mv symbolic.MoveVars, pieceID int) smt.BoolExpr {
	dRow := mv.ToRow.Sub(mv.FromRow)
	dCol := mv.ToCol.Sub(mv.FromCol)
	kind := effectiveKind(e, s, t, pieceID)
	forward := forwardDelta(e, s.Owner[t][pieceID])

	notBothZero := e.Or(dRow.NE(e.Int(0)), dCol.NE(e.Int(0)))

	lionOK := e.And(e.Abs(dRow).LE(e.Int(1)), e.Abs(dCol).LE(e.Int(1)), notBothZero)

	orthogonalStep := e.Or(
		e.And(dRow.Eq(e.Int(0)), e.Or(dCol.Eq(e.Int(1)), dCol.Eq(e.Int(-1)))),
		e.And(dCol.Eq(e.Int(0)), e.Or(dRow.Eq(e.Int(1)), dRow.Eq(e.Int(-1)))),
	)

	elephantOK := e.And(e.Abs(dRow).Eq(e.Int(1)), e.Abs(dCol).Eq(e.Int(1)))

	chickOK := e.And(dRow.Eq(forward), dCol.Eq(e.Int(0)))

	henForwardDiagonal := e.And(dRow.Eq(forward), e.Or(dCol.Eq(e.Int(1)), dCol.Eq(e.Int(-1))))
	henOK := e.Or(orthogonalStep, henForwardDiagonal)

	return e.And(
		e.Implies(kind.Eq(e.Int(int(board.Lion))), lionOK),
		e.Implies(kind.Eq(e.Int(int(board.Giraffe))), orthogonalStep),
		e.Implies(kind.Eq(e.Int(int(board.Elephant))), elephantOK),
		e.Implies(kind.Eq(e.Int(int(board.Chick))), chickOK),
		e.Implies(kind.Eq(e.Int(int(board.Hen))), henOK),
	)
}
