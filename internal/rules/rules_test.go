package rules

import (
	"testing"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

func buildLoneSetup(kind board.PieceKind, row, col int) []board.InitialPiece {
	return []board.InitialPiece{
		{ID: 0, Kind: kind, Owner: board.Sente, Row: row, Col: col},
		{ID: 1, Kind: board.Lion, Owner: board.Sente, Row: 1, Col: 1},
		{ID: 2, Kind: board.Lion, Owner: board.Gote, Row: board.Rows, Col: board.Cols},
		{ID: 3, Kind: board.Giraffe, Owner: board.Sente, Row: 1, Col: 2},
		{ID: 4, Kind: board.Giraffe, Owner: board.Gote, Row: board.Rows, Col: 1},
		{ID: 5, Kind: board.Elephant, Owner: board.Sente, Row: 1, Col: 3},
		{ID: 6, Kind: board.Elephant, Owner: board.Gote, Row: board.Rows, Col: 2},
		{ID: 7, Kind: board.Chick, Owner: board.Gote, Row: board.Rows - 1, Col: 2},
	}
}

func checkSat(t *testing.T, e *smt.Encoder) smt.CheckResult {
	t.Helper()
	result, _, err := e.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return result
}

func TestGiraffeCannotMoveDiagonally(t *testing.T) {
	pieces := buildLoneSetup(board.Giraffe, 2, 2)
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.ToRow.Eq(e.Int(3)))
	e.Assert(mv.ToCol.Eq(e.Int(3))) // diagonal, illegal for a Giraffe

	if got := checkSat(t, e); got != smt.Unsat {
		t.Fatalf("Giraffe diagonal move: got %v, want Unsat", got)
	}
}

func TestGiraffeOrthogonalStepIsLegal(t *testing.T) {
	pieces := buildLoneSetup(board.Giraffe, 2, 2)
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.ToRow.Eq(e.Int(3)))
	e.Assert(mv.ToCol.Eq(e.Int(2)))

	if got := checkSat(t, e); got != smt.Sat {
		t.Fatalf("Giraffe orthogonal move: got %v, want Sat", got)
	}
}

func TestLionCannotMoveTwoSquares(t *testing.T) {
	pieces := buildLoneSetup(board.Lion, 2, 2)
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.ToRow.Eq(e.Int(4)))
	e.Assert(mv.ToCol.Eq(e.Int(2)))

	if got := checkSat(t, e); got != smt.Unsat {
		t.Fatalf("Lion two-square move: got %v, want Unsat", got)
	}
}

func TestChickMovesOnlyForward(t *testing.T) {
	pieces := buildLoneSetup(board.Chick, 2, 2)
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.ToRow.Eq(e.Int(1))) // backward for Sente
	e.Assert(mv.ToCol.Eq(e.Int(2)))

	if got := checkSat(t, e); got != smt.Unsat {
		t.Fatalf("Chick backward move: got %v, want Unsat", got)
	}
}

func TestChickPromotesOnFarRankArrival(t *testing.T) {
	pieces := buildLoneSetup(board.Chick, board.Rows-1, 1)
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.ToRow.Eq(e.Int(board.Rows)))
	e.Assert(mv.ToCol.Eq(e.Int(1)))
	e.Assert(e.Not(s.Promoted[1][0]))

	if got := checkSat(t, e); got != smt.Unsat {
		t.Fatalf("Chick reaching far rank without promoting: got %v, want Unsat", got)
	}
}

func TestDropOntoOccupiedSquareForbidden(t *testing.T) {
	pieces := []board.InitialPiece{
		{ID: 0, Kind: board.Chick, Owner: board.Sente, Row: 0, Col: 0},
		{ID: 1, Kind: board.Lion, Owner: board.Sente, Row: 1, Col: 1},
		{ID: 2, Kind: board.Lion, Owner: board.Gote, Row: board.Rows, Col: board.Cols},
		{ID: 3, Kind: board.Giraffe, Owner: board.Sente, Row: 1, Col: 2},
		{ID: 4, Kind: board.Giraffe, Owner: board.Gote, Row: board.Rows, Col: 1},
		{ID: 5, Kind: board.Elephant, Owner: board.Sente, Row: 1, Col: 3},
		{ID: 6, Kind: board.Elephant, Owner: board.Gote, Row: board.Rows, Col: 2},
		{ID: 7, Kind: board.Chick, Owner: board.Gote, Row: 2, Col: 1},
	}
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0)))
	e.Assert(mv.IsDrop)
	e.Assert(mv.ToRow.Eq(e.Int(2)))
	e.Assert(mv.ToCol.Eq(e.Int(1))) // occupied by the Gote Chick

	if got := checkSat(t, e); got != smt.Unsat {
		t.Fatalf("drop onto occupied square: got %v, want Unsat", got)
	}
}

func TestVictoryByLionCapture(t *testing.T) {
	pieces := []board.InitialPiece{
		{ID: 0, Kind: board.Lion, Owner: board.Sente, Row: 2, Col: 2},
		{ID: 1, Kind: board.Lion, Owner: board.Gote, Row: 3, Col: 2},
		{ID: 2, Kind: board.Giraffe, Owner: board.Sente, Row: 1, Col: 1},
		{ID: 3, Kind: board.Giraffe, Owner: board.Gote, Row: board.Rows, Col: 1},
		{ID: 4, Kind: board.Elephant, Owner: board.Sente, Row: 1, Col: 2},
		{ID: 5, Kind: board.Elephant, Owner: board.Gote, Row: board.Rows, Col: 2},
		{ID: 6, Kind: board.Chick, Owner: board.Sente, Row: 1, Col: 3},
		{ID: 7, Kind: board.Chick, Owner: board.Gote, Row: board.Rows, Col: 3},
	}
	e := smt.NewEncoder()
	defer e.Close()
	s := symbolic.New(e, 1)
	BuildCommon(e, s, pieces)

	mv := s.Moves[0]
	e.Assert(mv.PieceID.Eq(e.Int(0))) // Sente Lion moves
	e.Assert(mv.ToRow.Eq(e.Int(3)))
	e.Assert(mv.ToCol.Eq(e.Int(2))) // onto the Gote Lion's square
	e.Assert(Victory(e, s, 1, board.Sente))

	if got := checkSat(t, e); got != smt.Sat {
		t.Fatalf("Lion-capture victory: got %v, want Sat", got)
	}
}
