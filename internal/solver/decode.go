package solver

import (
	"fmt"

	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// decodeMoves reads the first n move slots out of a satisfying model
// and turns them into a move sequence, consulting each move's piece
// kind as of the half-move's own time layer (promotion mid-sequence
// changes which kind made a later move).
func decodeMoves(m *smt.Model, s *symbolic.State, n int) ([]board.MoveRecord, error) {
	moves := make([]board.MoveRecord, 0, n)
	for t := 0; t < n; t++ {
		mv := s.Moves[t]

		pieceID, err := m.EvalInt(mv.PieceID)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		isDrop, err := m.EvalBool(mv.IsDrop)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		fromRow, err := m.EvalInt(mv.FromRow)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		fromCol, err := m.EvalInt(mv.FromCol)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		toRow, err := m.EvalInt(mv.ToRow)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		toCol, err := m.EvalInt(mv.ToCol)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}
		captures, err := m.EvalInt(mv.Captures)
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}

		kindAtT, err := effectiveKindAt(m, s, t, int(pieceID))
		if err != nil {
			return nil, fmt.Errorf("solver: decoding move %d: %w", t, err)
		}

		capturedID := board.NoPieceID
		if captures >= 0 {
			capturedID = board.PieceID(captures)
		}

		moves = append(moves, board.MoveRecord{
			MoveNumber: t,
			Player:     board.PlayerAt(t),
			PieceID:    board.PieceID(pieceID),
			IsDrop:     isDrop,
			From:       board.Position{Row: int(fromRow), Col: int(fromCol)},
			To:         board.Position{Row: int(toRow), Col: int(toCol)},
			Captures:   capturedID,
			Kind:       kindAtT,
		})
	}
	return moves, nil
}

// effectiveKindAt reads a piece's static kind and, if it is a Chick,
// whether it has already promoted as of time t, reporting Hen instead
// when it has.
func effectiveKindAt(m *smt.Model, s *symbolic.State, t, pieceID int) (board.PieceKind, error) {
	kindVal, err := m.EvalInt(s.PieceType[pieceID])
	if err != nil {
		return 0, err
	}
	kind := board.PieceKind(kindVal)
	if kind != board.Chick {
		return kind, nil
	}
	promoted, err := m.EvalBool(s.Promoted[t][pieceID])
	if err != nil {
		return 0, err
	}
	if promoted {
		return board.Hen, nil
	}
	return board.Chick, nil
}
