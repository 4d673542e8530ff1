package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// placeholderSquare is the on-board row/col pinned for a piece that
// starts in hand. The symbolic row/col variables must stay within
// their declared domain (1..Rows, 1..Cols) even for a piece with no
// real square; any fixed value works because a captured piece's
// coordinates are never consulted while it is off board.
const placeholderSquare = 1

// Initial emits the initial-position pinning constraints: for each
// descriptor, equality constraints at t=0 fixing kind, owner, row,
// col, captured=false, promoted=false, holder=-1 — or, for a
// descriptor that starts in hand, captured=true and holder=owner
// instead.
func Initial(e *smt.Encoder, s *symbolic.State, pieces []board.InitialPiece) []smt.BoolExpr {
	var cs []smt.BoolExpr

	for _, ip := range pieces {
		id := int(ip.ID)
		cs = append(cs, s.PieceType[id].Eq(e.Int(int(ip.Kind))))
		cs = append(cs, s.Owner[0][id].Eq(e.Int(int(ip.Owner))))

		if ip.InHand() {
			cs = append(cs,
				s.Row[0][id].Eq(e.Int(placeholderSquare)),
				s.Col[0][id].Eq(e.Int(placeholderSquare)),
				s.Captured[0][id].Eq(e.Bool(true)),
				s.Promoted[0][id].Eq(e.Bool(false)),
				s.HolderOf[0][id].Eq(e.Int(int(ip.Owner))),
			)
			continue
		}

		cs = append(cs,
			s.Row[0][id].Eq(e.Int(ip.Row)),
			s.Col[0][id].Eq(e.Int(ip.Col)),
			s.Captured[0][id].Eq(e.Bool(false)),
			s.Promoted[0][id].Eq(e.Bool(false)),
			s.HolderOf[0][id].Eq(e.Int(board.HandNone)),
		)
	}

	return cs
}
