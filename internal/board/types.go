// Package board implements the Dōbutsu Shōgi domain model: the
// enumerations, piece identities, and value objects shared by the
// symbolic encoder and the solver façade. It carries no SMT-specific
// code; see internal/smt and internal/symbolic for that.
package board

import "fmt"

// Board dimensions. Rows are numbered 1..Rows, row 1 is the near
// rank of the first player (Sente), row Rows the far rank.
const (
	Rows    = 4
	Cols    = 3
	NPieces = 8
)

// OffBoard is the sentinel row/col used for a piece that starts (or
// currently sits) in a player's hand rather than on the board.
const OffBoard = 0

// PieceKind identifies one of the five Dōbutsu Shōgi piece kinds.
type PieceKind uint8

const (
	Lion PieceKind = iota
	Giraffe
	Elephant
	Chick
	Hen
	NoPieceKind PieceKind = 5
)

// String returns the piece kind's name.
func (k PieceKind) String() string {
	switch k {
	case Lion:
		return "Lion"
	case Giraffe:
		return "Giraffe"
	case Elephant:
		return "Elephant"
	case Chick:
		return "Chick"
	case Hen:
		return "Hen"
	default:
		return "None"
	}
}

// MinKindValue and MaxKindValue bound the PieceKind enumeration, used
// by the symbolic state allocator's domain constraint on the
// piece-kind variable.
func MinKindValue() int { return int(Lion) }
func MaxKindValue() int { return int(Hen) }

// Player identifies the first mover (Sente, P0) or second mover
// (Gote, P1). Turn parity is P(t mod 2).
type Player uint8

const (
	Sente Player = iota // first mover, forward = +row
	Gote                // second mover, forward = -row
)

// Other returns the opposing player.
func (p Player) Other() Player {
	return p ^ 1
}

// String returns the player's label: "Sente" for the first mover,
// "Gote" for the second mover.
func (p Player) String() string {
	if p == Sente {
		return "Sente"
	}
	return "Gote"
}

// PlayerAt returns the player to move at half-move index t: P(t mod 2).
func PlayerAt(t int) Player {
	return Player(t % 2)
}

// FarRank returns the row a player's Lion (or promoting Chick) must
// reach for a far-rank win or forced promotion.
func (p Player) FarRank() int {
	if p == Sente {
		return Rows
	}
	return 1
}

// Forward returns the row delta a forward-moving piece (Chick, or
// Hen's forward diagonals) takes for this player.
func (p Player) Forward() int {
	if p == Sente {
		return 1
	}
	return -1
}

// PieceID identifies one of the eight pieces that persist for the
// whole game (0..7).
type PieceID int

// NoPieceID marks the absence of a captured piece in a move record.
const NoPieceID PieceID = -1

// HandNone marks a piece's holder field when the piece is on-board
// (holder = -1 iff captured = false).
const HandNone int = -1

// Position is an on-board square, or the (0,0) off-board sentinel
// for a piece in hand.
type Position struct {
	Row int
	Col int
}

// OnBoard reports whether p is a legal on-board square.
func (p Position) OnBoard() bool {
	return p.Row >= 1 && p.Row <= Rows && p.Col >= 1 && p.Col <= Cols
}

// String renders a position as "(row,col)", or "(hand)" for the
// off-board sentinel.
func (p Position) String() string {
	if !p.OnBoard() {
		return "(hand)"
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InitialPiece describes one piece's placement at t=0: either on the
// board, or already in a player's hand if Row/Col carry the off-board
// sentinel.
type InitialPiece struct {
	ID    PieceID
	Kind  PieceKind
	Owner Player
	Row   int
	Col   int
}

// InHand reports whether this descriptor places the piece in its
// owner's hand at t=0 rather than on the board.
func (ip InitialPiece) InHand() bool {
	return !(Position{Row: ip.Row, Col: ip.Col}).OnBoard()
}

// DefaultInitialSetup returns the standard 8-piece Dōbutsu Shōgi
// starting position:
// Sente: Elephant(1,1), Lion(1,2), Giraffe(1,3), Chick(2,2);
// Gote:  Giraffe(4,1), Lion(4,2), Elephant(4,3), Chick(3,2).
func DefaultInitialSetup() []InitialPiece {
	return []InitialPiece{
		{ID: 0, Kind: Elephant, Owner: Sente, Row: 1, Col: 1},
		{ID: 1, Kind: Lion, Owner: Sente, Row: 1, Col: 2},
		{ID: 2, Kind: Giraffe, Owner: Sente, Row: 1, Col: 3},
		{ID: 3, Kind: Chick, Owner: Sente, Row: 2, Col: 2},
		{ID: 4, Kind: Giraffe, Owner: Gote, Row: 4, Col: 1},
		{ID: 5, Kind: Lion, Owner: Gote, Row: 4, Col: 2},
		{ID: 6, Kind: Elephant, Owner: Gote, Row: 4, Col: 3},
		{ID: 7, Kind: Chick, Owner: Gote, Row: 3, Col: 2},
	}
}
