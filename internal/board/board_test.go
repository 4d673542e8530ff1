package board

import "testing"

func TestPlayerAtParity(t *testing.T) {
	tests := []struct {
		t    int
		want Player
	}{
		{0, Sente},
		{1, Gote},
		{2, Sente},
		{7, Gote},
	}
	for _, tc := range tests {
		if got := PlayerAt(tc.t); got != tc.want {
			t.Errorf("PlayerAt(%d) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestFarRankAndForward(t *testing.T) {
	if Sente.FarRank() != Rows {
		t.Errorf("Sente.FarRank() = %d, want %d", Sente.FarRank(), Rows)
	}
	if Gote.FarRank() != 1 {
		t.Errorf("Gote.FarRank() = %d, want 1", Gote.FarRank())
	}
	if Sente.Forward() != 1 {
		t.Errorf("Sente.Forward() = %d, want 1", Sente.Forward())
	}
	if Gote.Forward() != -1 {
		t.Errorf("Gote.Forward() = %d, want -1", Gote.Forward())
	}
}

func TestOther(t *testing.T) {
	if Sente.Other() != Gote {
		t.Error("Sente.Other() should be Gote")
	}
	if Gote.Other() != Sente {
		t.Error("Gote.Other() should be Sente")
	}
}

func TestPositionOnBoard(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{1, 1}, true},
		{Position{Rows, Cols}, true},
		{Position{0, 0}, false},
		{Position{Rows + 1, 1}, false},
		{Position{1, Cols + 1}, false},
	}
	for _, tc := range tests {
		if got := tc.pos.OnBoard(); got != tc.want {
			t.Errorf("%v.OnBoard() = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestInitialPieceInHand(t *testing.T) {
	onBoard := InitialPiece{ID: 0, Kind: Chick, Owner: Sente, Row: 2, Col: 2}
	if onBoard.InHand() {
		t.Error("on-board descriptor should not report InHand")
	}

	inHand := InitialPiece{ID: 7, Kind: Chick, Owner: Sente, Row: OffBoard, Col: OffBoard}
	if !inHand.InHand() {
		t.Error("off-board descriptor should report InHand")
	}
}

func TestDefaultInitialSetupShape(t *testing.T) {
	setup := DefaultInitialSetup()
	if len(setup) != NPieces {
		t.Fatalf("expected %d pieces, got %d", NPieces, len(setup))
	}

	seen := map[PieceID]bool{}
	lions := map[Player]int{}
	for _, ip := range setup {
		if seen[ip.ID] {
			t.Errorf("duplicate piece id %d", ip.ID)
		}
		seen[ip.ID] = true
		if ip.Kind == Lion {
			lions[ip.Owner]++
		}
	}
	if lions[Sente] != 1 || lions[Gote] != 1 {
		t.Errorf("expected exactly one Lion per player, got %v", lions)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []MoveRecord{
		{MoveNumber: 0, Player: Sente, PieceID: 3, IsDrop: false, From: Position{2, 2}, To: Position{3, 2}, Captures: 7, Kind: Chick},
		{MoveNumber: 1, Player: Gote, PieceID: 7, IsDrop: true, From: Position{0, 0}, To: Position{3, 2}, Captures: NoPieceID, Kind: Chick},
	}
	for _, m := range cases {
		enc := Encode(m)
		if enc.PieceID() != m.PieceID {
			t.Errorf("PieceID round-trip: got %d want %d", enc.PieceID(), m.PieceID)
		}
		if enc.IsDrop() != m.IsDrop {
			t.Errorf("IsDrop round-trip: got %v want %v", enc.IsDrop(), m.IsDrop)
		}
		if enc.From() != m.From {
			t.Errorf("From round-trip: got %v want %v", enc.From(), m.From)
		}
		if enc.To() != m.To {
			t.Errorf("To round-trip: got %v want %v", enc.To(), m.To)
		}
		if enc.Captures() != m.Captures {
			t.Errorf("Captures round-trip: got %d want %d", enc.Captures(), m.Captures)
		}
	}
}

func TestHashInitialSetupDeterministic(t *testing.T) {
	setup := DefaultInitialSetup()
	h1 := HashInitialSetup(setup)
	h2 := HashInitialSetup(setup)
	if h1 != h2 {
		t.Errorf("hash not deterministic: %x != %x", h1, h2)
	}

	other := DefaultInitialSetup()
	other[3].Row = 3 // move the Sente Chick
	h3 := HashInitialSetup(other)
	if h3 == h1 {
		t.Error("hash should change when a piece's square changes")
	}
}

func TestHashInitialSetupOrderIndependent(t *testing.T) {
	setup := DefaultInitialSetup()
	reversed := make([]InitialPiece, len(setup))
	for i, ip := range setup {
		reversed[len(setup)-1-i] = ip
	}
	if HashInitialSetup(setup) != HashInitialSetup(reversed) {
		t.Error("hash should not depend on descriptor list order")
	}
}
