package memo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dobutsu-bmc/solver/internal/board"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "dobutsu-solver-memo-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	c, err := Open(filepath.Join(tmpDir, "db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLookupMissReportsNotFound(t *testing.T) {
	c := openTestCache(t)
	key := Key{PositionHash: 1, Class: "reachability", Horizon: 3, Extra: "piece=0"}

	_, _, found, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if found {
		t.Fatal("expected a miss on an empty cache")
	}
}

func TestStoreThenLookupRoundTrips(t *testing.T) {
	c := openTestCache(t)
	key := Key{PositionHash: 42, Class: "checkmate", Horizon: 3, Extra: "winner=0"}
	moves := []board.MoveRecord{
		{
			MoveNumber: 0,
			Player:     board.Sente,
			PieceID:    3,
			IsDrop:     false,
			From:       board.Position{Row: 2, Col: 2},
			To:         board.Position{Row: 3, Col: 2},
			Captures:   board.NoPieceID,
			Kind:       board.Chick,
		},
	}

	if err := c.Store(key, true, moves); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, solved, found, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after Store")
	}
	if !solved {
		t.Fatal("expected solved=true")
	}
	if len(got) != 1 || got[0] != moves[0] {
		t.Fatalf("Lookup returned %+v, want %+v", got, moves)
	}
}

func TestStoreUnsatisfiableRecordsNegativeResult(t *testing.T) {
	c := openTestCache(t)
	key := Key{PositionHash: 7, Class: "reachability", Horizon: 1, Extra: "piece=0"}

	if err := c.Store(key, false, nil); err != nil {
		t.Fatalf("Store: %v", err)
	}

	moves, solved, found, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after Store")
	}
	if solved {
		t.Fatal("expected solved=false")
	}
	if len(moves) != 0 {
		t.Fatalf("expected no moves for an unsatisfiable entry, got %d", len(moves))
	}
}

func TestDistinctKeysDoNotCollide(t *testing.T) {
	c := openTestCache(t)
	k1 := Key{PositionHash: 1, Class: "reachability", Horizon: 2, Extra: "piece=0"}
	k2 := Key{PositionHash: 1, Class: "reachability", Horizon: 2, Extra: "piece=1"}

	if err := c.Store(k1, true, nil); err != nil {
		t.Fatalf("Store k1: %v", err)
	}

	_, _, found, err := c.Lookup(k2)
	if err != nil {
		t.Fatalf("Lookup k2: %v", err)
	}
	if found {
		t.Fatal("expected distinct Extra discriminators to produce distinct keys")
	}
}
