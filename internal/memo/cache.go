// Package memo is a solution cache for the problem drivers in
// internal/solver. Keys are derived from a position's Zobrist
// fingerprint plus the problem class and its parameters; values are
// the JSON-encoded outcome (solved or unsatisfiable, and the encoded
// move sequence if solved). It wraps BadgerDB behind one small struct:
// a *badger.DB, View/Update transactions, JSON-marshaled values.
package memo

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/dobutsu-bmc/solver/internal/board"
)

// Cache wraps a BadgerDB instance dedicated to solver results.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) a cache rooted at dir. The caller owns the
// returned Cache and must Close it.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("memo: opening cache at %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Key identifies one memoized driver call: a position fingerprint
// plus the problem class and whatever parameters distinguish two
// calls over the same position (target square, winner, horizon).
type Key struct {
	PositionHash uint64
	Class        string // "reachability", "checkmate", "constraint"
	Horizon      int
	Extra        string // caller-formatted discriminator, e.g. "piece=2,owner=0,target=(4,2)"
}

func (k Key) bytes() []byte {
	return []byte(fmt.Sprintf("%s|%016x|%d|%s", k.Class, k.PositionHash, k.Horizon, k.Extra))
}

// Entry is the memoized outcome of one driver call.
type Entry struct {
	Solved bool
	Moves  []EncodedMoveRecord
}

// EncodedMoveRecord is board.MoveRecord flattened for JSON storage;
// board.MoveRecord itself carries no json tags since it is not
// intended for long-term persistence on its own.
type EncodedMoveRecord struct {
	MoveNumber int  `json:"move_number"`
	Player     int  `json:"player"`
	PieceID    int  `json:"piece_id"`
	IsDrop     bool `json:"is_drop"`
	FromRow    int  `json:"from_row"`
	FromCol    int  `json:"from_col"`
	ToRow      int  `json:"to_row"`
	ToCol      int  `json:"to_col"`
	Captures   int  `json:"captures"`
	Kind       int  `json:"kind"`
}

func toEncoded(moves []board.MoveRecord) []EncodedMoveRecord {
	out := make([]EncodedMoveRecord, len(moves))
	for i, m := range moves {
		out[i] = EncodedMoveRecord{
			MoveNumber: m.MoveNumber,
			Player:     int(m.Player),
			PieceID:    int(m.PieceID),
			IsDrop:     m.IsDrop,
			FromRow:    m.From.Row,
			FromCol:    m.From.Col,
			ToRow:      m.To.Row,
			ToCol:      m.To.Col,
			Captures:   int(m.Captures),
			Kind:       int(m.Kind),
		}
	}
	return out
}

func fromEncoded(recs []EncodedMoveRecord) []board.MoveRecord {
	out := make([]board.MoveRecord, len(recs))
	for i, r := range recs {
		out[i] = board.MoveRecord{
			MoveNumber: r.MoveNumber,
			Player:     board.Player(r.Player),
			PieceID:    board.PieceID(r.PieceID),
			IsDrop:     r.IsDrop,
			From:       board.Position{Row: r.FromRow, Col: r.FromCol},
			To:         board.Position{Row: r.ToRow, Col: r.ToCol},
			Captures:   board.PieceID(r.Captures),
			Kind:       board.PieceKind(r.Kind),
		}
	}
	return out
}

// Lookup returns a cached outcome, if any.
func (c *Cache) Lookup(key Key) (moves []board.MoveRecord, solved bool, found bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key.bytes())
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			var e Entry
			if err := json.Unmarshal(val, &e); err != nil {
				return err
			}
			solved = e.Solved
			moves = fromEncoded(e.Moves)
			return nil
		})
	})
	if err != nil {
		return nil, false, false, fmt.Errorf("memo: lookup: %w", err)
	}
	return moves, solved, found, nil
}

// Store memoizes a driver call's outcome. solved=false with a nil
// move list records an unsatisfiable result.
func (c *Cache) Store(key Key, solved bool, moves []board.MoveRecord) error {
	data, err := json.Marshal(Entry{Solved: solved, Moves: toEncoded(moves)})
	if err != nil {
		return fmt.Errorf("memo: marshaling entry: %w", err)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key.bytes(), data)
	})
	if err != nil {
		return fmt.Errorf("memo: store: %w", err)
	}
	return nil
}
