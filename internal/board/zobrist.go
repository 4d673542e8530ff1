package board

// Zobrist-style hashing of an initial-piece setup, used as the cache
// key for internal/memo. Keyed per piece identity rather than just
// per kind, since in Dōbutsu Shōgi piece identity is part of what the
// solver was asked about: two setups with the same piece kinds on the
// same squares but different ids are different problems.
//
// Uses a fixed-seed PRNG for reproducibility, so a hash computed today
// matches one computed tomorrow.
var zobristSlot [NPieces][int(Hen) + 1][2][Rows*Cols + 1]uint64

func init() {
	initZobrist()
}

// prng is a xorshift64* generator, identical in shape to the
// teacher's internal/board/zobrist.go PRNG.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0xD0B17517054E6105) // fixed seed

	for id := 0; id < NPieces; id++ {
		for k := Lion; k <= Hen; k++ {
			for owner := 0; owner < 2; owner++ {
				for slot := 0; slot <= Rows*Cols; slot++ {
					zobristSlot[id][k][owner][slot] = rng.next()
				}
			}
		}
	}
}

// squareSlot maps an on-board square to its 1..Rows*Cols slot index;
// 0 is reserved for "in hand".
func squareSlot(row, col int) int {
	return (row-1)*Cols + col
}

// HashInitialSetup returns a deterministic fingerprint of an
// initial-piece list, independent of list order, suitable as a
// memoization key component.
func HashInitialSetup(pieces []InitialPiece) uint64 {
	var h uint64
	for _, ip := range pieces {
		slot := 0
		if !ip.InHand() {
			slot = squareSlot(ip.Row, ip.Col)
		}
		id := int(ip.ID)
		if id < 0 || id >= NPieces {
			continue
		}
		h ^= zobristSlot[id][ip.Kind][ip.Owner][slot]
	}
	return h
}
