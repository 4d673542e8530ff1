package rules

import (
	"github.com/dobutsu-bmc/solver/internal/board"
	"github.com/dobutsu-bmc/solver/internal/smt"
	"github.com/dobutsu-bmc/solver/internal/symbolic"
)

// BuildCommon assembles the formula every problem class shares:
// domain restrictions, initial-position pinning, basic invariants,
// and the movement/transition schema. Every problem driver starts
// from this and asserts its own class-specific extras on top.
func BuildCommon(e *smt.Encoder, s *symbolic.State, initial []board.InitialPiece) {
	for _, c := range s.DomainConstraints() {
		e.Assert(c)
	}
	for _, c := range Initial(e, s, initial) {
		e.Assert(c)
	}
	for _, c := range Basic(e, s) {
		e.Assert(c)
	}
	for _, c := range Movement(e, s) {
		e.Assert(c)
	}
}
