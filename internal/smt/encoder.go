// Package smt is the sole point of contact with the external SMT
// backend (github.com/aclements/go-z3/z3). Every other package in
// this module talks to an *Encoder, never to the z3 package directly:
// one package owns the messy third-party surface, everything else
// gets a small, stable API.
package smt

import (
	"fmt"

	"github.com/aclements/go-z3/z3"
)

// IntExpr and BoolExpr are the two symbolic value types the rest of
// the module builds formulas out of.
type IntExpr = z3.Int
type BoolExpr = z3.Bool

// Encoder owns one z3 context and one solver for the lifetime of a
// single driver call: each call materializes a fresh symbolic state
// and a fresh SMT context rather than reusing one across problems.
type Encoder struct {
	ctx    *z3.Context
	solver *z3.Solver
}

// NewEncoder creates a fresh context and solver.
func NewEncoder() *Encoder {
	ctx := z3.NewContext(z3.NewConfig())
	return &Encoder{
		ctx:    ctx,
		solver: ctx.NewSolver(),
	}
}

// Close releases the underlying z3 context. The caller owns exactly
// one Encoder per driver call and must Close it on return.
func (e *Encoder) Close() {
	e.solver.Close()
	e.ctx.Close()
}

// IntVar allocates a fresh integer-sorted variable.
func (e *Encoder) IntVar(name string) IntExpr {
	return e.ctx.IntConst(name)
}

// BoolVar allocates a fresh boolean-sorted variable.
func (e *Encoder) BoolVar(name string) BoolExpr {
	return e.ctx.BoolConst(name)
}

// Int returns an integer literal.
func (e *Encoder) Int(v int) IntExpr {
	return e.ctx.FromInt(int64(v), e.ctx.IntSort()).(IntExpr)
}

// Bool returns a boolean literal.
func (e *Encoder) Bool(v bool) BoolExpr {
	return e.ctx.FromBool(v)
}

// And returns the conjunction of zero or more boolean expressions
// (the empty conjunction is true).
func (e *Encoder) And(bs ...BoolExpr) BoolExpr {
	if len(bs) == 0 {
		return e.Bool(true)
	}
	acc := bs[0]
	for _, b := range bs[1:] {
		acc = acc.And(b)
	}
	return acc
}

// Or returns the disjunction of zero or more boolean expressions
// (the empty disjunction is false).
func (e *Encoder) Or(bs ...BoolExpr) BoolExpr {
	if len(bs) == 0 {
		return e.Bool(false)
	}
	acc := bs[0]
	for _, b := range bs[1:] {
		acc = acc.Or(b)
	}
	return acc
}

// Not negates a boolean expression.
func (e *Encoder) Not(b BoolExpr) BoolExpr {
	return b.Not()
}

// Implies returns a -> b.
func (e *Encoder) Implies(a, b BoolExpr) BoolExpr {
	return e.Or(e.Not(a), b)
}

// IfInt is the integer if-then-else combinator used throughout the
// rule encoder's per-piece next-state schema.
func (e *Encoder) IfInt(cond BoolExpr, then, els IntExpr) IntExpr {
	return cond.IfThenElse(then, els).(IntExpr)
}

// IfBool is the boolean if-then-else combinator, built out of And/Or
// since the rule encoder only ever branches into further boolean
// formulas (z3's If on booleans is equivalent to this expansion).
func (e *Encoder) IfBool(cond, then, els BoolExpr) BoolExpr {
	return e.Or(e.And(cond, then), e.And(e.Not(cond), els))
}

// Abs returns the absolute value of an integer expression, used by
// the Lion/Elephant movement geometry.
func (e *Encoder) Abs(v IntExpr) IntExpr {
	neg := e.Int(0).Sub(v)
	return e.IfInt(v.GE(e.Int(0)), v, neg)
}

// Assert adds a constraint to the solver. Assertion order never
// affects meaning: the final formula is the conjunction of everything
// asserted.
func (e *Encoder) Assert(b BoolExpr) {
	e.solver.Assert(b)
}

// Model is a satisfying assignment, returned once Check reports sat.
type Model struct {
	m *z3.Model
}

// EvalInt reads an integer variable's value out of the model.
func (mo *Model) EvalInt(v IntExpr) (int64, error) {
	val := mo.m.Eval(v, true)
	i, ok := val.(IntExpr).AsInt64()
	if !ok {
		return 0, fmt.Errorf("smt: model value for %v is not a concrete integer", v)
	}
	return i, nil
}

// EvalBool reads a boolean variable's value out of the model.
func (mo *Model) EvalBool(v BoolExpr) (bool, error) {
	val := mo.m.Eval(v, true)
	b, ok := val.(BoolExpr).AsBool()
	if !ok {
		return false, fmt.Errorf("smt: model value for %v is not a concrete boolean", v)
	}
	return b, nil
}

// CheckResult is the outcome of discharging the accumulated formula.
type CheckResult int

const (
	Unsat CheckResult = iota
	Sat
	Unknown
)

// Check discharges the accumulated constraints to the backend. It
// never retries; the caller decides what Unknown means.
func (e *Encoder) Check() (CheckResult, *Model, error) {
	sat, err := e.solver.Check()
	if err != nil {
		return Unknown, nil, fmt.Errorf("smt: backend failure: %w", err)
	}
	switch sat {
	case z3.Sat:
		return Sat, &Model{m: e.solver.Model()}, nil
	case z3.Unsat:
		return Unsat, nil, nil
	default:
		return Unknown, nil, fmt.Errorf("smt: backend returned unknown")
	}
}
