package eval

import (
	"fmt"

	"github.com/jcorbin/gotrio/internal/value"
)

// Expr is an immutable expression tree node. Trees are built by a reader,
// handed to Runtime.Eval once, and discarded.
type Expr interface {
	isExpr()
}

// Op is a binary operator over two evaluated operands.
type Op uint8

// Binary operators.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpBlend
	OpLess
	OpGreater
	OpEqual
)

var opNames = [...]string{
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpBlend:   "blend",
	OpLess:    "<",
	OpGreater: ">",
	OpEqual:   "==",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

func (op Op) apply(a, b value.Value) (value.Value, error) {
	switch op {
	case OpAdd:
		return value.Add(a, b)
	case OpSub:
		return value.Sub(a, b)
	case OpMul:
		return value.Mul(a, b)
	case OpDiv:
		return value.Div(a, b)
	case OpBlend:
		return value.Blend(a, b)
	case OpLess:
		return value.LessThan(a, b)
	case OpGreater:
		return value.GreaterThan(a, b)
	case OpEqual:
		return value.Equals(a, b), nil
	}
	return nil, fmt.Errorf("invalid operator %v", op)
}

type (
	// Lit is a literal value.
	Lit struct{ Value value.Value }

	// Var reads a variable; the result is a clone, so continuations read
	// back out of variables are Unit.
	Var struct{ Name string }

	// Assign binds Name to the value of X, yielding that value.
	Assign struct {
		Name string
		X    Expr
	}

	// Binary applies Op to L and R, evaluated left to right.
	Binary struct {
		Op   Op
		L, R Expr
	}

	// Scale multiplies a color by a constant factor.
	Scale struct {
		X      Expr
		Factor float64
	}

	// Mix interpolates between two colors by Ratio.
	Mix struct{ A, B, Ratio Expr }

	// Index accesses an array element or map entry.
	Index struct{ X, Idx Expr }

	// Compose (c1 ; c2) schedules L to resume before R.
	Compose struct{ L, R Expr }

	// Choice (c1 | c2) yields L unless it is Unit, in which case R.
	Choice struct{ L, R Expr }

	// While loops while Cond is truthy, re-evaluating it every pass.
	While struct{ Cond, Body Expr }

	// For binds Var to each element of the array In and evaluates Body.
	For struct {
		Var  string
		In   Expr
		Body Expr
	}

	// Block evaluates each expression in turn, yielding the last.
	Block []Expr

	// If evaluates Then when Cond is truthy, otherwise Else (if any).
	If struct{ Cond, Then, Else Expr }

	// Defer suspends Body as a continuation, evaluated when resumed.
	Defer struct{ Body Expr }

	// ResumeExpr pops and runs the top continuation.
	ResumeExpr struct{}

	// BreakExpr discards every pending continuation.
	BreakExpr struct{}

	// ContinueExpr pushes and immediately resumes a continuation.
	ContinueExpr struct{ X Expr }

	// Await yields a resolved future's value.
	Await struct{ X Expr }

	// ArrayOf builds an Array from element expressions.
	ArrayOf []Expr

	// MapOf builds a Map from key/value expressions, in order.
	MapOf []PairOf

	// MakeFuture constructs a future in the given State; X supplies the
	// resolved value or rejection reason.
	MakeFuture struct {
		State value.FutureState
		X     Expr
	}
)

// PairOf is one MapOf entry.
type PairOf struct{ Key, Val Expr }

func (Lit) isExpr()          {}
func (Var) isExpr()          {}
func (Assign) isExpr()       {}
func (Binary) isExpr()       {}
func (Scale) isExpr()        {}
func (Mix) isExpr()          {}
func (Index) isExpr()        {}
func (Compose) isExpr()      {}
func (Choice) isExpr()       {}
func (While) isExpr()        {}
func (For) isExpr()          {}
func (Block) isExpr()        {}
func (If) isExpr()           {}
func (Defer) isExpr()        {}
func (ResumeExpr) isExpr()   {}
func (BreakExpr) isExpr()    {}
func (ContinueExpr) isExpr() {}
func (Await) isExpr()        {}
func (ArrayOf) isExpr()      {}
func (MapOf) isExpr()        {}
func (MakeFuture) isExpr()   {}

// Literal wraps v as an expression.
func Literal(v value.Value) Expr { return Lit{v} }

// Add, Sub, Mul, Div and Blend construct Binary nodes.
func Add(l, r Expr) Expr   { return Binary{OpAdd, l, r} }
func Sub(l, r Expr) Expr   { return Binary{OpSub, l, r} }
func Mul(l, r Expr) Expr   { return Binary{OpMul, l, r} }
func Div(l, r Expr) Expr   { return Binary{OpDiv, l, r} }
func Blend(l, r Expr) Expr { return Binary{OpBlend, l, r} }
