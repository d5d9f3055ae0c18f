// Package value implements the closed set of runtime values shared by every
// notation, along with their arithmetic, comparison, color and indexing
// operations.
package value

// Value is one of Num, Bool, Str, Unit, Color, Array, Map, Future or
// Continuation. The set is closed: only types in this package implement it.
type Value interface {
	Kind() Kind
	isValue()
}

// Kind names a Value variant.
type Kind uint8

// Kinds of Value.
const (
	KindUnit Kind = iota
	KindNum
	KindBool
	KindStr
	KindColor
	KindArray
	KindMap
	KindFuture
	KindContinuation
)

var kindNames = [...]string{
	KindUnit:         "Unit",
	KindNum:          "Num",
	KindBool:         "Bool",
	KindStr:          "Str",
	KindColor:        "Color",
	KindArray:        "Array",
	KindMap:          "Map",
	KindFuture:       "Future",
	KindContinuation: "Continuation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid"
}

type (
	// Num is a 64-bit float.
	Num float64

	// Bool is a boolean.
	Bool bool

	// Str is a text string.
	Str string

	// UnitValue is the type of Unit, the absence of a meaningful result.
	UnitValue struct{}

	// Array is a heterogeneous ordered sequence.
	Array []Value

	// Map is an ordered association list; lookup is a linear scan and the
	// first matching key wins, so duplicate keys are allowed.
	Map []Pair
)

// Pair is one Map entry.
type Pair struct {
	Key, Val Value
}

// Unit is the only UnitValue.
var Unit Value = UnitValue{}

func (Num) Kind() Kind          { return KindNum }
func (Bool) Kind() Kind         { return KindBool }
func (Str) Kind() Kind          { return KindStr }
func (UnitValue) Kind() Kind    { return KindUnit }
func (Color) Kind() Kind        { return KindColor }
func (Array) Kind() Kind        { return KindArray }
func (Map) Kind() Kind          { return KindMap }
func (Future) Kind() Kind       { return KindFuture }
func (Continuation) Kind() Kind { return KindContinuation }

func (Num) isValue()          {}
func (Bool) isValue()         {}
func (Str) isValue()          {}
func (UnitValue) isValue()    {}
func (Color) isValue()        {}
func (Array) isValue()        {}
func (Map) isValue()          {}
func (Future) isValue()       {}
func (Continuation) isValue() {}

// KindOf returns v's Kind, treating nil as Unit.
func KindOf(v Value) Kind {
	if v == nil {
		return KindUnit
	}
	return v.Kind()
}

// IsUnit reports whether v is Unit (or nil).
func IsUnit(v Value) bool {
	return KindOf(v) == KindUnit
}

// Clone returns a deep copy of v.
//
// Continuations are not duplicable: cloning one, or any container holding
// one, yields Unit in its place. Callers that clone a value and then expect to
// resume the same continuation twice will silently get Unit instead.
func Clone(v Value) Value {
	switch v := v.(type) {
	case nil:
		return Unit
	case Array:
		if v == nil {
			return Array(nil)
		}
		out := make(Array, len(v))
		for i, el := range v {
			out[i] = Clone(el)
		}
		return out
	case Map:
		if v == nil {
			return Map(nil)
		}
		out := make(Map, len(v))
		for i, p := range v {
			out[i] = Pair{Clone(p.Key), Clone(p.Val)}
		}
		return out
	case Future:
		return v.clone()
	case Continuation:
		return Unit
	default:
		return v
	}
}

// Truthy is total over all variants: false for Bool(false), Num(0) and Unit;
// true for everything else, including empty containers.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, UnitValue:
		return false
	case Bool:
		return bool(v)
	case Num:
		return v != 0
	default:
		return true
	}
}
