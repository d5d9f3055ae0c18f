package value

import (
	"fmt"
	"math"
)

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// Add sums Nums, saturates Colors and concatenates Arrays.
func Add(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Num:
		if b, ok := b.(Num); ok {
			return a + b, nil
		}
	case Color:
		if b, ok := b.(Color); ok {
			return a.Add(b), nil
		}
	case Array:
		if b, ok := b.(Array); ok {
			out := make(Array, 0, len(a)+len(b))
			for _, el := range a {
				out = append(out, Clone(el))
			}
			for _, el := range b {
				out = append(out, Clone(el))
			}
			return out, nil
		}
	}
	return nil, typeError("add", a, b)
}

// Sub subtracts Nums and Colors, the latter flooring at 0.
func Sub(a, b Value) (Value, error) {
	switch a := a.(type) {
	case Num:
		if b, ok := b.(Num); ok {
			return a - b, nil
		}
	case Color:
		if b, ok := b.(Color); ok {
			return a.Sub(b), nil
		}
	}
	return nil, typeError("subtract", a, b)
}

// Mul multiplies Nums.
func Mul(a, b Value) (Value, error) {
	if a, b, ok := nums(a, b); ok {
		return a * b, nil
	}
	return nil, typeError("multiply", a, b)
}

// Div divides Nums; a zero divisor is an error rather than an infinity.
func Div(a, b Value) (Value, error) {
	x, y, ok := nums(a, b)
	if !ok {
		return nil, typeError("divide", a, b)
	}
	if y == 0 {
		return nil, ErrDivideByZero
	}
	return x / y, nil
}

// Blend averages two Colors.
func Blend(a, b Value) (Value, error) {
	if x, ok := a.(Color); ok {
		if y, ok := b.(Color); ok {
			return x.Blend(y), nil
		}
	}
	return nil, typeError("blend", a, b)
}

// Scale multiplies a Color's channels by factor.
func Scale(a Value, factor float64) (Value, error) {
	if c, ok := a.(Color); ok {
		return c.Scale(factor), nil
	}
	return nil, TypeError{Op: "scale", Left: KindOf(a), Unary: true}
}

// Mix interpolates between two Colors by a Num ratio.
func Mix(a, b, ratio Value) (Value, error) {
	x, xok := a.(Color)
	y, yok := b.(Color)
	if !xok || !yok {
		return nil, typeError("mix", a, b)
	}
	r, ok := ratio.(Num)
	if !ok {
		return nil, TypeError{Op: "mix by", Left: KindOf(ratio), Unary: true}
	}
	return x.Mix(y, float64(r)), nil
}

// LessThan compares Nums.
func LessThan(a, b Value) (Value, error) {
	if x, y, ok := nums(a, b); ok {
		return Bool(x < y), nil
	}
	return nil, typeError("compare", a, b)
}

// GreaterThan compares Nums.
func GreaterThan(a, b Value) (Value, error) {
	if x, y, ok := nums(a, b); ok {
		return Bool(x > y), nil
	}
	return nil, typeError("compare", a, b)
}

// Equals is total: Nums compare within epsilon, Bools and Strs exactly, and
// every other pairing is false.
func Equals(a, b Value) Value {
	return Bool(equal(a, b))
}

func equal(a, b Value) bool {
	switch a := a.(type) {
	case Num:
		if b, ok := b.(Num); ok {
			return math.Abs(float64(a-b)) < epsilon
		}
	case Bool:
		if b, ok := b.(Bool); ok {
			return a == b
		}
	case Str:
		if b, ok := b.(Str); ok {
			return a == b
		}
	}
	return false
}

// keyMatch is the map lookup rule: numbers within epsilon, strings exactly,
// nothing else ever matches.
func keyMatch(key, idx Value) bool {
	switch key := key.(type) {
	case Num:
		if idx, ok := idx.(Num); ok {
			return math.Abs(float64(key-idx)) < epsilon
		}
	case Str:
		if idx, ok := idx.(Str); ok {
			return key == idx
		}
	}
	return false
}

// Get indexes an Array by number or a Map by key, returning a clone of the
// element found.
func Get(container, idx Value) (Value, error) {
	switch c := container.(type) {
	case Array:
		n, ok := idx.(Num)
		if !ok {
			return nil, fmt.Errorf("array index must be a number, got %v", KindOf(idx))
		}
		i := toIndex(float64(n))
		if i >= float64(len(c)) {
			return nil, BoundsError{Index: i, Len: len(c)}
		}
		return Clone(c[int(i)]), nil
	case Map:
		for _, p := range c {
			if keyMatch(p.Key, idx) {
				return Clone(p.Val), nil
			}
		}
		return nil, KeyError{Key: idx}
	}
	return nil, TypeError{Op: "index", Left: KindOf(container), Unary: true}
}

// toIndex truncates toward zero, saturating negatives and NaN to 0.
func toIndex(f float64) float64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	return math.Trunc(f)
}

func nums(a, b Value) (Num, Num, bool) {
	x, ok := a.(Num)
	if !ok {
		return 0, 0, false
	}
	y, ok := b.(Num)
	return x, y, ok
}
