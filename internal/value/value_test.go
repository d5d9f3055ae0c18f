package value

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	for _, tc := range []struct {
		name   string
		got    Color
		expect Color
	}{
		{"blend", RGB(255, 0, 0).Blend(RGB(0, 0, 255)), RGB(127, 0, 127)},
		{"blend reversed", RGB(0, 0, 255).Blend(RGB(255, 0, 0)), RGB(127, 0, 127)},
		{"blend mid", RGB(200, 100, 50).Blend(RGB(100, 200, 150)), RGB(150, 150, 100)},
		{"add", RGB(100, 0, 0).Add(RGB(0, 150, 0)), RGB(100, 150, 0)},
		{"add saturates", RGB(200, 100, 50).Add(RGB(100, 200, 250)), RGB(255, 255, 255)},
		{"add exact max", RGB(200, 0, 0).Add(RGB(55, 0, 0)), RGB(255, 0, 0)},
		{"sub", RGB(200, 100, 50).Sub(RGB(50, 30, 10)), RGB(150, 70, 40)},
		{"sub floors", RGB(10, 20, 30).Sub(RGB(50, 20, 5)), RGB(0, 0, 25)},
		{"scale up clamps", RGB(100, 50, 200).Scale(2), RGB(200, 100, 255)},
		{"scale down", RGB(100, 50, 200).Scale(0.5), RGB(50, 25, 100)},
		{"scale negative", RGB(100, 50, 200).Scale(-1), RGB(0, 0, 0)},
		{"mix half truncates", RGB(255, 0, 0).Mix(RGB(0, 0, 255), 0.5), RGB(127, 0, 127)},
		{"mix ratio clamped high", RGB(255, 0, 0).Mix(RGB(0, 0, 255), 7), RGB(0, 0, 255)},
		{"mix ratio clamped low", RGB(255, 0, 0).Mix(RGB(0, 0, 255), -3), RGB(255, 0, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.got)
		})
	}
}

func TestBlendSymmetric(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 13 {
			x, y := RGB(uint8(a), uint8(b), 0), RGB(uint8(b), uint8(a), 255)
			assert.Equal(t, x.Blend(y), y.Blend(x))
			assert.Equal(t, uint8((a+b)/2), x.Blend(y).R)
		}
	}
}

func TestArithmetic(t *testing.T) {
	for _, tc := range []struct {
		name   string
		op     func(a, b Value) (Value, error)
		a, b   Value
		expect Value
		err    string
	}{
		{name: "add nums", op: Add, a: Num(5), b: Num(3), expect: Num(8)},
		{name: "sub nums", op: Sub, a: Num(10), b: Num(3), expect: Num(7)},
		{name: "mul nums", op: Mul, a: Num(6), b: Num(7), expect: Num(42)},
		{name: "div nums", op: Div, a: Num(20), b: Num(4), expect: Num(5)},
		{name: "div fraction", op: Div, a: Num(1), b: Num(3), expect: Num(1.0 / 3.0)},
		{name: "div by zero", op: Div, a: Num(10), b: Num(0), err: "division by zero"},
		{name: "div zero by zero", op: Div, a: Num(0), b: Num(0), err: "division by zero"},
		{name: "add colors", op: Add, a: RGB(100, 50, 25), b: RGB(50, 100, 75), expect: RGB(150, 150, 100)},
		{name: "sub colors", op: Sub, a: RGB(1, 2, 3), b: RGB(3, 2, 1), expect: RGB(0, 0, 2)},
		{name: "add arrays", op: Add, a: Array{Num(1), Num(2)}, b: Array{Str("x")}, expect: Array{Num(1), Num(2), Str("x")}},
		{name: "add empty arrays", op: Add, a: Array{}, b: Array{}, expect: Array{}},
		{name: "add mismatch", op: Add, a: Num(1), b: Str("x"), err: "cannot add Num and Str"},
		{name: "add unit", op: Add, a: Unit, b: Num(1), err: "cannot add Unit and Num"},
		{name: "sub arrays", op: Sub, a: Array{}, b: Array{}, err: "cannot subtract Array and Array"},
		{name: "mul colors", op: Mul, a: RGB(1, 1, 1), b: RGB(1, 1, 1), err: "cannot multiply Color and Color"},
		{name: "div strs", op: Div, a: Str("a"), b: Str("b"), err: "cannot divide Str and Str"},
		{name: "blend colors", op: Blend, a: RGB(255, 0, 0), b: RGB(0, 0, 255), expect: RGB(127, 0, 127)},
		{name: "blend nums", op: Blend, a: Num(1), b: Num(2), err: "cannot blend Num and Num"},
		{name: "less", op: LessThan, a: Num(1), b: Num(2), expect: Bool(true)},
		{name: "greater", op: GreaterThan, a: Num(1), b: Num(2), expect: Bool(false)},
		{name: "less strs", op: LessThan, a: Str("a"), b: Str("b"), err: "cannot compare Str and Str"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.op(tc.a, tc.b)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestDivByZeroIs(t *testing.T) {
	_, err := Div(Num(1), Num(0))
	assert.True(t, errors.Is(err, ErrDivideByZero))
	_, err = Add(Bool(true), Num(1))
	var te TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindBool, te.Left)
	assert.Equal(t, KindNum, te.Right)
}

func TestAddArraysPreservesOperands(t *testing.T) {
	a := Array{Num(1), Num(2)}
	b := Array{Num(3)}
	v, err := Add(a, b)
	require.NoError(t, err)
	out := v.(Array)
	assert.Len(t, out, len(a)+len(b))
	out[0] = Num(99)
	assert.Equal(t, Array{Num(1), Num(2)}, a, "operands must not be aliased")
}

func TestScale(t *testing.T) {
	v, err := Scale(RGB(100, 50, 200), 2)
	require.NoError(t, err)
	assert.Equal(t, RGB(200, 100, 255), v)

	_, err = Scale(Num(1), 2)
	assert.EqualError(t, err, "cannot scale Num")
}

func TestMix(t *testing.T) {
	v, err := Mix(RGB(255, 0, 0), RGB(0, 0, 255), Num(0.5))
	require.NoError(t, err)
	assert.Equal(t, RGB(127, 0, 127), v)

	_, err = Mix(RGB(255, 0, 0), RGB(0, 0, 255), Str("half"))
	assert.EqualError(t, err, "cannot mix by Str")
}

func TestEquals(t *testing.T) {
	for _, tc := range []struct {
		name   string
		a, b   Value
		expect bool
	}{
		{"nums", Num(2), Num(2), true},
		{"nums within epsilon", Num(0.1 + 0.2), Num(0.3), true},
		{"nums differ", Num(1), Num(1.001), false},
		{"bools", Bool(true), Bool(true), true},
		{"bools differ", Bool(true), Bool(false), false},
		{"strs", Str("a"), Str("a"), true},
		{"strs differ", Str("a"), Str("A"), false},
		{"num and str", Num(1), Str("1"), false},
		{"units", Unit, Unit, false},
		{"colors", RGB(1, 2, 3), RGB(1, 2, 3), false},
		{"arrays", Array{}, Array{}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Bool(tc.expect), Equals(tc.a, tc.b))
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, tc := range []struct {
		v      Value
		expect bool
	}{
		{Bool(false), false},
		{Num(0), false},
		{Unit, false},
		{nil, false},
		{Bool(true), true},
		{Num(-1), true},
		{Str(""), true},
		{Array{}, true},
		{Map{}, true},
		{RGB(0, 0, 0), true},
		{PendingFuture(), true},
		{Empty(), true},
	} {
		assert.Equal(t, tc.expect, Truthy(tc.v), "Truthy(%v)", Format(tc.v))
	}
}

func TestGet(t *testing.T) {
	arr := Array{Num(10), Num(20), Num(30)}
	m := Map{
		{Num(1), Num(100)},
		{Str("y"), Num(200)},
		{Num(1), Num(300)},
		{Bool(true), Num(400)},
	}
	for _, tc := range []struct {
		name      string
		container Value
		idx       Value
		expect    Value
		err       string
	}{
		{name: "array", container: arr, idx: Num(1), expect: Num(20)},
		{name: "array truncates", container: arr, idx: Num(2.9), expect: Num(30)},
		{name: "array negative saturates", container: arr, idx: Num(-4), expect: Num(10)},
		{name: "array bounds", container: arr, idx: Num(3), err: "index 3 out of bounds"},
		{name: "array far bounds", container: arr, idx: Num(5), err: "index 5 out of bounds"},
		{name: "empty array", container: Array{}, idx: Num(0), err: "index 0 out of bounds"},
		{name: "huge index", container: arr, idx: Num(1e10), err: "index 10000000000 out of bounds"},
		{name: "fractional huge index", container: arr, idx: Num(3e9 + 0.75), err: "index 3000000000 out of bounds"},
		{name: "array str index", container: arr, idx: Str("0"), err: "array index must be a number, got Str"},
		{name: "map num key first wins", container: m, idx: Num(1), expect: Num(100)},
		{name: "map str key", container: m, idx: Str("y"), expect: Num(200)},
		{name: "map missing", container: m, idx: Str("z"), err: `key "z" not found`},
		{name: "map bool key never matches", container: m, idx: Bool(true), err: "key true not found"},
		{name: "not a container", container: Num(1), idx: Num(0), err: "cannot index Num"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Get(tc.container, tc.idx)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}

	_, err := Get(arr, Num(7))
	var be BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, BoundsError{Index: 7, Len: 3}, be)
}

func TestClone(t *testing.T) {
	called := 0
	cont := Resume(func() Value { called++; return Num(1) })

	assert.Equal(t, Unit, Clone(cont), "continuations clone to unit")
	assert.Equal(t, Array{Num(1), Unit}, Clone(Array{Num(1), cont}))
	assert.Equal(t, Map{{Str("k"), Unit}}, Clone(Map{{Str("k"), cont}}))
	assert.Equal(t, 0, called)

	orig := Array{Array{Num(1)}}
	cp := Clone(orig).(Array)
	cp[0].(Array)[0] = Num(2)
	assert.Equal(t, Array{Array{Num(1)}}, orig)

	assert.Equal(t, ResolvedFuture(Num(3)), Clone(ResolvedFuture(Num(3))))
	assert.Equal(t, RGB(1, 2, 3), Clone(RGB(1, 2, 3)))
}

func TestFutureAwait(t *testing.T) {
	v, err := ResolvedFuture(Str("ok")).Await()
	require.NoError(t, err)
	assert.Equal(t, Str("ok"), v)

	_, err = PendingFuture().Await()
	assert.EqualError(t, err, "future still pending")

	_, err = RejectedFuture("boom").Await()
	assert.EqualError(t, err, "boom")
}

func TestContinuationCall(t *testing.T) {
	v, err := Empty().Call()
	require.NoError(t, err)
	assert.Equal(t, Unit, v)

	v, err = Resume(func() Value { return Num(42) }).Call()
	require.NoError(t, err)
	assert.Equal(t, Num(42), v)

	_, err = Suspend(func() (Value, error) { return nil, ErrDivideByZero }).Call()
	assert.Equal(t, ErrDivideByZero, err)

	assert.True(t, Resume(nil).IsEmpty())
}

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		v      Value
		expect string
	}{
		{Num(3), "3"},
		{Num(2.5), "2.5"},
		{Bool(false), "false"},
		{Str("a\"b"), `"a\"b"`},
		{Str("tab\there"), `"tab\there"`},
		{Str("say \"hi\"\n"), `"say \"hi\"\n"`},
		{Unit, "()"},
		{RGB(1, 2, 3), "color(1, 2, 3)"},
		{Array{Num(1), Str("x")}, `[1, "x"]`},
		{Map{{Num(1), Num(2)}, {Str("k"), Unit}}, `[{1, 2}, {"k", ()}]`},
		{PendingFuture(), "Future(Pending)"},
		{ResolvedFuture(Num(1)), "Future(Resolved(1))"},
		{RejectedFuture("no"), `Future(Rejected("no"))`},
		{Empty(), "Continuation(Empty)"},
		{Resume(func() Value { return Unit }), "Continuation(Resume)"},
	} {
		assert.Equal(t, tc.expect, Format(tc.v))
	}
}
