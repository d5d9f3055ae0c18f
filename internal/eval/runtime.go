// Package eval walks expression trees over values, and owns the continuation
// stack that resume, break, continue, compose and choice operate on.
//
// A Runtime is not safe for concurrent use; it models a single session.
package eval

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcorbin/gotrio/internal/logio"
	"github.com/jcorbin/gotrio/internal/value"
)

// Runtime evaluates expressions and holds the continuation stack.
type Runtime struct {
	log   logio.Marked
	stack ContinuationStack

	// ctx is that of the innermost Eval, so that deferred bodies resumed
	// later observe the caller's cancellation rather than their creator's.
	ctx context.Context
}

// New creates a Runtime with an empty continuation stack.
func New(opts ...Option) *Runtime {
	var rt Runtime
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&rt)
		}
	}
	return &rt
}

// Pending returns the number of continuations on the stack.
func (rt *Runtime) Pending() int { return rt.stack.Len() }

// Push places a continuation on the stack without running it.
func (rt *Runtime) Push(c value.Continuation) {
	rt.log.Logf(">", "push #%v", rt.stack.Len()+1)
	rt.stack.Push(c)
}

// Resume pops the top continuation and runs it. An empty stack, or an empty
// continuation, yields Unit. Any error raised by the continuation is logged
// and yields Unit; use TryResume to observe it.
func (rt *Runtime) Resume() value.Value {
	v, err := rt.TryResume()
	if err != nil {
		rt.log.Logf("!", "resume error: %v", err)
		return value.Unit
	}
	return v
}

// TryResume is Resume, but returns any error from the continuation.
func (rt *Runtime) TryResume() (value.Value, error) {
	c, ok := rt.stack.Pop()
	if !ok {
		rt.log.Logf("<", "resume: empty stack")
		return value.Unit, nil
	}
	rt.log.Logf("<", "resume #%v", rt.stack.Len()+1)
	defer rt.log.WithPrefix("  ")()
	return c.Call()
}

// Break discards the whole continuation stack and yields Unit.
func (rt *Runtime) Break() value.Value {
	rt.log.Logf("!", "break: dropped %v", rt.stack.Len())
	rt.stack.Clear()
	return value.Unit
}

// Continue pushes v, if it is a continuation, and immediately resumes it.
// Any other value is ignored, yielding Unit.
func (rt *Runtime) Continue(v value.Value) value.Value {
	v, err := rt.tryContinue(v)
	if err != nil {
		rt.log.Logf("!", "continue error: %v", err)
		return value.Unit
	}
	return v
}

func (rt *Runtime) tryContinue(v value.Value) (value.Value, error) {
	c, ok := v.(value.Continuation)
	if !ok {
		rt.log.Logf("!", "continue: ignoring %v", value.KindOf(v))
		return value.Unit, nil
	}
	rt.Push(c)
	return rt.TryResume()
}

// ErrNotContinuation is returned when composing non-continuation operands.
var ErrNotContinuation = errors.New("compose requires two continuations")

// Eval evaluates e against env. Errors abort the whole walk; any variable
// bindings or stack pushes made before the failure are kept.
func (rt *Runtime) Eval(ctx context.Context, e Expr, env Env) (value.Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	prior := rt.ctx
	rt.ctx = ctx
	defer func() { rt.ctx = prior }()
	v, err := rt.eval(e, env)
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = value.Unit
	}
	return v, nil
}

func (rt *Runtime) evalCtx() context.Context {
	if rt.ctx == nil {
		return context.Background()
	}
	return rt.ctx
}

func (rt *Runtime) eval(e Expr, env Env) (value.Value, error) {
	switch e := e.(type) {
	case Lit:
		if e.Value == nil {
			return value.Unit, nil
		}
		return e.Value, nil

	case Var:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return nil, value.NameError{Name: e.Name}
		}
		return value.Clone(v), nil

	case Assign:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		env.Bind(e.Name, v)
		return value.Clone(v), nil

	case Binary:
		l, err := rt.eval(e.L, env)
		if err != nil {
			return nil, err
		}
		r, err := rt.eval(e.R, env)
		if err != nil {
			return nil, err
		}
		return e.Op.apply(l, r)

	case Scale:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		return value.Scale(v, e.Factor)

	case Mix:
		vals, err := rt.evalAll(env, e.A, e.B, e.Ratio)
		if err != nil {
			return nil, err
		}
		return value.Mix(vals[0], vals[1], vals[2])

	case Index:
		c, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		i, err := rt.eval(e.Idx, env)
		if err != nil {
			return nil, err
		}
		return value.Get(c, i)

	case Compose:
		return rt.compose(e, env)

	case Choice:
		l, err := rt.eval(e.L, env)
		if err != nil {
			return nil, err
		}
		if value.IsUnit(l) {
			return rt.eval(e.R, env)
		}
		return l, nil

	case While:
		return rt.while(e, env)

	case For:
		return rt.forEach(e, env)

	case Block:
		var last value.Value = value.Unit
		for _, sub := range e {
			v, err := rt.eval(sub, env)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil

	case If:
		cond, err := rt.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return rt.eval(e.Then, env)
		}
		if e.Else == nil {
			return value.Unit, nil
		}
		return rt.eval(e.Else, env)

	case Defer:
		body := e.Body
		return value.Suspend(func() (value.Value, error) {
			return rt.eval(body, env)
		}), nil

	case ResumeExpr:
		return rt.TryResume()

	case BreakExpr:
		return rt.Break(), nil

	case ContinueExpr:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		return rt.tryContinue(v)

	case Await:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		if f, ok := v.(value.Future); ok {
			return f.Await()
		}
		return v, nil

	case ArrayOf:
		vals, err := rt.evalAll(env, e...)
		if err != nil {
			return nil, err
		}
		return value.Array(vals), nil

	case MapOf:
		m := make(value.Map, 0, len(e))
		for _, p := range e {
			k, err := rt.eval(p.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := rt.eval(p.Val, env)
			if err != nil {
				return nil, err
			}
			m = append(m, value.Pair{Key: k, Val: v})
		}
		return m, nil

	case MakeFuture:
		return rt.makeFuture(e, env)

	case nil:
		return value.Unit, nil
	}
	return nil, fmt.Errorf("invalid expression %T", e)
}

func (rt *Runtime) evalAll(env Env, es ...Expr) ([]value.Value, error) {
	vals := make([]value.Value, len(es))
	for i, e := range es {
		v, err := rt.eval(e, env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// compose pushes R then L, so that two resumes run L before R.
func (rt *Runtime) compose(e Compose, env Env) (value.Value, error) {
	l, err := rt.eval(e.L, env)
	if err != nil {
		return nil, err
	}
	r, err := rt.eval(e.R, env)
	if err != nil {
		return nil, err
	}
	c1, ok1 := l.(value.Continuation)
	c2, ok2 := r.(value.Continuation)
	if !ok1 || !ok2 {
		return nil, ErrNotContinuation
	}
	rt.Push(c2)
	rt.Push(c1)
	return value.Unit, nil
}

func (rt *Runtime) while(e While, env Env) (value.Value, error) {
	ctx := rt.evalCtx()
	var last value.Value = value.Unit
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cond, err := rt.eval(e.Cond, env)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(cond) {
			return last, nil
		}
		rt.log.Logf("@", "while pass %v", i)
		if last, err = rt.eval(e.Body, env); err != nil {
			return nil, err
		}
	}
}

func (rt *Runtime) forEach(e For, env Env) (value.Value, error) {
	in, err := rt.eval(e.In, env)
	if err != nil {
		return nil, err
	}
	arr, ok := in.(value.Array)
	if !ok {
		return nil, fmt.Errorf("for loop requires an Array, got %v", value.KindOf(in))
	}
	ctx := rt.evalCtx()
	var last value.Value = value.Unit
	for i, el := range arr {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rt.log.Logf("@", "for %v #%v", e.Var, i)
		env.Bind(e.Var, el)
		if last, err = rt.eval(e.Body, env); err != nil {
			return nil, err
		}
	}
	return last, nil
}

func (rt *Runtime) makeFuture(e MakeFuture, env Env) (value.Value, error) {
	switch e.State {
	case value.Pending:
		return value.PendingFuture(), nil
	case value.Resolved:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		return value.ResolvedFuture(v), nil
	case value.Rejected:
		v, err := rt.eval(e.X, env)
		if err != nil {
			return nil, err
		}
		if s, ok := v.(value.Str); ok {
			return value.RejectedFuture(string(s)), nil
		}
		return value.RejectedFuture(value.Format(v)), nil
	}
	return nil, fmt.Errorf("invalid future state %v", e.State)
}
