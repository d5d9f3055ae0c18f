package value

// FutureState is the state of a Future.
type FutureState uint8

// Future states.
const (
	Pending FutureState = iota
	Resolved
	Rejected
)

func (st FutureState) String() string {
	switch st {
	case Pending:
		return "Pending"
	case Resolved:
		return "Resolved"
	case Rejected:
		return "Rejected"
	}
	return "Invalid"
}

// Future is a placeholder for a result that is not yet available. Nothing
// polls or wakes it; it changes state only when a new Future is assigned over
// it.
type Future struct {
	State  FutureState
	Result Value  // when Resolved
	Reason string // when Rejected
}

// PendingFuture returns a Pending Future.
func PendingFuture() Future { return Future{State: Pending} }

// ResolvedFuture returns a Future Resolved to v.
func ResolvedFuture(v Value) Future { return Future{State: Resolved, Result: v} }

// RejectedFuture returns a Future Rejected with reason.
func RejectedFuture(reason string) Future { return Future{State: Rejected, Reason: reason} }

func (f Future) clone() Future {
	if f.Result != nil {
		f.Result = Clone(f.Result)
	}
	return f
}

// Await returns the resolved value, or an error if the future is pending or
// rejected.
func (f Future) Await() (Value, error) {
	switch f.State {
	case Resolved:
		if f.Result == nil {
			return Unit, nil
		}
		return Clone(f.Result), nil
	case Rejected:
		return nil, FutureError{State: Rejected, Reason: f.Reason}
	default:
		return nil, FutureError{State: Pending}
	}
}

// Continuation is a suspended computation. The zero Continuation is the
// empty no-op marker.
type Continuation struct {
	fn func() (Value, error)
}

// Resume returns a Continuation that calls fn when resumed.
func Resume(fn func() Value) Continuation {
	if fn == nil {
		return Continuation{}
	}
	return Continuation{func() (Value, error) { return fn(), nil }}
}

// Suspend is like Resume, but fn may fail.
func Suspend(fn func() (Value, error)) Continuation {
	return Continuation{fn}
}

// Empty returns the no-op Continuation.
func Empty() Continuation { return Continuation{} }

// IsEmpty reports whether c is the no-op marker.
func (c Continuation) IsEmpty() bool { return c.fn == nil }

// Call invokes the suspended computation; empty continuations yield Unit.
func (c Continuation) Call() (Value, error) {
	if c.fn == nil {
		return Unit, nil
	}
	v, err := c.fn()
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = Unit
	}
	return v, nil
}
