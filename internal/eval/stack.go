package eval

import "github.com/jcorbin/gotrio/internal/value"

// ContinuationStack is a LIFO of suspended computations.
type ContinuationStack struct {
	conts []value.Continuation
}

// Push places c on top of the stack.
func (cs *ContinuationStack) Push(c value.Continuation) {
	cs.conts = append(cs.conts, c)
}

// Pop removes and returns the top continuation; ok is false if the stack was
// empty.
func (cs *ContinuationStack) Pop() (c value.Continuation, ok bool) {
	i := len(cs.conts) - 1
	if i < 0 {
		return c, false
	}
	c = cs.conts[i]
	cs.conts[i] = value.Continuation{}
	cs.conts = cs.conts[:i]
	return c, true
}

// Clear discards every continuation.
func (cs *ContinuationStack) Clear() {
	for i := range cs.conts {
		cs.conts[i] = value.Continuation{}
	}
	cs.conts = cs.conts[:0]
}

// Len returns the number of pending continuations.
func (cs *ContinuationStack) Len() int { return len(cs.conts) }

// IsEmpty reports whether nothing is pending.
func (cs *ContinuationStack) IsEmpty() bool { return len(cs.conts) == 0 }
