package tau

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/value"
)

func TestEval(t *testing.T) {
	for _, tc := range []struct {
		name   string
		lines  []string
		expect value.Value
		err    string
	}{
		{name: "async", lines: []string{"async fetch thing"}, expect: value.PendingFuture()},
		{name: "await pending", lines: []string{"f = pending()", "await f"}, err: "future still pending"},
		{name: "await resolved", lines: []string{"f = resolved(1 + 2)", "await f"}, expect: value.Num(3)},
		{name: "await rejected", lines: []string{`f = rejected("offline")`, "await f"}, err: "offline"},
		{name: "await plain value", lines: []string{"x = 5", "await x"}, expect: value.Num(5)},
		{name: "await unbound", lines: []string{"await ghost"}, err: "variable ghost not found"},
		{name: "await needs name", lines: []string{"await a b"}, err: `await takes a variable name, got "a b"`},
		{name: "resolve later", lines: []string{
			"f = pending()",
			"f = resolved([1, 2])",
			"await f",
		}, expect: value.Array{value.Num(1), value.Num(2)}},
		{name: "falls through to rho", lines: []string{"2 * 21"}, expect: value.Num(42)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rt := eval.New()
			vars := eval.Vars{}
			var v value.Value
			var err error
			for _, line := range tc.lines {
				if v, err = (Reader{}).Eval(context.Background(), rt, vars, line); err != nil {
					break
				}
			}
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, v)
		})
	}
}
