// Package tau reads the async dialect: Rho plus async and await forms over
// manually driven futures.
package tau

import (
	"context"
	"fmt"
	"strings"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/rho"
	"github.com/jcorbin/gotrio/internal/value"
)

// Reader evaluates Tau source.
type Reader struct{}

// Parse reads src: "async <op>" is a pending future, "await <name>" resolves
// the future bound to name, and anything else is Rho.
//
// The operation after async is never run; futures only change state when
// reassigned, e.g. with resolved(x) or rejected("reason").
func Parse(src string) (eval.Expr, error) {
	text := strings.TrimSpace(src)
	switch {
	case strings.HasPrefix(text, "async "):
		return eval.MakeFuture{State: value.Pending}, nil
	case strings.HasPrefix(text, "await "):
		name := strings.TrimSpace(text[len("await "):])
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("await takes a variable name, got %q", name)
		}
		return eval.Await{X: eval.Var{Name: name}}, nil
	}
	return rho.Parse(src)
}

// Eval parses src and evaluates it.
func (Reader) Eval(ctx context.Context, rt *eval.Runtime, env eval.Env, src string) (value.Value, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return rt.Eval(ctx, e, env)
}
