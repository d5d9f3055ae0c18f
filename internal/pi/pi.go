// Package pi reads postfix (RPN) notation: operands are pushed, operators
// pop their operands and push an expression.
package pi

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/value"
)

// Reader evaluates lines of postfix notation.
type Reader struct {
	// Out receives arrays printed by the --> word.
	Out io.Writer
}

var binaryOps = map[string]eval.Op{
	"+":     eval.OpAdd,
	"-":     eval.OpSub,
	"*":     eval.OpMul,
	"/":     eval.OpDiv,
	"blend": eval.OpBlend,
	"<":     eval.OpLess,
	">":     eval.OpGreater,
	"==":    eval.OpEqual,
}

// Eval reads one line. Exactly one operand left over is the result; none is
// Unit; more is an error.
//
// Assignment ("value name =") and printing ("-->") evaluate eagerly, so names
// bound earlier on a line are visible to later tokens.
func (rd Reader) Eval(ctx context.Context, rt *eval.Runtime, env eval.Env, src string) (value.Value, error) {
	var stack []eval.Expr
	pop := func() eval.Expr {
		i := len(stack) - 1
		e := stack[i]
		stack = stack[:i]
		return e
	}

	for _, token := range strings.Fields(src) {
		if op, ok := binaryOps[token]; ok {
			if len(stack) < 2 {
				return nil, fmt.Errorf("not enough operands for %v", token)
			}
			b := pop()
			a := pop()
			stack = append(stack, eval.Binary{Op: op, L: a, R: b})
			continue
		}

		switch token {
		case "=":
			if len(stack) < 2 {
				return nil, fmt.Errorf("not enough operands for %v", token)
			}
			name := pop()
			lit, ok := name.(eval.Lit)
			s, isStr := lit.Value.(value.Str)
			if !ok || !isStr {
				return nil, fmt.Errorf("variable name must be a string")
			}
			v, err := rt.Eval(ctx, eval.Assign{Name: string(s), X: pop()}, env)
			if err != nil {
				return nil, err
			}
			stack = append(stack, eval.Lit{Value: v})

		case "-->":
			if len(stack) < 1 {
				return nil, fmt.Errorf("no value to print")
			}
			v, err := rt.Eval(ctx, pop(), env)
			if err != nil {
				return nil, err
			}
			if arr, ok := v.(value.Array); ok {
				if err := rd.print(arr); err != nil {
					return nil, err
				}
				v = value.Unit
			}
			stack = append(stack, eval.Lit{Value: v})

		case "resume":
			stack = append(stack, eval.ResumeExpr{})

		case "break":
			stack = append(stack, eval.BreakExpr{})

		default:
			if _, bound := env.Lookup(token); bound {
				stack = append(stack, eval.Var{Name: token})
				continue
			}
			v, err := ParseLiteral(token)
			if err != nil {
				return nil, err
			}
			stack = append(stack, eval.Lit{Value: v})
		}
	}

	switch len(stack) {
	case 0:
		return value.Unit, nil
	case 1:
		return rt.Eval(ctx, stack[0], env)
	default:
		return nil, fmt.Errorf("stack has %v values remaining", len(stack))
	}
}

func (rd Reader) print(arr value.Array) error {
	if rd.Out == nil {
		return nil
	}
	var sb strings.Builder
	for _, el := range arr {
		sb.WriteString(value.Format(el))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(rd.Out, sb.String())
	return err
}
