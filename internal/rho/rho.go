// Package rho reads infix notation, with blocks given either in braces or by
// tab indentation.
package rho

import (
	"context"
	"strings"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/value"
)

// Reader evaluates Rho source.
type Reader struct{}

// Eval parses src and evaluates it.
func (Reader) Eval(ctx context.Context, rt *eval.Runtime, env eval.Env, src string) (value.Value, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return rt.Eval(ctx, e, env)
}

// Continues reports whether line, following an incomplete statement, belongs
// to it: either it is indented or it is an else clause.
func Continues(line string) bool {
	if len(line) > 0 && line[0] == '\t' {
		return true
	}
	text := strings.TrimSpace(stripComment(line))
	return text == "else" || strings.HasPrefix(text, "else ")
}

// Opens reports whether line starts a statement that may continue on
// following indented lines.
func Opens(line string) bool {
	toks, err := lex(stripComment(line))
	if err != nil || len(toks) == 0 {
		return false
	}
	first, last := toks[0], toks[len(toks)-1]
	if len(toks) > 1 {
		last = toks[len(toks)-2]
	}
	if first.kind != tokIdent {
		return false
	}
	switch first.text {
	case "while", "for", "if", "else":
		return !(last.kind == tokPunct && last.text == "}")
	}
	return false
}
