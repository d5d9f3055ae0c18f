package rho

import (
	"fmt"

	"github.com/jcorbin/gotrio/internal/eval"
	"github.com/jcorbin/gotrio/internal/value"
)

// Parse reads Rho source into an expression. Multiple top level statements
// form a Block.
func Parse(src string) (eval.Expr, error) {
	stmts := expandIndent(src)
	if len(stmts) == 1 {
		return parseStatement(stmts[0])
	}
	block := make(eval.Block, 0, len(stmts))
	for _, stmt := range stmts {
		e, err := parseStatement(stmt)
		if err != nil {
			return nil, err
		}
		block = append(block, e)
	}
	return block, nil
}

func parseStatement(src string) (eval.Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks}
	e, err := p.expr(true)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %v", tok)
	}
	return e, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	tok := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}
	return tok
}

func (p *parser) is(text string) bool {
	tok := p.peek()
	return (tok.kind == tokPunct || tok.kind == tokIdent) && tok.text == text
}

func (p *parser) accept(text string) bool {
	if p.is(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(text string) error {
	if !p.accept(text) {
		tok := p.peek()
		return p.errorf(tok, "expected %q, got %v", text, tok)
	}
	return nil
}

func (p *parser) errorf(tok token, mess string, args ...interface{}) error {
	return SyntaxError{tok.pos, fmt.Sprintf(mess, args...)}
}

// expr parses an assignment or choice; compose says whether ";" composes
// continuations, rather than separating block items.
func (p *parser) expr(compose bool) (eval.Expr, error) {
	if tok := p.peek(); tok.kind == tokIdent && !keywords[tok.text] &&
		p.i+1 < len(p.toks) && p.toks[p.i+1].kind == tokPunct && p.toks[p.i+1].text == "=" {
		p.next()
		p.next()
		x, err := p.expr(compose)
		if err != nil {
			return nil, err
		}
		return eval.Assign{Name: tok.text, X: x}, nil
	}
	return p.choice(compose)
}

func (p *parser) choice(compose bool) (eval.Expr, error) {
	l, err := p.compose(compose)
	for err == nil && p.accept("|") {
		var r eval.Expr
		if r, err = p.compose(compose); err == nil {
			l = eval.Choice{L: l, R: r}
		}
	}
	return l, err
}

func (p *parser) compose(compose bool) (eval.Expr, error) {
	l, err := p.comparison()
	for err == nil && compose && p.accept(";") {
		var r eval.Expr
		if r, err = p.comparison(); err == nil {
			l = eval.Compose{L: l, R: r}
		}
	}
	return l, err
}

var comparisons = map[string]eval.Op{"<": eval.OpLess, ">": eval.OpGreater, "==": eval.OpEqual}
var additives = map[string]eval.Op{"+": eval.OpAdd, "-": eval.OpSub}
var multiplicatives = map[string]eval.Op{"*": eval.OpMul, "/": eval.OpDiv}

func (p *parser) comparison() (eval.Expr, error) {
	return p.binary(comparisons, p.additive)
}

func (p *parser) additive() (eval.Expr, error) {
	return p.binary(additives, p.multiplicative)
}

func (p *parser) multiplicative() (eval.Expr, error) {
	return p.binary(multiplicatives, p.unary)
}

func (p *parser) binary(ops map[string]eval.Op, operand func() (eval.Expr, error)) (eval.Expr, error) {
	l, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		op, ok := ops[tok.text]
		if tok.kind != tokPunct || !ok {
			return l, nil
		}
		p.next()
		r, err := operand()
		if err != nil {
			return nil, err
		}
		l = eval.Binary{Op: op, L: l, R: r}
	}
}

func (p *parser) unary() (eval.Expr, error) {
	if p.accept("-") {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if lit, ok := x.(eval.Lit); ok {
			if n, ok := lit.Value.(value.Num); ok {
				return eval.Lit{Value: -n}, nil
			}
		}
		return eval.Sub(eval.Lit{Value: value.Num(0)}, x), nil
	}
	return p.postfix()
}

func (p *parser) postfix() (eval.Expr, error) {
	x, err := p.primary()
	for err == nil && p.accept("[") {
		var idx eval.Expr
		if idx, err = p.expr(true); err == nil {
			if err = p.expect("]"); err == nil {
				x = eval.Index{X: x, Idx: idx}
			}
		}
	}
	return x, err
}

var keywords = map[string]bool{
	"true": true, "false": true, "unit": true,
	"while": true, "for": true, "in": true, "if": true, "else": true,
	"defer": true, "resume": true, "break": true, "continue": true,
}

func (p *parser) primary() (eval.Expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokNum:
		return eval.Lit{Value: value.Num(tok.num)}, nil
	case tokStr:
		return eval.Lit{Value: value.Str(tok.text)}, nil
	case tokEOF:
		return nil, p.errorf(tok, "unexpected end of input")
	case tokPunct:
		switch tok.text {
		case "(":
			x, err := p.expr(true)
			if err != nil {
				return nil, err
			}
			return x, p.expect(")")
		case "{":
			return p.blockBody()
		case "[":
			return p.collection()
		}
		return nil, p.errorf(tok, "unexpected %v", tok)
	}

	switch tok.text {
	case "true":
		return eval.Lit{Value: value.Bool(true)}, nil
	case "false":
		return eval.Lit{Value: value.Bool(false)}, nil
	case "unit":
		return eval.Lit{Value: value.Unit}, nil
	case "resume":
		return eval.ResumeExpr{}, nil
	case "break":
		return eval.BreakExpr{}, nil
	case "continue":
		x, err := p.comparison()
		return eval.ContinueExpr{X: x}, err
	case "defer":
		x, err := p.comparison()
		return eval.Defer{Body: x}, err
	case "while":
		return p.while()
	case "for":
		return p.forIn()
	case "if":
		return p.ifElse()
	case "in", "else":
		return nil, p.errorf(tok, "unexpected %v", tok)
	}

	if p.is("(") {
		if builtin, ok := builtins[tok.text]; ok {
			p.next()
			return builtin(p, tok)
		}
	}
	return eval.Var{Name: tok.text}, nil
}

// block parses a braced block.
func (p *parser) block() (eval.Expr, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	return p.blockBody()
}

// blockBody parses ";" separated items after an opening brace.
func (p *parser) blockBody() (eval.Expr, error) {
	block := eval.Block{}
	for !p.accept("}") {
		if p.accept(";") {
			continue
		}
		x, err := p.expr(false)
		if err != nil {
			return nil, err
		}
		block = append(block, x)
		if !p.is("}") {
			if err := p.expect(";"); err != nil {
				return nil, err
			}
		}
	}
	return block, nil
}

func (p *parser) while() (eval.Expr, error) {
	cond, err := p.expr(false)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return eval.While{Cond: cond, Body: body}, nil
}

func (p *parser) forIn() (eval.Expr, error) {
	name := p.next()
	if name.kind != tokIdent || keywords[name.text] {
		return nil, p.errorf(name, "expected loop variable, got %v", name)
	}
	if err := p.expect("in"); err != nil {
		return nil, err
	}
	in, err := p.expr(false)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return eval.For{Var: name.text, In: in, Body: body}, nil
}

func (p *parser) ifElse() (eval.Expr, error) {
	cond, err := p.expr(false)
	if err != nil {
		return nil, err
	}
	then, err := p.block()
	if err != nil {
		return nil, err
	}
	e := eval.If{Cond: cond, Then: then}
	if p.accept("else") {
		if p.accept("if") {
			e.Else, err = p.ifElse()
		} else {
			e.Else, err = p.block()
		}
	}
	return e, err
}

// collection parses an array "[a, b]" or map "[{k, v}, ...]" after its
// opening bracket.
func (p *parser) collection() (eval.Expr, error) {
	if p.accept("]") {
		return eval.ArrayOf{}, nil
	}
	if p.is("{") {
		var m eval.MapOf
		for {
			if err := p.expect("{"); err != nil {
				return nil, err
			}
			args, err := p.args("}")
			if err != nil {
				return nil, err
			}
			if len(args) != 2 {
				return nil, p.errorf(p.peek(), "map entry needs a key and a value")
			}
			m = append(m, eval.PairOf{Key: args[0], Val: args[1]})
			if !p.accept(",") {
				return m, p.expect("]")
			}
		}
	}
	args, err := p.args("]")
	return eval.ArrayOf(args), err
}

// args parses "," separated expressions up to and including close.
func (p *parser) args(close string) ([]eval.Expr, error) {
	var args []eval.Expr
	if p.accept(close) {
		return args, nil
	}
	for {
		x, err := p.expr(true)
		if err != nil {
			return nil, err
		}
		args = append(args, x)
		if p.accept(close) {
			return args, nil
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}

var builtins map[string]func(p *parser, name token) (eval.Expr, error)

func init() {
	builtins = map[string]func(p *parser, name token) (eval.Expr, error){
		"color":    parseColor,
		"blend":    parseBlend,
		"scale":    parseScale,
		"mix":      parseMix,
		"pending":  parseFuture(value.Pending, 0),
		"resolved": parseFuture(value.Resolved, 1),
		"rejected": parseFuture(value.Rejected, 1),
	}
}

func (p *parser) callArgs(name token, n int) ([]eval.Expr, error) {
	args, err := p.args(")")
	if err != nil {
		return nil, err
	}
	if len(args) != n {
		return nil, p.errorf(name, "%v takes %v arguments, got %v", name.text, n, len(args))
	}
	return args, nil
}

func parseColor(p *parser, name token) (eval.Expr, error) {
	args, err := p.callArgs(name, 3)
	if err != nil {
		return nil, err
	}
	var rgb [3]uint8
	for i, arg := range args {
		lit, _ := arg.(eval.Lit)
		n, ok := lit.Value.(value.Num)
		if !ok || n < 0 || n > 255 || n != value.Num(int(n)) {
			return nil, p.errorf(name, "invalid %c value", "rgb"[i])
		}
		rgb[i] = uint8(n)
	}
	return eval.Lit{Value: value.RGB(rgb[0], rgb[1], rgb[2])}, nil
}

func parseBlend(p *parser, name token) (eval.Expr, error) {
	args, err := p.callArgs(name, 2)
	if err != nil {
		return nil, err
	}
	return eval.Blend(args[0], args[1]), nil
}

func parseScale(p *parser, name token) (eval.Expr, error) {
	args, err := p.callArgs(name, 2)
	if err != nil {
		return nil, err
	}
	lit, _ := args[1].(eval.Lit)
	factor, ok := lit.Value.(value.Num)
	if !ok {
		return nil, p.errorf(name, "scale factor must be a number literal")
	}
	return eval.Scale{X: args[0], Factor: float64(factor)}, nil
}

func parseMix(p *parser, name token) (eval.Expr, error) {
	args, err := p.callArgs(name, 3)
	if err != nil {
		return nil, err
	}
	return eval.Mix{A: args[0], B: args[1], Ratio: args[2]}, nil
}

func parseFuture(state value.FutureState, n int) func(p *parser, name token) (eval.Expr, error) {
	return func(p *parser, name token) (eval.Expr, error) {
		args, err := p.callArgs(name, n)
		if err != nil {
			return nil, err
		}
		e := eval.MakeFuture{State: state}
		if n > 0 {
			e.X = args[0]
		}
		return e, nil
	}
}
