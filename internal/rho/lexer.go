package rho

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNum
	tokStr
	tokIdent
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	pos  int
	num  float64
}

func (tok token) String() string {
	switch tok.kind {
	case tokEOF:
		return "end of input"
	case tokStr:
		return strconv.Quote(tok.text)
	}
	return fmt.Sprintf("%q", tok.text)
}

// SyntaxError reports a malformed Rho input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (err SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %v: %v", err.Pos, err.Msg)
}

// twoRunePuncts are checked before single rune punctuation.
var twoRunePuncts = []string{"=="}

const puncts = "+-*/<>=|;()[]{},"

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size

		case r == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case '0' <= r && r <= '9' || r == '.' && i+1 < len(src) && '0' <= src[i+1] && src[i+1] <= '9':
			j := i
			for j < len(src) && (src[j] == '.' || '0' <= src[j] && src[j] <= '9' ||
				src[j] == 'e' || src[j] == 'E' ||
				(src[j] == '-' || src[j] == '+') && j > i && (src[j-1] == 'e' || src[j-1] == 'E')) {
				j++
			}
			n, err := strconv.ParseFloat(src[i:j], 64)
			if err != nil {
				return nil, SyntaxError{i, fmt.Sprintf("invalid number %q", src[i:j])}
			}
			toks = append(toks, token{kind: tokNum, text: src[i:j], pos: i, num: n})
			i = j

		case r == '"' || r == '\'':
			s, n, err := lexString(src[i:])
			if err != nil {
				return nil, SyntaxError{i, err.Error()}
			}
			toks = append(toks, token{kind: tokStr, text: s, pos: i})
			i += n

		case r == '_' || unicode.IsLetter(r):
			j := i
			for j < len(src) {
				r, n := utf8.DecodeRuneInString(src[j:])
				if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					break
				}
				j += n
			}
			toks = append(toks, token{kind: tokIdent, text: src[i:j], pos: i})
			i = j

		default:
			if p := matchPunct(src[i:]); p != "" {
				toks = append(toks, token{kind: tokPunct, text: p, pos: i})
				i += len(p)
				continue
			}
			return nil, SyntaxError{i, fmt.Sprintf("unexpected %q", r)}
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}

func matchPunct(s string) string {
	for _, p := range twoRunePuncts {
		if strings.HasPrefix(s, p) {
			return p
		}
	}
	if strings.IndexByte(puncts, s[0]) >= 0 {
		return s[:1]
	}
	return ""
}

// lexString scans a quoted string at the start of s, returning its content
// and the number of bytes consumed. Double quoted strings take Go escapes;
// single quoted strings are raw.
func lexString(s string) (string, int, error) {
	q := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if q == '"' {
				i++
			}
		case q:
			if q == '\'' {
				return s[1:i], i + 1, nil
			}
			str, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return "", 0, fmt.Errorf("invalid string %v", s[:i+1])
			}
			return str, i + 1, nil
		}
	}
	return "", 0, fmt.Errorf("unterminated string")
}
