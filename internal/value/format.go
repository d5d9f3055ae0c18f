package value

import (
	"strconv"
	"strings"
)

// Format renders v in the literal syntax of the infix reader, where one
// exists, so that strings, colors, arrays and maps read back as equal values.
func Format(v Value) string {
	var sb strings.Builder
	format(&sb, v)
	return sb.String()
}

func format(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil, UnitValue:
		sb.WriteString("()")
	case Num:
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 64))
	case Bool:
		sb.WriteString(strconv.FormatBool(bool(v)))
	case Str:
		quote(sb, string(v))
	case Color:
		sb.WriteString("color(")
		sb.WriteString(strconv.Itoa(int(v.R)))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(int(v.G)))
		sb.WriteString(", ")
		sb.WriteString(strconv.Itoa(int(v.B)))
		sb.WriteByte(')')
	case Array:
		sb.WriteByte('[')
		for i, el := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, el)
		}
		sb.WriteByte(']')
	case Map:
		sb.WriteByte('[')
		for i, p := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('{')
			format(sb, p.Key)
			sb.WriteString(", ")
			format(sb, p.Val)
			sb.WriteByte('}')
		}
		sb.WriteByte(']')
	case Future:
		sb.WriteString("Future(")
		sb.WriteString(v.State.String())
		switch v.State {
		case Resolved:
			sb.WriteByte('(')
			format(sb, v.Result)
			sb.WriteByte(')')
		case Rejected:
			sb.WriteByte('(')
			quote(sb, v.Reason)
			sb.WriteByte(')')
		}
		sb.WriteByte(')')
	case Continuation:
		if v.IsEmpty() {
			sb.WriteString("Continuation(Empty)")
		} else {
			sb.WriteString("Continuation(Resume)")
		}
	}
}

// quote writes s as a double quoted Go string literal, which is also how
// the infix reader spells strings.
func quote(sb *strings.Builder, s string) {
	sb.WriteString(strconv.Quote(s))
}
