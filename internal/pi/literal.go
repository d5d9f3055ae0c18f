package pi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jcorbin/gotrio/internal/value"
)

// ParseLiteral parses a single literal token: a number, a quoted string,
// true/false, (), color(r,g,b), an array [a,b,...] or a map [{k,v},...].
func ParseLiteral(token string) (value.Value, error) {
	s := strings.TrimSpace(token)

	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return value.Str(s[1 : len(s)-1]), nil
	}

	switch s {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	case "()":
		return value.Unit, nil
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return value.Num(n), nil
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			return value.Array{}, nil
		}
		if strings.HasPrefix(inner, "{") {
			return parseMap(inner)
		}
		var arr value.Array
		for _, part := range splitTop(inner) {
			v, err := ParseLiteral(part)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	}

	if strings.HasPrefix(s, "color(") && strings.HasSuffix(s, ")") {
		return parseColor(s[len("color(") : len(s)-1])
	}

	return nil, fmt.Errorf("cannot parse value: %v", s)
}

func parseColor(args string) (value.Value, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("color needs 3 channels, got %v", len(parts))
	}
	var rgb [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid %c value %q", "rgb"[i], strings.TrimSpace(part))
		}
		rgb[i] = uint8(n)
	}
	return value.RGB(rgb[0], rgb[1], rgb[2]), nil
}

// parseMap parses "{k,v},{k,v}"; pairs without exactly two parts are skipped.
func parseMap(inner string) (value.Value, error) {
	m := value.Map{}
	depth, start := 0, 0
	for i, r := range inner {
		switch r {
		case '{':
			depth++
			if depth == 1 {
				start = i + 1
			}
		case '}':
			depth--
			if depth != 0 {
				continue
			}
			parts := splitTop(inner[start:i])
			if len(parts) != 2 {
				continue
			}
			k, err := ParseLiteral(parts[0])
			if err != nil {
				return nil, err
			}
			v, err := ParseLiteral(parts[1])
			if err != nil {
				return nil, err
			}
			m = append(m, value.Pair{Key: k, Val: v})
		}
	}
	return m, nil
}

// splitTop splits s on commas not nested within brackets, braces, parens or
// quotes.
func splitTop(s string) (parts []string) {
	depth, start := 0, 0
	var quote rune
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '[' || r == '{' || r == '(':
			depth++
		case r == ']' || r == '}' || r == ')':
			depth--
		case r == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
