package rho

import "strings"

// expandIndent rewrites tab indented blocks into braced ones, returning one
// string per top level statement. Lines indented one tab deeper than the
// line before them open a block; lines within a block are separated by ";".
// A line starting with "else" continues the statement before it.
func expandIndent(src string) []string {
	var (
		stmts []string
		cur   strings.Builder
		prev  int
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			stmts = append(stmts, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(src, "\n") {
		line = stripComment(line)
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		depth := len(line) - len(strings.TrimLeft(line, "\t"))
		isElse := text == "else" || strings.HasPrefix(text, "else ")

		switch {
		case depth > prev:
			cur.WriteString(strings.Repeat(" {", depth-prev))
		case depth < prev:
			cur.WriteString(strings.Repeat(" }", prev-depth))
			fallthrough
		default:
			if isElse {
				break
			}
			if depth == 0 {
				flush()
			} else {
				cur.WriteString(" ;")
			}
		}
		cur.WriteByte(' ')
		cur.WriteString(text)
		prev = depth
	}
	cur.WriteString(strings.Repeat(" }", prev))
	flush()
	return stmts
}

// stripComment drops any "#" comment not within quotes.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}
