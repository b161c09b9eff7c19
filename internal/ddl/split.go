package ddl

import "strings"

// ColumnsBlock returns the text between the first "(" and the last ")".
func ColumnsBlock(text string) string {
	open := strings.IndexByte(text, '(')
	close := strings.LastIndexByte(text, ')')
	if open < 0 || close <= open {
		return ""
	}
	return text[open+1 : close]
}

// SplitDefinitions splits a column block on commas that are outside any
// parentheses and outside quoted text. Entries are trimmed; empty entries are
// dropped.
func SplitDefinitions(block string) []string {
	var defs []string
	var quote byte
	depth, start := 0, 0

	flush := func(end int) {
		if d := strings.TrimSpace(block[start:end]); d != "" {
			defs = append(defs, d)
		}
		start = end + 1
	}

	for i := 0; i < len(block); i++ {
		c := block[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
			}
		}
	}
	flush(len(block))
	return defs
}

// SplitStatements splits a script into statements on ";" outside string
// literals, quoted identifiers and comments. A line holding only GO also ends
// a statement, as in SQL Server scripts.
func SplitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	var quote byte
	inLineComment := false
	inBlockComment := false

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			stmts = append(stmts, s)
		}
		current.Reset()
	}

	for i := 0; i < len(script); i++ {
		c := script[i]

		switch {
		case inLineComment:
			current.WriteByte(c)
			if c == '\n' {
				inLineComment = false
			}
			continue
		case inBlockComment:
			current.WriteByte(c)
			if c == '*' && i+1 < len(script) && script[i+1] == '/' {
				current.WriteByte('/')
				i++
				inBlockComment = false
			}
			continue
		case quote != 0:
			current.WriteByte(c)
			if c == quote {
				quote = 0
			}
			continue
		}

		if i == 0 || script[i-1] == '\n' {
			if end, ok := goSeparator(script[i:]); ok {
				flush()
				i += end - 1
				continue
			}
		}

		switch {
		case c == '-' && i+1 < len(script) && script[i+1] == '-':
			inLineComment = true
			current.WriteByte(c)
		case c == '/' && i+1 < len(script) && script[i+1] == '*':
			inBlockComment = true
			current.WriteString("/*")
			i++
		case c == '\'' || c == '"' || c == '`':
			quote = c
			current.WriteByte(c)
		case c == ';':
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()
	return stmts
}

// goSeparator reports whether line starts with a lone GO and returns the
// length of that line including its newline.
func goSeparator(rest string) (int, bool) {
	end := strings.IndexByte(rest, '\n')
	line := rest
	if end >= 0 {
		line = rest[:end]
	} else {
		end = len(rest) - 1
	}
	if !strings.EqualFold(strings.TrimSpace(line), "GO") {
		return 0, false
	}
	return end + 1, true
}
