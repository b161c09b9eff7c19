package ddl

import "strings"

// scanner walks DDL text byte by byte. Every method that fails to match
// leaves pos where it was.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// skipSpace consumes whitespace and reports whether any was consumed.
func (s *scanner) skipSpace() bool {
	start := s.pos
	for !s.eof() && isSpace(s.src[s.pos]) {
		s.pos++
	}
	return s.pos > start
}

// keyword matches the given words case-insensitively, separated by
// whitespace and each ending on a word boundary.
func (s *scanner) keyword(words ...string) bool {
	start := s.pos
	for i, w := range words {
		if i > 0 && !s.skipSpace() {
			s.pos = start
			return false
		}
		end := s.pos + len(w)
		if end > len(s.src) || !strings.EqualFold(s.src[s.pos:end], w) {
			s.pos = start
			return false
		}
		if end < len(s.src) && isWordByte(s.src[end]) {
			s.pos = start
			return false
		}
		s.pos = end
	}
	return true
}

// word consumes a run of word characters.
func (s *scanner) word() string {
	start := s.pos
	for !s.eof() && isWordByte(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// typeName consumes a letter followed by word characters.
func (s *scanner) typeName() string {
	if s.eof() || !isLetter(s.src[s.pos]) {
		return ""
	}
	return s.word()
}

// ident consumes one identifier: `x`, "x", [x] or a bare word run.
// Quotes are not part of the returned name.
func (s *scanner) ident() (string, bool) {
	if s.eof() {
		return "", false
	}
	if closer, ok := closingQuote(s.src[s.pos]); ok {
		end := strings.IndexByte(s.src[s.pos+1:], closer)
		if end <= 0 {
			return "", false
		}
		name := s.src[s.pos+1 : s.pos+1+end]
		s.pos += end + 2
		return name, true
	}
	w := s.word()
	return w, w != ""
}

// upTo consumes text through the next occurrence of c and returns what came
// before it. Without an occurrence nothing is consumed.
func (s *scanner) upTo(c byte) (string, bool) {
	end := strings.IndexByte(s.src[s.pos:], c)
	if end < 0 {
		return "", false
	}
	out := s.src[s.pos : s.pos+end]
	s.pos += end + 1
	return out, true
}

// group consumes "(" ... ")" up to the first closing paren and returns the
// inner text.
func (s *scanner) group() (string, bool) {
	if s.peek() != '(' {
		return "", false
	}
	start := s.pos
	s.pos++
	inner, ok := s.upTo(')')
	if !ok {
		s.pos = start
		return "", false
	}
	return inner, true
}

// findKeyword returns the offset just past the first occurrence of the word
// sequence that starts on a word boundary, or -1. Quoted text and comments
// are not searched.
func findKeyword(src string, words ...string) int {
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '\'' || c == '"' || c == '`':
			quote = c
			continue
		case c == '-' && i+1 < len(src) && src[i+1] == '-':
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				return -1
			}
			i += end
			continue
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return -1
			}
			i += end + 3
			continue
		}
		if i > 0 && isWordByte(src[i-1]) {
			continue
		}
		s := &scanner{src: src, pos: i}
		if s.keyword(words...) {
			return s.pos
		}
	}
	return -1
}

func closingQuote(c byte) (byte, bool) {
	switch c {
	case '`':
		return '`', true
	case '"':
		return '"', true
	case '[':
		return ']', true
	}
	return 0, false
}

// unquote strips identifier quoting from each dot-separated segment.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ".") {
		return trimQuotes(s)
	}
	parts := strings.Split(s, ".")
	for i, p := range parts {
		parts[i] = trimQuotes(strings.TrimSpace(p))
	}
	return strings.Join(parts, ".")
}

func trimQuotes(s string) string {
	s = strings.Trim(s, "`\"")
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}
	return s
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isWordByte treats bytes of multi-byte UTF-8 sequences as word characters so
// accented identifiers stay whole.
func isWordByte(c byte) bool {
	return isLetter(c) || ('0' <= c && c <= '9') || c == '_' || c >= 0x80
}
