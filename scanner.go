package mdl

import "strings"

// eof is the sentinel byte returned by peekChar once the cursor has
// passed the end of the source. It can never occur in a well formed
// MDL file so it is safe to compare directly against.
const eof = 0

// scanner is a forward-only cursor over the source text. It never
// backtracks further than a single lookahead character: every reader
// either consumes a complete token or leaves the cursor where it found
// it (aside from having skipped leading trivia).
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	s := &scanner{src: src}
	s.skipTrivia()
	return s
}

// peekChar returns the byte at the cursor, or eof past the end.
func (s *scanner) peekChar() byte {
	if s.pos >= len(s.src) {
		return eof
	}
	return s.src[s.pos]
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

// skipTrivia advances past whitespace and "//" line comments. It is
// called after every token is consumed so every other reader can
// assume the cursor already sits on meaningful content.
func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			nl := strings.IndexByte(s.src[s.pos:], '\n')
			if nl < 0 {
				s.pos = len(s.src)
			} else {
				s.pos += nl + 1
			}
		default:
			return
		}
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// keyword consumes a run of [A-Za-z0-9] starting with a letter. It
// reports ok=false without consuming anything if the cursor is not on
// a keyword.
func (s *scanner) keyword() (kw string, ok bool) {
	if !isAlpha(s.peekChar()) {
		return "", false
	}
	start := s.pos
	for isAlnum(s.peekChar()) {
		s.pos++
	}
	kw = s.src[start:s.pos]
	s.skipTrivia()
	return kw, true
}

// expectSymbol consumes c, failing the parse if the cursor is not on
// it.
func (s *scanner) expectSymbol(c byte) error {
	if s.peekChar() != c {
		return s.errorf("expected %q", c)
	}
	s.pos++
	s.skipTrivia()
	return nil
}

// maybeSymbol consumes c if present and reports whether it did.
func (s *scanner) maybeSymbol(c byte) bool {
	if s.peekChar() != c {
		return false
	}
	s.pos++
	s.skipTrivia()
	return true
}

// quotedString consumes a "..."-delimited string with no escape
// interpretation, returning its inner contents. ok is false (with the
// cursor untouched) if the cursor is not on a quote.
func (s *scanner) quotedString() (str string, ok bool, err error) {
	if s.peekChar() != '"' {
		return "", false, nil
	}
	start := s.pos + 1
	end := strings.IndexByte(s.src[start:], '"')
	if end < 0 {
		return "", false, s.errorf("unterminated string")
	}
	str = s.src[start : start+end]
	s.pos = start + end + 1
	s.skipTrivia()
	return str, true, nil
}

// number consumes a signed floating point literal: an optional sign,
// digits, an optional decimal point and fraction, and an optional
// exponent. The first character must be '-' or a digit.
func (s *scanner) number() (float64, error) {
	start := s.pos
	if s.peekChar() != '-' && !isDigit(s.peekChar()) {
		return 0, s.errorf("expected number")
	}
	if s.peekChar() == '-' {
		s.pos++
	}
	for isDigit(s.peekChar()) {
		s.pos++
	}
	if s.peekChar() == '.' {
		s.pos++
		for isDigit(s.peekChar()) {
			s.pos++
		}
	}
	if s.peekChar() == 'e' || s.peekChar() == 'E' {
		save := s.pos
		s.pos++
		if s.peekChar() == '-' || s.peekChar() == '+' {
			s.pos++
		}
		if !isDigit(s.peekChar()) {
			s.pos = save // not actually an exponent, leave it for whatever follows
		} else {
			for isDigit(s.peekChar()) {
				s.pos++
			}
		}
	}
	text := s.src[start:s.pos]
	v, perr := parseFloat(text)
	if perr != nil {
		return 0, s.errorf("malformed number %q", text)
	}
	s.skipTrivia()
	return v, nil
}

// array reads "{ number (, number)* ,? }" and returns the parsed
// values. ok is false (cursor untouched) if the cursor is not on '{'.
// A trailing comma before the closing brace is tolerated.
func (s *scanner) array() (values []float64, ok bool, err error) {
	if s.peekChar() != '{' {
		return nil, false, nil
	}
	s.pos++
	s.skipTrivia()
	for s.peekChar() != '}' {
		v, nerr := s.number()
		if nerr != nil {
			return nil, true, nerr
		}
		values = append(values, v)
		if !s.maybeSymbol(',') {
			break
		}
	}
	if err := s.expectSymbol('}'); err != nil {
		return nil, true, err
	}
	return values, true, nil
}

// arrayOrScalar behaves like array but also accepts a single bare
// number, returned as a one-element slice.
func (s *scanner) arrayOrScalar() ([]float64, error) {
	if s.peekChar() == '{' {
		values, _, err := s.array()
		return values, err
	}
	v, err := s.number()
	if err != nil {
		return nil, err
	}
	return []float64{v}, nil
}
