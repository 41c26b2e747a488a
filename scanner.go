// Copyright (C) 2024 W. Calder. All Rights Reserved.

package jfmt

import (
	"fmt"
	"io"
	"strconv"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null

	BlockComment // comment: /* ... */
	LineComment  // comment: // ... <LF>
)

var tokenStr = map[Token]string{
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",

	BlockComment: "block comment",
	LineComment:  "line comment",
}

func (t Token) String() string {
	if s, ok := tokenStr[t]; ok {
		return s
	}
	return "invalid token"
}

// A Scanner reads lexical tokens from a complete input held in memory.
// Each call to Next advances the scanner to the next token, or reports an
// error. Token text reported by the scanner is a view into the input
// buffer; no text is copied during scanning.
type Scanner struct {
	data     []byte
	comments bool // allow comments

	cur      int // scan position
	pos, end int // span of the current token
	tok      Token
	err      error

	// Apparent line and start-of-line offsets (0-based) at cur,
	// and the line/column where the current token begins.
	line, lineStart int
	pline, pcol     int
}

// NewScanner constructs a lexical scanner for the given input.
// The scanner retains data; the caller must not modify it while scanning.
func NewScanner(data []byte) *Scanner { return &Scanner{data: data} }

// AllowComments configures the scanner to report (true) or reject (false)
// comment tokens. Comments are a non-standard extension of the JSON spec.
// If enabled, C++ style block comments (/* ... */) and line comments
// (// ...) are recognized and emitted as tokens.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	s.skipSpace()
	s.tok = Invalid
	s.err = nil
	s.pos = s.cur
	s.pline, s.pcol = s.line, s.cur-s.lineStart
	if s.cur >= len(s.data) {
		s.end = s.cur
		return s.setErr(io.EOF)
	}

	var err error
	switch c := s.data[s.cur]; {
	case c == '{':
		s.single(LBrace)
	case c == '}':
		s.single(RBrace)
	case c == '[':
		s.single(LSquare)
	case c == ']':
		s.single(RSquare)
	case c == ',':
		s.single(Comma)
	case c == ':':
		s.single(Colon)
	case c == '"':
		err = s.scanString()
	case c == '-' || isDigit(c):
		err = s.scanNumber()
	case c == '/' && s.comments:
		err = s.scanComment()
	case c == 't':
		err = s.scanKeyword(mem.S("true"), True)
	case c == 'f':
		err = s.scanKeyword(mem.S("false"), False)
	case c == 'n':
		err = s.scanKeyword(mem.S("null"), Null)
	default:
		err = s.failf("unexpected %q", c)
	}
	s.end = s.cur
	return err
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token as a view into the
// input buffer. The contents are valid as long as the input is.
func (s *Scanner) Text() []byte { return s.data[s.pos:s.end] }

// Copy returns a copy of the undecoded text of the current token.
func (s *Scanner) Copy() []byte { return append([]byte(nil), s.Text()...) }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{
		Span:  s.Span(),
		First: LineCol{Line: s.pline + 1, Column: s.pcol},
		Last:  LineCol{Line: s.line + 1, Column: s.cur - s.lineStart},
	}
}

// Int64 decodes the text of the current token as a signed 64-bit integer.
func (s *Scanner) Int64() (int64, error) {
	return strconv.ParseInt(string(s.Text()), 10, 64)
}

// Float64 decodes the text of the current token as a floating-point value.
func (s *Scanner) Float64() (float64, error) {
	return strconv.ParseFloat(string(s.Text()), 64)
}

// Unescape decodes the text of the current String token.
func (s *Scanner) Unescape() ([]byte, error) { return Unquote(string(s.Text())) }

func (s *Scanner) skipSpace() {
	for s.cur < len(s.data) {
		switch s.data[s.cur] {
		case ' ', '\t', '\r':
			s.cur++
		case '\n':
			s.cur++
			s.line++
			s.lineStart = s.cur
		default:
			return
		}
	}
}

func (s *Scanner) single(tok Token) { s.cur++; s.tok = tok }

func (s *Scanner) scanString() error {
	s.cur++ // opening quote
	for s.cur < len(s.data) {
		switch c := s.data[s.cur]; {
		case c == '"':
			s.cur++
			s.tok = String
			return nil
		case c == '\\':
			s.cur++
			if s.cur >= len(s.data) {
				return s.failf("unterminated string")
			}
			switch e := s.data[s.cur]; e {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.cur++
			case 'u':
				s.cur++
				for i := 0; i < 4; i++ {
					if s.cur >= len(s.data) || !isHexDigit(s.data[s.cur]) {
						return s.failf("invalid Unicode escape")
					}
					s.cur++
				}
			default:
				return s.failf("invalid %q after escape", e)
			}
		case c < ' ':
			return s.failf("unescaped control %q", c)
		default:
			s.cur++
		}
	}
	return s.failf("unterminated string")
}

func (s *Scanner) scanNumber() error {
	start := s.cur
	if s.data[s.cur] == '-' {
		s.cur++
	}
	if s.digits() == 0 {
		return s.failf("missing digits")
	}

	// Check for extra leading zeroes, which are disallowed by the JSON
	// grammar. That is: 0.12 is OK, 01.2 is not.
	digs := s.data[start:s.cur]
	if digs[0] == '-' {
		digs = digs[1:]
	}
	if digs[0] == '0' && len(digs) > 1 {
		return s.failf("extra leading zeroes")
	}

	var isFloat bool
	if s.cur < len(s.data) && s.data[s.cur] == '.' {
		s.cur++
		if s.digits() == 0 {
			return s.failf("no digits after decimal point")
		}
		isFloat = true
	}
	if s.cur < len(s.data) && (s.data[s.cur] == 'e' || s.data[s.cur] == 'E') {
		s.cur++
		if s.cur < len(s.data) && (s.data[s.cur] == '+' || s.data[s.cur] == '-') {
			s.cur++
		}
		if s.digits() == 0 {
			return s.failf("missing exponent digits")
		}
		isFloat = true
	}
	if isFloat {
		s.tok = Number
	} else {
		s.tok = Integer
	}
	return nil
}

// digits consumes a run of decimal digits and reports how many were seen.
func (s *Scanner) digits() int {
	n := 0
	for s.cur < len(s.data) && isDigit(s.data[s.cur]) {
		s.cur++
		n++
	}
	return n
}

func (s *Scanner) scanComment() error {
	s.cur++ // leading '/'
	if s.cur >= len(s.data) {
		return s.failf("unterminated comment")
	}
	switch s.data[s.cur] {
	case '/': // line comment, including the trailing LF if present
		s.cur++
		for s.cur < len(s.data) {
			if s.data[s.cur] == '\n' {
				s.cur++
				s.line++
				s.lineStart = s.cur
				break
			}
			s.cur++
		}
		s.tok = LineComment
		return nil

	case '*': // block comment, including the trailing "*/"
		s.cur++
		for s.cur+1 < len(s.data) {
			c := s.data[s.cur]
			if c == '*' && s.data[s.cur+1] == '/' {
				s.cur += 2
				s.tok = BlockComment
				return nil
			}
			if c == '\n' {
				s.line++
				s.lineStart = s.cur + 1
			}
			s.cur++
		}
		s.cur = len(s.data)
		return s.failf("unterminated block comment")

	default:
		return s.failf("invalid %q in comment", s.data[s.cur])
	}
}

// scanKeyword consumes a run of lowercase letters and requires it to equal
// the given constant name.
func (s *Scanner) scanKeyword(want mem.RO, tok Token) error {
	n := s.cur
	for n < len(s.data) && s.data[n] >= 'a' && s.data[n] <= 'z' {
		n++
	}
	if got := mem.B(s.data[s.cur:n]); !got.Equal(want) {
		return s.failf("unknown constant %q", got.StringCopy())
	}
	s.cur = n
	s.tok = tok
	return nil
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.setErr(posError{s.cur, fmt.Errorf(msg, args...)})
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
