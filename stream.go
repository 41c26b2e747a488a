// Copyright (C) 2024 W. Calder. All Rights Reserved.

package jfmt

import (
	"fmt"
	"io"
	"strings"
)

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, token type, and contents of the anchor.
type Anchor interface {
	Token() Token       // Returns the token type of the anchor
	Text() []byte       // Returns a view of the raw (undecoded) text of the anchor
	Copy() []byte       // Returns a copy of the raw text of the anchor
	Location() Location // Returns the full location of the anchor
}

// A Handler handles events from parsing an input stream. If a method
// reports an error, parsing stops and that error is returned to the
// caller. The parser ensures objects and arrays are correctly balanced.
//
// The Anchor argument to a Handler method is only valid for the duration
// of that method call. If the method needs to retain information about
// the location after it returns, it must copy the relevant data.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// Report the key of the next object member. The text of the key is
	// still quoted; the handler is responsible for unescaping key values
	// if the plain string is required (see jfmt.Unquote).
	ObjectKey(loc Anchor) error

	// End the most-recently-opened object, whose close brace is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose close bracket is at loc.
	EndArray(loc Anchor) error

	// Report a data value at the given location. The type of the value can
	// be recovered from the token. String tokens are quoted.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input stream.
	EndOfInput(loc Anchor)
}

// CommentHandler is an optional interface that a Handler may implement to
// handle comment tokens. If a handler implements this method and comments
// are enabled, Comment will be called for each comment token in the input.
// If the handler does not provide this method, comments are silently
// discarded.
type CommentHandler interface {
	// Process the line or block comment at the specified location.
	Comment(loc Anchor)
}

// Stream is a stream parser that consumes input and delivers events to a
// Handler corresponding with the structure of the input. The input is
// read entirely into memory before scanning begins.
type Stream struct {
	r        io.Reader
	s        *Scanner
	comments bool
}

// NewStream constructs a new Stream that consumes input from r.
func NewStream(r io.Reader) *Stream { return &Stream{r: r} }

// NewStreamWithScanner constructs a new Stream that consumes input from s.
func NewStreamWithScanner(s *Scanner) *Stream { return &Stream{s: s} }

// AllowComments configures the scanner associated with s to report (true)
// or reject (false) comment tokens.
func (s *Stream) AllowComments(ok bool) {
	s.comments = ok
	if s.s != nil {
		s.s.AllowComments(ok)
	}
}

// init reads the remaining input and sets up the scanner, if that has not
// already been done. A read failure is reported to the caller unchanged.
func (s *Stream) init() error {
	if s.s == nil {
		data, err := io.ReadAll(s.r)
		if err != nil {
			return err
		}
		s.s = NewScanner(data)
		s.s.AllowComments(s.comments)
	}
	return nil
}

func (s *Stream) recoverParseError(errp *error) {
	if serr := recover(); serr != nil {
		switch err := serr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(serr)
		}
	}
}

// Parse parses the input stream and delivers events to h until either an
// error occurs or the input is exhausted. In case of a syntax error, the
// returned error has type [*SyntaxError].
func (s *Stream) Parse(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if err := s.init(); err != nil {
		return err
	}
	for {
		err := s.nextToken(h)
		if err == io.EOF {
			h.EndOfInput(s.s)
			return nil
		} else if err != nil {
			s.syntaxError(err, "%v", err)
		}

		s.parseElement(h)
	}
}

// ParseOne parses a single value from the input stream and delivers events
// to h until the value is complete or an error occurs. If no further value
// is available from the input, ParseOne returns io.EOF. In case of a
// syntax error, the returned error has type [*SyntaxError].
func (s *Stream) ParseOne(h Handler) (err error) {
	defer s.recoverParseError(&err)

	if err := s.init(); err != nil {
		return err
	}
	if err := s.nextToken(h); err == io.EOF {
		h.EndOfInput(s.s)
		return err
	} else if err != nil {
		s.syntaxError(err, "%v", err)
	}
	s.parseElement(h)
	return nil
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (s *Stream) parseElement(h Handler) {
	switch tok := s.s.Token(); tok {
	case LBrace:
		s.checkError(h.BeginObject(s.s))
		s.parseMembers(h)
		s.checkError(h.EndObject(s.s))
	case LSquare:
		s.checkError(h.BeginArray(s.s))
		s.parseElements(h)
		s.checkError(h.EndArray(s.s))
	case Integer, Number, String, True, False, Null:
		s.checkError(h.Value(s.s))
	case RBrace, RSquare, Comma, Colon:
		s.syntaxError(nil, "unexpected %v", tok)
	default:
		s.syntaxError(nil, "unknown token %v", tok)
	}
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (s *Stream) parseMembers(h Handler) {
	if tok := s.advance(h, RBrace, String); tok == RBrace {
		return // end of object
	}
	for {
		// Parse a single member: "key": value
		s.checkError(h.ObjectKey(s.s))
		s.advance(h, Colon)
		s.advance(h)
		s.parseElement(h)

		// Check whether we have more members (",") or are done ("}").
		if tok := s.advance(h, RBrace, Comma); tok == RBrace {
			return // end of object
		}
		s.advance(h, String) // advance to next key
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (s *Stream) parseElements(h Handler) {
	if tok := s.advance(h); tok == RSquare {
		return // end of array
	}
	s.parseElement(h)
	for {
		if tok := s.advance(h, RSquare, Comma); tok == RSquare {
			return // end of array
		}
		s.advance(h)
		s.parseElement(h)
	}
}

func (s *Stream) nextToken(h Handler) error {
	for {
		if err := s.s.Next(); err != nil {
			return err
		}

		// If we see a comment token, pass it to the handler if it
		// implements CommentHandler. Either way, discard the comment and
		// fetch the next available token for the rest of the parser.
		if tok := s.s.Token(); tok == LineComment || tok == BlockComment {
			if ch, ok := h.(CommentHandler); ok {
				ch.Comment(s.s)
			}
			continue
		}
		return nil
	}
}

func (s *Stream) advance(h Handler, tokens ...Token) Token {
	if err := s.nextToken(h); err != nil {
		s.syntaxError(err, "%v", tokLabel(tokens, err))
	}
	tok := s.s.Token()
	if len(tokens) != 0 && !tokOneOf(tok, tokens) {
		s.syntaxError(nil, "%v", tokLabel(tokens, tok))
	}
	return tok
}

func (s *Stream) syntaxError(err error, msg string, args ...any) {
	panic(&SyntaxError{
		Location: s.s.Location().First,
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (s *Stream) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprint(got)
	}
	ss := make([]string, len(tokens))
	for i, tok := range tokens {
		ss[i] = tok.String()
	}
	exp := ss[len(ss)-1]
	if len(ss) > 1 {
		exp = strings.Join(ss[:len(ss)-1], ", ") + " or " + exp
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// tokOneOf reports whether cur is an element of tokens.
func tokOneOf(cur Token, tokens []Token) bool {
	for _, tok := range tokens {
		if tok == cur {
			return true
		}
	}
	return false
}

// SyntaxError is the concrete type of errors reported by the stream parser.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
