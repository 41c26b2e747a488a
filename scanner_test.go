// Copyright (C) 2024 W. Calder. All Rights Reserved.

package jfmt_test

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wcalder/jfmt"
)

func scanAll(t *testing.T, s *jfmt.Scanner) []jfmt.Token {
	t.Helper()
	var got []jfmt.Token
	for s.Next() == nil {
		got = append(got, s.Token())
	}
	if s.Err() != io.EOF {
		t.Errorf("Next failed: %v", s.Err())
	}
	return got
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jfmt.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jfmt.Token{jfmt.True, jfmt.False, jfmt.Null}},

		// Punctuation
		{"{ [ ] } , :", []jfmt.Token{
			jfmt.LBrace, jfmt.LSquare, jfmt.RSquare, jfmt.RBrace, jfmt.Comma, jfmt.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jfmt.Token{jfmt.String, jfmt.String, jfmt.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jfmt.Token{jfmt.String}},
		{`"Ǽ snow☃man"`, []jfmt.Token{jfmt.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jfmt.Token{
			jfmt.Integer, jfmt.Integer, jfmt.Integer,
			jfmt.Number, jfmt.Number, jfmt.Number, jfmt.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jfmt.Token{
			jfmt.LBrace, jfmt.True, jfmt.Comma, jfmt.String, jfmt.Colon,
			jfmt.Integer, jfmt.Null, jfmt.LSquare, jfmt.RSquare, jfmt.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jfmt.Token{
			jfmt.LBrace,
			jfmt.String, jfmt.Colon, jfmt.True, jfmt.Comma,
			jfmt.String, jfmt.Colon,
			jfmt.LSquare,
			jfmt.Null, jfmt.Comma, jfmt.Integer, jfmt.Comma, jfmt.Number,
			jfmt.RSquare,
			jfmt.RBrace,
		}},
	}

	for _, test := range tests {
		s := jfmt.NewScanner([]byte(test.input))
		got := scanAll(t, s)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerText(t *testing.T) {
	const input = `{"name": [true, -3.25e2]}`
	want := []string{"{", `"name"`, ":", "[", "true", ",", "-3.25e2", "]", "}"}

	var got []string
	s := jfmt.NewScanner([]byte(input))
	for s.Next() == nil {
		got = append(got, string(s.Text()))
	}
	if s.Err() != io.EOF {
		t.Errorf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Input: %#q\nText: (-want, +got)\n%s", input, diff)
	}
}

func TestScannerComments(t *testing.T) {
	tests := []struct {
		input string
		want  []jfmt.Token
		coms  []string
	}{
		{"/* block comment */\n\n\n", []jfmt.Token{jfmt.BlockComment},
			[]string{"/* block comment */"}},
		{"// line 1\n\n// line 2\n", []jfmt.Token{jfmt.LineComment, jfmt.LineComment},
			[]string{"// line 1\n", "// line 2\n"}}, // N.B. includes terminating newline, if present
		{"// line at EOF", []jfmt.Token{jfmt.LineComment},
			[]string{"// line at EOF"}},
		{`{
 "x": 1, // howdy do
 "y" /* hide me */ : 2.0 }`, []jfmt.Token{
			jfmt.LBrace, jfmt.String, jfmt.Colon, jfmt.Integer, jfmt.Comma, jfmt.LineComment,
			jfmt.String, jfmt.BlockComment, jfmt.Colon, jfmt.Number, jfmt.RBrace,
		}, []string{
			"// howdy do\n", "/* hide me */",
		}},
		{"/**\n*/", []jfmt.Token{jfmt.BlockComment}, []string{"/**\n*/"}},
	}

	for _, test := range tests {
		var got []jfmt.Token
		var coms []string
		s := jfmt.NewScanner([]byte(test.input))
		s.AllowComments(true)
		for s.Next() == nil {
			got = append(got, s.Token())
			if tok := s.Token(); tok == jfmt.LineComment || tok == jfmt.BlockComment {
				coms = append(coms, string(s.Text()))
			}
		}
		if s.Err() != io.EOF {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.coms, coms); diff != "" {
			t.Errorf("Input: %#q\nComments: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		estr  string
	}{
		{`@`, `unexpected '@' (offset 0)`},
		{`"what did you`, `unterminated string (offset 13)`},
		{`"bad \x escape"`, `invalid 'x' after escape (offset 6)`},
		{`"bad \uqqqq escape"`, `invalid Unicode escape (offset 7)`},
		{`01`, `extra leading zeroes (offset 2)`},
		{`-`, `missing digits (offset 1)`},
		{`5.`, `no digits after decimal point (offset 2)`},
		{`5e`, `missing exponent digits (offset 2)`},
		{`falsy`, `unknown constant "falsy" (offset 0)`},
		{`/* unterminated`, `unterminated block comment (offset 15)`},
	}

	for _, test := range tests {
		s := jfmt.NewScanner([]byte(test.input))
		s.AllowComments(true)
		var err error
		for {
			if err = s.Next(); err != nil {
				break
			}
		}
		if err == io.EOF {
			t.Errorf("Input: %#q: Next did not report an error", test.input)
			continue
		}
		if got := err.Error(); got != test.estr {
			t.Errorf("Input: %#q\nError: got %q, want %q", test.input, got, test.estr)
		}
	}
}

func TestScannerLocation(t *testing.T) {
	const input = "{\n  \"a\": null\n}"

	want := []jfmt.LineCol{
		{Line: 1, Column: 0}, // {
		{Line: 2, Column: 2}, // "a"
		{Line: 2, Column: 5}, // :
		{Line: 2, Column: 7}, // null
		{Line: 3, Column: 0}, // }
	}
	var got []jfmt.LineCol
	s := jfmt.NewScanner([]byte(input))
	for s.Next() == nil {
		got = append(got, s.Location().First)
	}
	if s.Err() != io.EOF {
		t.Errorf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations: (-want, +got)\n%s", diff)
	}
}
