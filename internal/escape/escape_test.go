// Copyright (C) 2024 W. Calder. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/wcalder/jfmt/internal/escape"
	"go4.org/mem"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"no escapes here", "no escapes here"},
		{`back\slash`, `back\\slash`},
		{`"quoted"`, `\"quoted\"`},
		{"tab\tnewline\nreturn\r", `tab\tnewline\nreturn\r`},
		{"bell\afeed\f", `bell\u0007feed\f`},
		{"mixed \x01 and ünïcode", `mixed \u0001 and ünïcode`},
	}

	for _, test := range tests {
		if got := string(escape.Quote(mem.S(test.input))); got != test.want {
			t.Errorf("Quote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`a\tb`, "a\tb"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`pi π day`, "pi π day"},
		{`�`, "�"},

		// Invalid escapes are replaced, not rejected.
		{`what\qever`, "what�ever"},
		{`\uxyzw`, "�"},
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{`trailing\`, `short\u0f`}
	for _, test := range tests {
		if got, err := escape.Unquote(mem.S(test)); err == nil {
			t.Errorf("Unquote %#q: got %#q, want error", test, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"ordinary",
		"with \"quotes\" and \\slashes\\",
		"control \x00\x01\x1f chars",
		"multi\nline\ttext\r\n",
		"επιγραφή 碑文 ☃",
	}

	for _, test := range tests {
		enc := escape.Quote(mem.S(test))
		dec, err := escape.Unquote(mem.B(enc))
		if err != nil {
			t.Errorf("Unquote %#q failed: %v", enc, err)
			continue
		}
		if string(dec) != test {
			t.Errorf("Round trip %#q: got %#q", test, dec)
		}
	}
}
