// Copyright (C) 2024 W. Calder. All Rights Reserved.

package jfmt_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/tailscale/hujson"
	"github.com/wcalder/jfmt"
	"github.com/wcalder/jfmt/ast"
)

func BenchmarkScanner(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := jfmt.NewScanner(input)
			for {
				err := s.Next()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}

				// The standard library Decoder converts tokens to values.
				// For a fair comparison, do the same for strings and numbers.
				switch s.Token() {
				case jfmt.String:
					s.Unescape()
				case jfmt.Integer:
					s.Int64()
				case jfmt.Number:
					s.Float64()
				}
			}
		}
	})
}

func BenchmarkFormat(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}

	b.Run("HuJSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := hujson.Format(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Formatter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			root, err := ast.Parse(bytes.NewReader(input))
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			if err := ast.Format(io.Discard, root); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
