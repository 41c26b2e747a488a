// Copyright (C) 2024 W. Calder. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already
// removed.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unquote reports an
// error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	if mem.IndexByte(src, '\\') < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if c != '\\' {
			dec = append(dec, c)
			continue
		}
		i++
		if i >= src.Len() {
			return nil, errors.New("incomplete escape sequence")
		}
		switch e := src.At(i); e {
		case '"', '\\', '/':
			dec = append(dec, e)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			if src.Len()-i-1 < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceFrom(i + 1).SliceTo(4))
			if err != nil {
				dec = utf8.AppendRune(dec, utf8.RuneError)
			} else {
				dec = utf8.AppendRune(dec, rune(v))
			}
			i += 4
		default:
			dec = utf8.AppendRune(dec, utf8.RuneError)
		}
	}
	return dec, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
