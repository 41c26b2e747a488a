// Copyright (C) 2024 W. Calder. All Rights Reserved.

package escape

import "go4.org/mem"

var hexDigit = []byte("0123456789abcdef")

// Quote escapes the contents of src for inclusion in a JSON string value.
// The result does not include the enclosing quotation marks. Multibyte
// UTF-8 sequences are passed through unmodified.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		switch c := src.At(i); c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if c < ' ' {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[c>>4], hexDigit[c&15])
			} else {
				buf = append(buf, c)
			}
		}
	}
	return buf
}
