// Copyright (C) 2024 W. Calder. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcalder/jfmt"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the whitespace written per nesting level.
	// If empty, two spaces are used.
	Indent string

	// MaxDepth limits container nesting during formatting. If positive,
	// formatting a tree nested more deeply fails rather than exhausting
	// the call stack. Zero means no limit.
	MaxDepth int

	// Palette colorizes the output for terminals if non-nil.
	Palette *Palette
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the
// settings from f. A write failure of w is propagated to the caller.
func (f Formatter) Format(w io.Writer, v Value) error {
	p := &printer{w: w, f: f}
	p.value(v, "", 0)
	return p.err
}

// A printer tracks the output sink and the first write error encountered.
// Once an error is recorded, the remaining output is discarded.
type printer struct {
	w   io.Writer
	f   Formatter
	err error
}

func (p *printer) print(ss ...string) {
	for _, s := range ss {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) value(v Value, indent string, depth int) {
	if p.err != nil {
		return
	}
	if p.f.MaxDepth > 0 && depth > p.f.MaxDepth {
		p.err = fmt.Errorf("maximum depth %d exceeded", p.f.MaxDepth)
		return
	}
	switch t := v.(type) {
	case *Array:
		p.array(t, indent, depth)
	case *Object:
		p.object(t, indent, depth)
	case Null, Bool, Int, Real, String:
		p.print(p.scalar(t))
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (p *printer) array(a *Array, indent string, depth int) {
	if len(a.Values) == 0 {
		p.print(p.punct("[]"))
		return
	}
	adent := indent + p.f.indent()
	p.print(p.punct("["), "\n")
	for i, v := range a.Values {
		if i > 0 {
			p.print(p.punct(","), "\n")
		}
		p.print(adent)
		p.value(v, adent, depth+1)
	}
	p.print("\n", indent, p.punct("]"))
}

func (p *printer) object(o *Object, indent string, depth int) {
	if len(o.Members) == 0 {
		p.print(p.punct("{}"))
		return
	}
	mdent := indent + p.f.indent()
	p.print(p.punct("{"), "\n")
	for i, m := range o.Members {
		if i > 0 {
			p.print(p.punct(","), "\n")
		}
		p.print(mdent, p.key(m.Key), p.punct(":"), " ")
		p.value(m.Value, mdent, depth+1)
	}
	p.print("\n", indent, p.punct("}"))
}

func (p *printer) scalar(v Value) string {
	s := v.JSON()
	pal := p.f.Palette
	if pal == nil {
		return s
	}
	switch v.(type) {
	case String:
		return paint(pal.String, s)
	case Int, Real:
		return paint(pal.Number, s)
	default:
		return paint(pal.Literal, s)
	}
}

func (p *printer) key(key string) string {
	s := jfmt.Quote(key)
	if pal := p.f.Palette; pal != nil {
		return paint(pal.Key, s)
	}
	return s
}

func (p *printer) punct(s string) string {
	if pal := p.f.Palette; pal != nil {
		return paint(pal.Punct, s)
	}
	return s
}
