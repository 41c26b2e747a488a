// Copyright (C) 2024 W. Calder. All Rights Reserved.

// Package ast defines an in-memory tree representation for JSON values, a
// builder that assembles trees from parse events, and a formatter that
// renders trees back to text.
package ast

import (
	"strconv"
	"strings"

	"github.com/wcalder/jfmt"
)

// A Value is an arbitrary JSON value. The concrete types are Null, Bool,
// Int, Real, String, *Array, and *Object. A value's type is fixed at
// construction; only the open container at the top of a builder's stack
// ever gains new children.
type Value interface {
	// JSON returns a compact JSON rendering of the value.
	JSON() string
}

// Null represents the JSON null constant.
type Null struct{}

func (Null) JSON() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// An Int is an integer value.
type Int int64

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

// A Real is a floating-point value.
type Real float64

func (r Real) JSON() string {
	s := strconv.FormatFloat(float64(r), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0" // keep a fractional marker so the value reads back as a real
	}
	return s
}

// A String is a string value. Its contents are unescaped.
type String string

func (s String) JSON() string { return jfmt.Quote(string(s)) }

// An Array is an ordered sequence of values. Duplicates are allowed, and
// insertion order is preserved.
type Array struct {
	Values []Value
}

func (a *Array) JSON() string {
	if len(a.Values) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Len returns the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Object is a collection of key-value members. Keys are unique, and
// members appear in the order their keys were first seen.
type Object struct {
	Members []*Member
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

func (o *Object) JSON() string {
	if len(o.Members) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jfmt.Quote(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Len returns the number of members of o.
func (o *Object) Len() int { return len(o.Members) }
