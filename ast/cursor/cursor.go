// Copyright (C) 2024 W. Calder. All Rights Reserved.

// Package cursor implements traversal into the structure of a JSON value.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcalder/jfmt/ast"
)

// Path traverses a sequential path into the structure of v, where path
// elements are as documented for the Cursor.Down method, and returns the
// value it arrives at.
func Path(v ast.Value, path ...any) (ast.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// Resolve traverses a dotted path expression like "plugins.2.name" into the
// structure of v. Each dot-separated element names an object member, or an
// element offset when the value at that point is an array. An empty expr
// resolves to v itself.
func Resolve(v ast.Value, expr string) (ast.Value, error) {
	if expr == "" {
		return v, nil
	}
	var path []any
	for _, elt := range strings.Split(expr, ".") {
		if n, err := strconv.Atoi(elt); err == nil {
			path = append(path, n)
		} else {
			path = append(path, elt)
		}
	}
	return Path(v, path...)
}

// A Cursor is a movable pointer into the structure of a JSON value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor positioned at origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position toward its origin, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset returns the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value. If the whole path is consumed the cursor stops on the value
// reached; otherwise traversal stops where it failed and an error is
// recorded, which Err will report.
//
// A string path element resolves a member of an object by key. An int path
// element resolves an offset into an array, or into an object's members in
// order; negative offsets count backward from the end (-1 is last). Any
// other element type is an error.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(*ast.Object)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, t)
			}
			m := obj.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(m.Value)

		case int:
			switch e := cur.(type) {
			case *ast.Array:
				i, ok := fixBound(e.Len(), t)
				if !ok {
					return c.setErrorf("array offset %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Values[i])
			case *ast.Object:
				i, ok := fixBound(e.Len(), t)
				if !ok {
					return c.setErrorf("object offset %d out of bounds (n=%d)", t, e.Len())
				}
				cur = c.push(e.Members[i].Value)
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, t)
			}

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
