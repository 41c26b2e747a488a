// Copyright (C) 2024 W. Calder. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcalder/jfmt"
)

// Structural failures reported by a Builder for event sequences that do
// not describe a single well-formed value.
var (
	// ErrRootClosed means a value event arrived after the top-level value
	// was already complete.
	ErrRootClosed = errors.New("value outside any open container")

	// ErrNoPendingKey means a value event arrived inside an object with no
	// preceding key event.
	ErrNoPendingKey = errors.New("object value without a key")

	// ErrUnbalancedClose means a close event arrived with no open container.
	ErrUnbalancedClose = errors.New("close without matching open")

	// ErrIncomplete means the stream ended with a container still open.
	ErrIncomplete = errors.New("incomplete value")

	// ErrEmptyInput means the stream ended before any value event.
	ErrEmptyInput = errors.New("no value in input")
)

// A Builder assembles a value tree from parse events. It implements
// [jfmt.Handler]; deliver a stream of events to it, then call Root to
// retrieve the finished tree. The zero value is ready for use.
//
// The tree exclusively owns every node it contains. The builder's stack
// holds references to the currently open containers only to record where
// the next value is placed; popping never detaches a node.
//
// A builder holds no resumable state across failures: any error reported
// by one of its methods aborts the whole build.
type Builder struct {
	root  Value
	stack []Value // open containers, each *Object or *Array

	pendingKey string
	hasKey     bool
}

// insert places v as the root if none is set, or appends it to the open
// container at the top of the stack.
func (b *Builder) insert(v Value) error {
	if b.root == nil {
		b.root = v
		return nil
	}
	if len(b.stack) == 0 {
		return ErrRootClosed
	}
	switch top := b.stack[len(b.stack)-1].(type) {
	case *Array:
		top.Values = append(top.Values, v)
	case *Object:
		if !b.hasKey {
			return ErrNoPendingKey
		}
		key := b.pendingKey
		b.hasKey = false

		// The first value bound to a key wins; a duplicate is dropped.
		if top.Find(key) == nil {
			top.Members = append(top.Members, &Member{Key: key, Value: v})
		}
	default:
		panic(fmt.Sprintf("invalid open container %T", top))
	}
	return nil
}

// open inserts a new container and marks it as the open container. A
// container dropped for repeating a key is still pushed, so the stream
// stays balanced; it is discarded with its contents when it is closed.
func (b *Builder) open(v Value) error {
	if err := b.insert(v); err != nil {
		return err
	}
	b.stack = append(b.stack, v)
	return nil
}

func (b *Builder) close() error {
	if len(b.stack) == 0 {
		return ErrUnbalancedClose
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// BeginObject implements part of the jfmt.Handler interface.
func (b *Builder) BeginObject(loc jfmt.Anchor) error { return b.open(new(Object)) }

// EndObject implements part of the jfmt.Handler interface.
func (b *Builder) EndObject(loc jfmt.Anchor) error { return b.close() }

// BeginArray implements part of the jfmt.Handler interface.
func (b *Builder) BeginArray(loc jfmt.Anchor) error { return b.open(new(Array)) }

// EndArray implements part of the jfmt.Handler interface.
func (b *Builder) EndArray(loc jfmt.Anchor) error { return b.close() }

// ObjectKey implements part of the jfmt.Handler interface. The key is
// recorded for the next value inserted into the open object; a key event
// overwrites an unconsumed predecessor.
func (b *Builder) ObjectKey(loc jfmt.Anchor) error {
	key, err := jfmt.Unquote(string(loc.Text()))
	if err != nil {
		return err
	}
	b.pendingKey, b.hasKey = string(key), true
	return nil
}

// Value implements part of the jfmt.Handler interface.
func (b *Builder) Value(loc jfmt.Anchor) error {
	v, err := decodeValue(loc)
	if err != nil {
		return err
	}
	return b.insert(v)
}

// EndOfInput implements part of the jfmt.Handler interface.
func (b *Builder) EndOfInput(loc jfmt.Anchor) {}

// Root returns the completed tree. It reports ErrEmptyInput if no value
// event was seen, or ErrIncomplete if any container is still open. No
// partial tree is returned in either case.
func (b *Builder) Root() (Value, error) {
	if len(b.stack) != 0 {
		return nil, ErrIncomplete
	}
	if b.root == nil {
		return nil, ErrEmptyInput
	}
	return b.root, nil
}

func decodeValue(loc jfmt.Anchor) (Value, error) {
	switch loc.Token() {
	case jfmt.Null:
		return Null{}, nil
	case jfmt.True:
		return Bool(true), nil
	case jfmt.False:
		return Bool(false), nil
	case jfmt.Integer:
		z, err := strconv.ParseInt(string(loc.Text()), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer: %w", err)
		}
		return Int(z), nil
	case jfmt.Number:
		f, err := strconv.ParseFloat(string(loc.Text()), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %w", err)
		}
		return Real(f), nil
	case jfmt.String:
		text, err := jfmt.Unquote(string(loc.Text()))
		if err != nil {
			return nil, err
		}
		return String(text), nil
	default:
		return nil, fmt.Errorf("unknown value %v", loc.Token())
	}
}

// Parse parses a single JSON value from r. Comments are permitted in the
// input and are discarded. Input containing anything beyond the one
// top-level value is an error.
func Parse(r io.Reader) (Value, error) {
	b := new(Builder)
	st := jfmt.NewStream(r)
	st.AllowComments(true)
	if err := st.Parse(b); err != nil {
		return nil, err
	}
	return b.Root()
}
