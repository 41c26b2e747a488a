// Copyright (C) 2024 W. Calder. All Rights Reserved.

// Package jfmt implements a JSON scanner and event-stream parser.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over a complete input
// held in memory. Construct a scanner from a byte slice and call its Next
// method to iterate over the stream. Next advances to the next input
// token and returns nil, or reports an error:
//
//	s := jfmt.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other
// error indicates a lexical error in the input, and carries the byte
// offset where scanning stopped.
//
// # Streaming
//
// The Stream type implements an event-driven stream parser. The parser
// works by calling methods on a Handler value to report the structure of
// the input. In case of error, parsing is terminated and an error of
// concrete type *jfmt.SyntaxError is returned.
//
// Construct a Stream from an io.Reader, and call its Parse method. The
// stream reads the remaining input into memory before scanning. Parse
// returns nil if the input was fully processed without error. If a
// Handler method reports an error, parsing stops and that error is
// returned.
//
//	s := jfmt.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods
// of a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	key        | ObjectKey                 | "key" before a member value
//	array      | BeginArray, EndArray      | [ ... ]
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor value that can be used to retrieve
// location and type information. The Anchor passed to a handler method is
// only valid for the duration of that method call; the handler must copy
// any data it needs to retain beyond the lifetime of the call.
//
// The parser ensures that corresponding Begin and End methods are
// correctly paired, or that a SyntaxError is reported.
package jfmt
