// Copyright (C) 2024 W. Calder. All Rights Reserved.

package ast

import "github.com/fatih/color"

// A Palette assigns terminal colors to the elements of formatted output.
// A nil entry leaves the corresponding element unstyled.
type Palette struct {
	Punct   *color.Color // braces, brackets, commas, colons
	Key     *color.Color // object keys
	String  *color.Color // string values
	Number  *color.Color // integer and real values
	Literal *color.Color // true, false, null
}

// DefaultPalette returns the standard color assignments.
func DefaultPalette() *Palette {
	return &Palette{
		Punct:   color.New(color.Bold),
		Key:     color.New(color.FgBlue, color.Bold),
		String:  color.New(color.FgGreen),
		Number:  color.New(color.FgCyan),
		Literal: color.New(color.FgBlack, color.Bold),
	}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
