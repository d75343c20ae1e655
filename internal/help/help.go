// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - column aligned, line wrapped option list generation.
package help

import (
	"strings"

	"github.com/rail5/xgetopt/internal/option"
)

// Config - Geometry of the generated text.
type Config struct {
	Width  int // Wrap target in columns
	Indent int // Leading spaces before each label
	Gutter int // Spaces between the label column and the description
}

// Default geometry
const (
	DefaultWidth  = 80
	DefaultIndent = 2
	DefaultGutter = 1
)

// DefaultConfig - Returns the default geometry.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Indent: DefaultIndent, Gutter: DefaultGutter}
}

// OptionList - Return a formatted list of options and their descriptions, one
// entry per option in the given order. Labels are padded so every description
// starts at the same column and descriptions are word wrapped to cfg.Width.
func OptionList(options []*option.Option, cfg Config) string {
	labelWidth := 0
	for _, opt := range options {
		if l := len(opt.Label()); l > labelWidth {
			labelWidth = l
		}
	}
	// Column where every description block starts.
	column := cfg.Indent + labelWidth + cfg.Gutter

	var out strings.Builder
	for _, opt := range options {
		label := opt.Label()
		words := strings.Fields(opt.Description)
		if len(words) == 0 {
			// No description, emit the label alone to avoid trailing spaces.
			out.WriteString(strings.Repeat(" ", cfg.Indent))
			out.WriteString(label)
			out.WriteString("\n")
			continue
		}
		out.WriteString(strings.Repeat(" ", cfg.Indent))
		out.WriteString(label)
		out.WriteString(strings.Repeat(" ", column-cfg.Indent-len(label)))
		wrap(&out, words, column, cfg.Width)
	}
	return out.String()
}

// wrap - Greedy word wrap. The cursor starts at the description column and
// continuation lines are indented back to it. A word only moves to the next
// line when it doesn't fit and the cursor already moved past the column, so a
// word longer than the remaining width still gets placed rather than
// producing an empty line. The separating space counts toward the width.
func wrap(out *strings.Builder, words []string, column int, width int) {
	cursor := column
	for i, word := range words {
		if i > 0 {
			if cursor+1+len(word) > width && cursor != column {
				out.WriteString("\n")
				out.WriteString(strings.Repeat(" ", column))
				cursor = column
			} else {
				out.WriteString(" ")
				cursor++
			}
		}
		out.WriteString(word)
		cursor += len(word)
	}
	out.WriteString("\n")
}
