// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package xgetopt - declarative command line option scanning with selectable
stop conditions and generated, column aligned help text.

Options are declared up front and validated once into an immutable Table:

	table, err := xgetopt.New(
		xgetopt.Option{Code: 'h', Long: "help", Description: "Display this help message"},
		xgetopt.Option{Code: 'o', Long: "output", Description: "Output file",
			Requirement: xgetopt.RequiredArgument, ArgName: "file"},
	)

A Table scans any number of argument vectors without accumulating state, the
cursor lives in the scan call rather than in a package level variable:

	seq, err := table.Parse(os.Args)

Short options cluster ("-vh"), long options take arguments either as
"--output=file" or from the next token, and a literal "--" turns everything
after it into verbatim non option arguments. Optional arguments are
asymmetric on purpose: "--param value" leaves the option bare and makes
"value" a positional, while "-p value" binds it, matching classic getopt
behavior.

ParseUntil bounds the scan and hands back the unconsumed tail, which supports
subcommand dispatch: scan global options until the first positional, look the
positional up as a command and hand Remainder.Argv to the command's own
Table.Parse, which treats its first token as the program name.
*/
package xgetopt

import (
	"fmt"
	"io"
	"log"

	"github.com/rail5/xgetopt/internal/help"
	"github.com/rail5/xgetopt/internal/option"
	"github.com/rail5/xgetopt/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Requirement - Indicates whether an option binds an argument.
type Requirement = option.Requirement

// Argument requirements
const (
	NoArgument       = option.NoArgument
	RequiredArgument = option.RequiredArgument
	OptionalArgument = option.OptionalArgument
)

// Option - Declarative option descriptor.
//
// Code is either a printable character (33-126) acting as the short form, or
// an arbitrary integer >= 1000 identifying a long only option. Long may be
// empty for short only options. ArgName is the help placeholder for the
// option's argument and defaults to "arg".
type Option struct {
	Code        int
	Long        string
	Description string
	Requirement Requirement
	ArgName     string
}

// Table - Immutable, validated option set. Built once with New, then shared
// freely: scans don't mutate it.
type Table struct {
	options []*option.Option
	byCode  map[int]*option.Option
	byLong  map[string]*option.Option
}

// New - Builds a Table from the given descriptors. It fails when two
// descriptors share a code or a non empty long name, wrapping
// ErrorDuplicateDefinition. Validation runs here so a Table is never
// observable in an invalid state.
func New(options ...Option) (*Table, error) {
	t := &Table{
		byCode: map[int]*option.Option{},
		byLong: map[string]*option.Option{},
	}
	for _, e := range options {
		opt := option.New(e.Code, e.Long, e.Description, e.Requirement)
		opt.SetArgName(e.ArgName)
		if _, ok := t.byCode[opt.Code]; ok {
			return nil, fmt.Errorf(text.ErrorDuplicateOption+"%w", opt.Name(), ErrorDuplicateDefinition)
		}
		if opt.HasLong() {
			if _, ok := t.byLong[opt.Long]; ok {
				return nil, fmt.Errorf(text.ErrorDuplicateLongName+"%w", opt.Long, ErrorDuplicateDefinition)
			}
			t.byLong[opt.Long] = opt
		}
		t.byCode[opt.Code] = opt
		t.options = append(t.options, opt)
	}
	return t, nil
}

// HelpConfig - Geometry of the generated help text.
type HelpConfig struct {
	Width  int // Wrap target in columns
	Indent int // Leading spaces before each label
	Gutter int // Spaces between the label column and the description
}

// DefaultHelpConfig - The default geometry: 80 columns, 2 space indent, 1
// space between the label column and the description.
func DefaultHelpConfig() HelpConfig {
	return HelpConfig{
		Width:  help.DefaultWidth,
		Indent: help.DefaultIndent,
		Gutter: help.DefaultGutter,
	}
}

// Help - Return the formatted option list, one entry per descriptor in
// declaration order, descriptions aligned to a common column and word wrapped
// so no line passes 80 characters.
func (t *Table) Help() string {
	return t.HelpWith(DefaultHelpConfig())
}

// HelpWith - Help with custom geometry. Start from DefaultHelpConfig and
// adjust, the zero value is not a usable configuration.
func (t *Table) HelpWith(cfg HelpConfig) string {
	return help.OptionList(t.options, help.Config{
		Width:  cfg.Width,
		Indent: cfg.Indent,
		Gutter: cfg.Gutter,
	})
}
