// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xgetopt

// ParsedOption - A single recognized option occurrence.
type ParsedOption struct {
	code int
	arg  *string
}

// Code - The matched descriptor's code.
func (p ParsedOption) Code() int {
	return p.code
}

// HasArgument - Tells if the occurrence bound an argument during the scan.
func (p ParsedOption) HasArgument() bool {
	return p.arg != nil
}

// Argument - The bound argument. ok is false when the occurrence carried
// none, there is no default value to read through.
func (p ParsedOption) Argument() (value string, ok bool) {
	if p.arg == nil {
		return "", false
	}
	return *p.arg, true
}

// OptionSequence - Scan result: recognized options and non option arguments,
// each list in the order the tokens appeared in the argument vector.
type OptionSequence struct {
	options []ParsedOption
	args    []string
}

func (seq *OptionSequence) addOption(code int, arg *string) {
	seq.options = append(seq.options, ParsedOption{code: code, arg: arg})
}

func (seq *OptionSequence) addArg(s string) {
	seq.args = append(seq.args, s)
}

// Options - The recognized options in encounter order.
func (seq *OptionSequence) Options() []ParsedOption {
	return seq.options
}

// Args - The non option (positional) arguments in encounter order.
func (seq *OptionSequence) Args() []string {
	return seq.args
}

// Len - Number of recognized options.
func (seq *OptionSequence) Len() int {
	return len(seq.options)
}

// Called - Tells if the option with the given code was recognized at least
// once.
func (seq *OptionSequence) Called(code int) bool {
	for _, p := range seq.options {
		if p.code == code {
			return true
		}
	}
	return false
}

// Argument - The argument bound by the last occurrence of the given option
// that carried one. ok is false when the option was never called with an
// argument.
func (seq *OptionSequence) Argument(code int) (value string, ok bool) {
	for i := len(seq.options) - 1; i >= 0; i-- {
		if seq.options[i].code == code && seq.options[i].arg != nil {
			return *seq.options[i].arg, true
		}
	}
	return "", false
}

// Merge - Appends the other sequence's options and positionals, preserving
// the relative order of both lists. Used to combine the results of repeated
// bounded scans.
func (seq *OptionSequence) Merge(other *OptionSequence) {
	seq.options = append(seq.options, other.options...)
	seq.args = append(seq.args, other.args...)
}

// Remainder - The unconsumed tail of the argument vector after a bounded
// scan. Argv aliases the original vector, Argv[0] is the token that triggered
// the stop. Handing Argv to a fresh Parse call runs a nested scan that treats
// that first token as the program name, which is how subcommand option
// parsing chains off a BeforeFirstNonOptionArgument scan.
type Remainder struct {
	Argv []string
}

// Argc - Number of unconsumed tokens.
func (r *Remainder) Argc() int {
	return len(r.Argv)
}
