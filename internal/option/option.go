// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option descriptor and help label construction.
package option

// Requirement - Indicates whether an option binds an argument.
type Requirement int

// Argument requirements
const (
	NoArgument Requirement = iota
	RequiredArgument
	OptionalArgument
)

// Codes inside this range double as the single character short form of the
// option. Codes outside it (by convention >= 1000) identify long only options.
const (
	ShortCodeMin = 33
	ShortCodeMax = 126
)

// DefaultArgName - help placeholder used when the descriptor doesn't set one.
const DefaultArgName = "arg"

// Option - main object
type Option struct {
	Code        int         // Short option character or long only identifier
	Long        string      // Long name, possibly empty
	Description string      // Optional description used for help
	Requirement Requirement // Argument requirement
	ArgName     string      // Arg name used for help
}

// New - Returns a new option object
func New(code int, long string, description string, requirement Requirement) *Option {
	return &Option{
		Code:        code,
		Long:        long,
		Description: description,
		Requirement: requirement,
		ArgName:     DefaultArgName,
	}
}

// SetArgName - Updates the ArgName.
func (opt *Option) SetArgName(s string) *Option {
	if s != "" {
		opt.ArgName = s
	}
	return opt
}

// HasShort - Tells if the code doubles as a printable short option character.
func (opt *Option) HasShort() bool {
	return opt.Code >= ShortCodeMin && opt.Code <= ShortCodeMax
}

// HasLong - Tells if the option has a long name.
func (opt *Option) HasLong() bool {
	return opt.Long != ""
}

// Name - The name used to report the option in error messages, short form
// first when there is one.
func (opt *Option) Name() string {
	if opt.HasShort() {
		return "-" + string(rune(opt.Code))
	}
	return "--" + opt.Long
}

// Label - The help entry label, for example "-o, --output <file>".
// Long only options get four leading spaces, the width "-x, " would have used.
func (opt *Option) Label() string {
	out := ""
	if opt.HasShort() {
		out += "-" + string(rune(opt.Code))
		if opt.HasLong() {
			out += ", "
		}
	} else {
		out += "    "
	}
	if opt.HasLong() {
		out += "--" + opt.Long
	}
	switch opt.Requirement {
	case RequiredArgument:
		out += " <" + opt.ArgName + ">"
	case OptionalArgument:
		// Optional arguments only bind when attached to the option token, show
		// them attached.
		if opt.HasLong() {
			out += "[=" + opt.ArgName + "]"
		} else {
			out += "[" + opt.ArgName + "]"
		}
	}
	return out
}
