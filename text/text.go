// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// The strings are exposed as variables so they can be overridden by the
// embedding program before generating any output.
package text

// ErrorUnknownOption - Format used when a token matches no option.
// The argument is the full offending token.
var ErrorUnknownOption = "unknown option '%s'"

// ErrorMissingArgument - Format used when an option requiring an argument has
// nothing left to bind. The argument is the option name with its dashes.
var ErrorMissingArgument = "missing required argument for option '%s'"

// ErrorDuplicateOption - Format used when two descriptors share a code.
var ErrorDuplicateOption = "option '%s' is already defined"

// ErrorDuplicateLongName - Format used when two descriptors share a long name.
var ErrorDuplicateLongName = "long option name '%s' is already defined"
