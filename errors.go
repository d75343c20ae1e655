// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xgetopt

import "errors"

// ErrorUnknownOption - Indicates that a token looked like an option but
// matched no descriptor. Check with errors.Is.
var ErrorUnknownOption = errors.New("")

// ErrorMissingArgument - Indicates that an option requiring an argument had
// nothing left to bind. Check with errors.Is.
var ErrorMissingArgument = errors.New("")

// ErrorDuplicateDefinition - Indicates that two descriptors collided on code
// or long name during Table construction. Check with errors.Is.
var ErrorDuplicateDefinition = errors.New("")
