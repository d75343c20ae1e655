// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xgetopt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return buf
}

// po - expected option occurrence without an argument.
func po(code int) ParsedOption {
	return ParsedOption{code: code}
}

// poArg - expected option occurrence with a bound argument.
func poArg(code int, arg string) ParsedOption {
	return ParsedOption{code: code, arg: &arg}
}

func seqOf(options []ParsedOption, args []string) *OptionSequence {
	return &OptionSequence{options: options, args: args}
}

// seqDiff - compares sequences by their observable content.
func seqDiff(expected, got *OptionSequence) string {
	return cmp.Diff(expected, got,
		cmp.AllowUnexported(OptionSequence{}, ParsedOption{}),
		cmpopts.EquateEmpty(),
		cmp.Comparer(func(a, b *string) bool {
			if a == nil || b == nil {
				return a == b
			}
			return *a == *b
		}),
	)
}
