// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xgetopt

import (
	"fmt"
	"strings"

	"github.com/rail5/xgetopt/internal/option"
	"github.com/rail5/xgetopt/internal/sliceiterator"
	"github.com/rail5/xgetopt/text"
)

// StopCondition - Determines when a bounded scan stops and hands the rest of
// the argument vector back to the caller as a Remainder.
type StopCondition int

const (
	// AllOptions - Scan the whole vector. Non option arguments are collected
	// in place and scanning continues past them, so options may appear after
	// positionals. The Remainder is always empty.
	AllOptions StopCondition = iota

	// BeforeFirstNonOptionArgument - Stop the instant a non option token
	// would be produced. That token and everything after it, including a
	// still unconsumed "--", become the Remainder untouched.
	BeforeFirstNonOptionArgument

	// AfterFirstNonOptionArgument - Like BeforeFirstNonOptionArgument but the
	// triggering token is appended to the result before stopping.
	AfterFirstNonOptionArgument

	// BeforeFirstError - Stop the instant an unknown option or missing
	// argument error would be raised. The error is suppressed and the
	// offending token starts the Remainder.
	BeforeFirstError
)

// Parse - Scans the full argument vector. argv[0] is the program name and is
// skipped, mirroring what the process receives in os.Args. Unknown options
// and missing required arguments abort the scan.
//
// Each call owns its own cursor: sequential or concurrent calls against the
// same Table don't observe each other.
func (t *Table) Parse(argv []string) (*OptionSequence, error) {
	seq, _, err := t.ParseUntil(argv, AllOptions)
	return seq, err
}

// ParseUntil - Scans the argument vector, argv[0] included as the program
// name, until the stop condition triggers or the vector is exhausted. The
// Remainder holds every token the scan didn't touch.
//
// Under AllOptions, BeforeFirstNonOptionArgument and
// AfterFirstNonOptionArgument an unknown option or missing required argument
// aborts the scan, the partial result is discarded and the error is returned.
// BeforeFirstError instead stops silently with the offending token starting
// the Remainder.
func (t *Table) ParseUntil(argv []string, stop StopCondition) (*OptionSequence, *Remainder, error) {
	args := []string{}
	if len(argv) > 1 {
		args = argv[1:]
	}
	return t.scan(args, stop)
}

func (t *Table) scan(args []string, stop StopCondition) (*OptionSequence, *Remainder, error) {
	seq := &OptionSequence{}
	iterator := sliceiterator.New(args)

	for iterator.Next() {
		value := iterator.Value()
		Logger.Printf("scan token: %q\n", value)

		// Terminator: everything after a literal -- is a non option argument
		// verbatim, even if shaped like an option.
		if value == "--" {
			for iterator.Next() {
				switch stop {
				case BeforeFirstNonOptionArgument:
					return seq, remainderFrom(iterator), nil
				case AfterFirstNonOptionArgument:
					seq.addArg(iterator.Value())
					return seq, remainderAfter(iterator), nil
				default:
					seq.addArg(iterator.Value())
				}
			}
			break
		}

		// Long option
		if strings.HasPrefix(value, "--") {
			opt, arg, err := t.matchLong(value, iterator)
			if err != nil {
				if stop == BeforeFirstError {
					return seq, remainderFrom(iterator), nil
				}
				return nil, nil, err
			}
			seq.addOption(opt.Code, arg)
			continue
		}

		// Short option cluster. A lonesome - is a non option argument.
		if strings.HasPrefix(value, "-") && value != "-" {
			err := t.walkCluster(value, iterator, seq)
			if err != nil {
				if stop == BeforeFirstError {
					return seq, remainderFrom(iterator), nil
				}
				return nil, nil, err
			}
			continue
		}

		// Non option (positional) argument, taken verbatim.
		switch stop {
		case BeforeFirstNonOptionArgument:
			return seq, remainderFrom(iterator), nil
		case AfterFirstNonOptionArgument:
			seq.addArg(value)
			return seq, remainderAfter(iterator), nil
		default:
			seq.addArg(value)
		}
	}

	return seq, &Remainder{Argv: []string{}}, nil
}

// matchLong - Classifies a --token against the known long names and binds its
// argument. The iterator only advances when the next token is consumed as a
// required argument.
func (t *Table) matchLong(token string, iterator *sliceiterator.Iterator) (*option.Option, *string, error) {
	body := strings.TrimPrefix(token, "--")
	name, eqArg, hasEq := strings.Cut(body, "=")
	opt, ok := t.byLong[name]
	if !ok {
		return nil, nil, fmt.Errorf(text.ErrorUnknownOption+"%w", token, ErrorUnknownOption)
	}
	switch opt.Requirement {
	case option.RequiredArgument:
		if hasEq {
			return opt, &eqArg, nil
		}
		if iterator.ExistsNext() {
			iterator.Next()
			v := iterator.Value()
			return opt, &v, nil
		}
		return nil, nil, fmt.Errorf(text.ErrorMissingArgument+"%w", "--"+name, ErrorMissingArgument)
	case option.OptionalArgument:
		// Only an =value suffix binds, never the following token. The
		// asymmetry with short options is deliberate and matches getopt.
		if hasEq {
			return opt, &eqArg, nil
		}
		return opt, nil, nil
	default: // NoArgument
		if hasEq {
			// A value supplied to an option that takes none is rejected the
			// same way an unrecognized option is.
			return nil, nil, fmt.Errorf(text.ErrorUnknownOption+"%w", token, ErrorUnknownOption)
		}
		return opt, nil, nil
	}
}

// walkCluster - Walks the characters of a -xyz token left to right, recording
// one option per character until one of them consumes the rest of the token
// or the following token as its argument. Recognized options are recorded as
// they are found, so under BeforeFirstError the options preceding a bad
// character in the same token survive while the full token starts the
// Remainder.
func (t *Table) walkCluster(token string, iterator *sliceiterator.Iterator, seq *OptionSequence) error {
	chars := token[1:]
	for i := 0; i < len(chars); i++ {
		opt, ok := t.byCode[int(chars[i])]
		if !ok {
			return fmt.Errorf(text.ErrorUnknownOption+"%w", token, ErrorUnknownOption)
		}
		switch opt.Requirement {
		case option.RequiredArgument:
			if rest := chars[i+1:]; rest != "" {
				seq.addOption(opt.Code, &rest)
				return nil
			}
			if iterator.ExistsNext() {
				iterator.Next()
				v := iterator.Value()
				seq.addOption(opt.Code, &v)
				return nil
			}
			return fmt.Errorf(text.ErrorMissingArgument+"%w", opt.Name(), ErrorMissingArgument)
		case option.OptionalArgument:
			if rest := chars[i+1:]; rest != "" {
				seq.addOption(opt.Code, &rest)
				return nil
			}
			// Lookahead: a following token that doesn't start with a dash
			// binds. This excludes other options, the terminator and the
			// lonesome dash.
			if next, ok := iterator.PeekNextValue(); ok && !strings.HasPrefix(next, "-") {
				iterator.Next()
				seq.addOption(opt.Code, &next)
				return nil
			}
			seq.addOption(opt.Code, nil)
		default: // NoArgument
			seq.addOption(opt.Code, nil)
		}
	}
	return nil
}

func remainderFrom(iterator *sliceiterator.Iterator) *Remainder {
	return &Remainder{Argv: iterator.Remaining()}
}

func remainderAfter(iterator *sliceiterator.Iterator) *Remainder {
	return &Remainder{Argv: iterator.RemainingAfter()}
}
