// This file is part of xgetopt.
//
// Copyright (C) 2026  The xgetopt authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xgetopt

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		options []Option
		err     error
	}{
		{"unique definitions", []Option{
			{Code: 'h', Long: "help"},
			{Code: 'v', Long: "verbose"},
			{Code: 1001, Long: "long-only"},
		}, nil},
		{"several empty long names", []Option{
			{Code: 'a'},
			{Code: 'b'},
		}, nil},
		{"duplicate code", []Option{
			{Code: 'v', Long: "verbose"},
			{Code: 'v', Long: "version"},
		}, ErrorDuplicateDefinition},
		{"duplicate long name", []Option{
			{Code: 'o', Long: "output"},
			{Code: 1001, Long: "output"},
		}, ErrorDuplicateDefinition},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table, err := New(c.options...)
			checkError(t, err, c.err)
			if c.err == nil && table == nil {
				t.Error("no table built")
			}
			if c.err != nil && table != nil {
				t.Error("table observable in an invalid state")
			}
		})
	}
}

func TestNewReportsTheCollision(t *testing.T) {
	_, err := New(Option{Code: 'v', Long: "verbose"}, Option{Code: 'v', Long: "version"})
	if err == nil || !strings.Contains(err.Error(), "-v") {
		t.Errorf("error doesn't name the colliding option: %v", err)
	}
	_, err = New(Option{Code: 'o', Long: "output"}, Option{Code: 1001, Long: "output"})
	if err == nil || !strings.Contains(err.Error(), "output") {
		t.Errorf("error doesn't name the colliding long name: %v", err)
	}
}

func TestTableIsIndependentOfTheDescriptorSlice(t *testing.T) {
	descriptors := []Option{
		{Code: 'o', Long: "output", Requirement: RequiredArgument, ArgName: "file"},
	}
	table, err := New(descriptors...)
	if err != nil {
		t.Fatal(err)
	}
	descriptors[0].Long = "mutated"

	seq, err := table.Parse([]string{"prog", "--output=x"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !seq.Called('o') {
		t.Error("table affected by caller side mutation")
	}
}

func TestHelp(t *testing.T) {
	table, err := New(
		Option{Code: 'h', Long: "help", Description: "Display this help message"},
		Option{Code: 'o', Long: "output", Description: "Specify output file", Requirement: RequiredArgument, ArgName: "file"},
	)
	if err != nil {
		t.Fatal(err)
	}
	expected := `  -h, --help          Display this help message
  -o, --output <file> Specify output file
`
	if diff := cmp.Diff(expected, table.Help()); diff != "" {
		t.Errorf("wrong help output (-want +got):\n%s", diff)
	}
}

func TestHelpLinesDontExceed80Chars(t *testing.T) {
	table := setupTable(t)
	got := table.Help()
	for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
		if len(line) > 80 {
			t.Errorf("line longer than 80 characters: %q", line)
		}
	}
	if !strings.Contains(got, "--help") || !strings.Contains(got, "--output") {
		t.Errorf("help doesn't mention the declared options:\n%s", got)
	}
}

func TestHelpWith(t *testing.T) {
	table, err := New(
		Option{Code: 'a', Long: "all", Description: "include everything"},
	)
	if err != nil {
		t.Fatal(err)
	}
	cfg := HelpConfig{Width: 40, Indent: 4, Gutter: 2}
	expected := "    -a, --all  include everything\n"
	if diff := cmp.Diff(expected, table.HelpWith(cfg)); diff != "" {
		t.Errorf("wrong help output (-want +got):\n%s", diff)
	}
}

func TestParsedOptionArgument(t *testing.T) {
	table := setupTable(t)
	seq, err := table.Parse([]string{"prog", "--param", "-o", "out.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, opt := range seq.Options() {
		switch opt.Code() {
		case 'p':
			if opt.HasArgument() {
				t.Error("bare optional option reports an argument")
			}
			if v, ok := opt.Argument(); ok || v != "" {
				t.Errorf("reading an unbound argument returned content: %q", v)
			}
		case 'o':
			if !opt.HasArgument() {
				t.Error("bound argument not reported")
			}
			if v, ok := opt.Argument(); !ok || v != "out.txt" {
				t.Errorf("wrong argument: %q", v)
			}
		}
	}
}

func TestSequenceAccessors(t *testing.T) {
	table := setupTable(t)
	seq, err := table.Parse([]string{"prog", "-o", "a", "--output=b", "file"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if seq.Len() != 2 {
		t.Errorf("wrong length: %d", seq.Len())
	}
	if !seq.Called('o') || seq.Called('h') {
		t.Error("wrong Called results")
	}
	if v, ok := seq.Argument('o'); !ok || v != "b" {
		t.Errorf("wrong argument, last binding should win: %q", v)
	}
	if _, ok := seq.Argument('h'); ok {
		t.Error("argument reported for an option that was never called")
	}
	if diff := cmp.Diff([]string{"file"}, seq.Args()); diff != "" {
		t.Errorf("wrong positionals (-want +got):\n%s", diff)
	}
}

func TestMergePreservesOrder(t *testing.T) {
	a := seqOf([]ParsedOption{po('v')}, []string{"one"})
	b := seqOf([]ParsedOption{poArg('o', "x"), po('h')}, []string{"two"})
	a.Merge(b)
	expected := seqOf(
		[]ParsedOption{po('v'), poArg('o', "x"), po('h')},
		[]string{"one", "two"},
	)
	if diff := seqDiff(expected, a); diff != "" {
		t.Errorf("wrong merged sequence (-want +got):\n%s", diff)
	}
}
