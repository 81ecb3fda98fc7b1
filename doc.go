// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package goargs provides support for declaring command-line grammars, parsing argument
// lists against them and rendering usage text.
//
// A Grammar knows three kinds of options:
//
//	Flag - a boolean option which takes no value ("--verbose", "-v", "--no-verbose")
//	Single - an option which expects a value ("--mode release", "--mode=release", "-mrelease")
//	Multi - an option collecting every value it is given ("--define a,b --define c")
//
// Grammars nest: AddCommand returns the grammar of a sub-command. While parsing a
// sub-command, options it does not know are looked up in its parent grammars, so global
// options may appear after the command name.
//
// Runner and Command build a command-dispatch tree on top of grammars: each Command owns a
// Grammar and an Action which the Runner invokes once the command line has been parsed.
package goargs

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'goargs.parse'
func tracer() tracing.Trace {
	return tracing.Select("goargs.parse")
}
