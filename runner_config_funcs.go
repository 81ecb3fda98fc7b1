package goargs

import (
	"errors"
	"io"

	"github.com/napalu/goargs/util"
)

// ConfigureRunnerFunc is used when defining a Runner with NewRunner
type ConfigureRunnerFunc func(runner *Runner, err *error)

// WithStdout redirects usage output, os.Stdout by default.
func WithStdout(w io.Writer) ConfigureRunnerFunc {
	return func(runner *Runner, err *error) {
		runner.stdout = w
	}
}

// WithUsageFooter appends text to the top-level usage.
func WithUsageFooter(footer string) ConfigureRunnerFunc {
	return func(runner *Runner, err *error) {
		runner.footer = footer
	}
}

// WithLineLength wraps usage text to length characters. Commands added afterwards inherit
// the length unless their grammar sets its own.
func WithLineLength(length int) ConfigureRunnerFunc {
	return func(runner *Runner, err *error) {
		runner.grammar.SetUsageLineLength(length)
	}
}

// WithTerminalWidth sets the line length to the width of the terminal attached to fd. It
// leaves the line length alone when fd is not a terminal. A nil terminal uses
// util.DefaultTerminal.
func WithTerminalWidth(fd int, terminal util.Terminal) ConfigureRunnerFunc {
	return func(runner *Runner, err *error) {
		width, e := util.TerminalWidth(fd, terminal)
		switch {
		case errors.Is(e, util.ErrNotATerminal):
			return
		case e != nil:
			*err = e
			return
		}
		runner.grammar.SetUsageLineLength(width)
	}
}

// WithOutputFunc receives the usage texts printed by "help --split".
func WithOutputFunc(output OutputFunc) ConfigureRunnerFunc {
	return func(runner *Runner, err *error) {
		runner.output = output
	}
}
