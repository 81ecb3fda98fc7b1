// Command goargs inspects YAML program definitions: it renders their usage, checks argument
// lists against them and generates shell completion scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/napalu/goargs"
	"github.com/napalu/goargs/util"
)

const (
	exitFailure = 1
	exitUsage   = 64
)

func main() {
	r, err := newRunner(os.Stdout, goargs.WithTerminalWidth(int(os.Stdout.Fd()), util.DefaultTerminal{}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}

	if err = r.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, goargs.ErrUsage) {
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}
}

func newRunner(stdout io.Writer, configs ...goargs.ConfigureRunnerFunc) (*goargs.Runner, error) {
	r, err := goargs.NewRunner("goargs", "Inspect YAML program definitions.",
		append([]goargs.ConfigureRunnerFunc{goargs.WithStdout(stdout)}, configs...)...)
	if err != nil {
		return nil, err
	}

	commands, err := newCommands(stdout)
	if err != nil {
		return nil, err
	}
	for _, command := range commands {
		if err = r.AddCommand(command); err != nil {
			return nil, err
		}
	}

	return r, nil
}
