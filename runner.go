package goargs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/napalu/goargs/util"
	"github.com/npillmayer/schuko/tracing"
	orderedmap "github.com/wk8/go-ordered-map"
)

func runnerTracer() tracing.Trace {
	return tracing.Select("goargs.runner")
}

// OutputFunc receives one usage text per command when help is asked to split its output.
// name is the snake_cased command path including the executable, e.g. "git_remote_add".
type OutputFunc func(name, usage string) error

// Runner dispatches a command line to the Command it selects. It owns the top-level Grammar
// (holding the global options) and the tree of commands below it.
type Runner struct {
	executable  string
	description string
	footer      string
	grammar     *Grammar
	commands    *orderedmap.OrderedMap
	stdout      io.Writer
	output      OutputFunc
}

// NewRunner creates a runner for the program called executable. The top-level grammar starts
// out with a --help/-h flag and a help command is registered.
func NewRunner(executable, description string, configs ...ConfigureRunnerFunc) (*Runner, error) {
	r := &Runner{
		executable:  executable,
		description: description,
		grammar:     NewGrammar(),
		commands:    orderedmap.New(),
		stdout:      os.Stdout,
	}
	if _, err := addHelpFlag(r.grammar); err != nil {
		return nil, err
	}

	var err error
	for _, config := range configs {
		config(r, &err)
		if err != nil {
			return nil, err
		}
	}
	if r.output == nil {
		r.output = r.writeSection
	}

	help, err := newHelpCommand(r)
	if err != nil {
		return nil, err
	}
	if err = r.AddCommand(help); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Runner) Executable() string {
	return r.executable
}

func (r *Runner) Description() string {
	return r.description
}

// Grammar returns the top-level grammar. Global options are registered on it.
func (r *Runner) Grammar() *Grammar {
	return r.grammar
}

// Commands returns the top-level commands in registration order.
func (r *Runner) Commands() []*Command {
	return commandList(r.commands)
}

// Command returns the top-level command registered as name or one of its aliases.
func (r *Runner) Command(name string) (*Command, bool) {
	return findCommand(r.commands, r.grammar, name)
}

// AddCommand attaches command to the top level. Grammars of the command tree which do not
// set a usage line length inherit the runner's.
func (r *Runner) AddCommand(command *Command) error {
	if command.parent != nil || command.runner != nil {
		return definitionErrorf(command.name, "Command %q is already attached.", command.name)
	}
	if err := registerCommand(r.grammar, r.commands, command); err != nil {
		return err
	}
	command.runner = r

	if length := r.grammar.usageLineLength; length > 0 {
		walkCommands([]*Command{command}, func(c *Command) bool {
			if c.grammar.usageLineLength == 0 {
				c.grammar.usageLineLength = length
			}
			return true
		})
	}

	return nil
}

// walkCommands visits commands depth first, in the order given, and the subcommands of every
// command for which visit returns true, sorted by name.
func walkCommands(commands []*Command, visit func(c *Command) bool) {
	stack := deque.New()
	for i := len(commands) - 1; i >= 0; i-- {
		stack.PushBack(commands[i])
	}
	for stack.Len() > 0 {
		v, _ := stack.PopBack()
		c := v.(*Command)
		if !visit(c) {
			continue
		}
		children := sortedCommands(c.Subcommands())
		for i := len(children) - 1; i >= 0; i-- {
			stack.PushBack(children[i])
		}
	}
}

func sortedCommands(commands []*Command) []*Command {
	sorted := append([]*Command(nil), commands...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].name < sorted[j].name
	})

	return sorted
}

func (r *Runner) invocation() string {
	return r.executable + " <command> [arguments]"
}

func (r *Runner) wrap(text string, hangingIndent int) string {
	return util.WrapText(text, r.grammar.usageLineLength, hangingIndent)
}

// Usage renders the description, global options and command listing of the program.
func (r *Runner) Usage() string {
	return r.wrap(r.description+"\n\n", 0) + r.usageWithoutDescription()
}

func (r *Runner) usageWithoutDescription() string {
	const usagePrefix = "Usage:"

	var b strings.Builder
	b.WriteString(usagePrefix + " " + r.wrap(r.invocation(), len(usagePrefix)) + "\n\n")
	b.WriteString(r.wrap("Global options:", 0) + "\n")
	b.WriteString(r.grammar.Usage() + "\n\n")
	b.WriteString(commandListing(r.Commands(), false, r.grammar.usageLineLength) + "\n\n")
	b.WriteString(r.wrap(fmt.Sprintf("Run \"%s help <command>\" for more information about a command.", r.executable), 0))
	if r.footer != "" {
		b.WriteString("\n" + r.wrap(r.footer, 0))
	}

	return b.String()
}

// UsageException returns a UsageError for message carrying the top-level usage.
func (r *Runner) UsageException(message string) *UsageError {
	return &UsageError{Message: message, Commands: []string{}, Usage: r.usageWithoutDescription()}
}

func (r *Runner) printUsage(usage string) error {
	_, err := fmt.Fprintln(r.stdout, usage)
	return err
}

// Parse parses args and checks that they select a runnable command: unknown commands,
// missing subcommands and arguments given to a command taking none are reported as
// ParseError.
func (r *Runner) Parse(args []string) (*Results, error) {
	results, err := r.grammar.Parse(args)
	if err != nil {
		return nil, err
	}
	if _, _, _, err = r.resolve(results); err != nil {
		return nil, err
	}

	return results, nil
}

// Run parses args and runs the selected command. Parse errors are returned as UsageError
// carrying the usage of the command they relate to.
func (r *Runner) Run(ctx context.Context, args []string) error {
	results, err := r.Parse(args)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return r.usageErrorFor(pe)
		}
		return err
	}

	return r.RunCommand(ctx, results)
}

// RunCommand runs the command selected by results, which must come from r.Grammar(). A
// --help flag given at any level prints the usage of that level instead. The error of the
// action is returned unchanged.
func (r *Runner) RunCommand(ctx context.Context, results *Results) error {
	command, local, help, err := r.resolve(results)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return r.usageErrorFor(pe)
		}
		return err
	}

	switch {
	case command == nil:
		return r.printUsage(r.Usage())
	case help || command.action == nil:
		return r.printUsage(command.Usage())
	}

	return command.invoke(ctx, local, results)
}

// resolve walks the Results chain along the command tree. It stops early at a level where
// --help was given.
func (r *Runner) resolve(top *Results) (*Command, *Results, bool, error) {
	if helpRequested(top) {
		return nil, top, true, nil
	}

	var (
		command  *Command
		path     []string
		results  = top
		commands = r.commands
		grammar  = r.grammar
	)
	for commands.Len() > 0 {
		if results.Command() == nil {
			rest := results.Rest()
			switch {
			case command == nil && len(rest) > 0:
				return nil, nil, false, &ParseError{
					Message:  fmt.Sprintf("Could not find a command named \"%s\".", rest[0]),
					Commands: []string{},
					Argument: rest[0],
				}
			case command == nil:
				return nil, top, false, nil
			case command.action != nil:
				// A command with an action may run without a subcommand.
			case len(rest) > 0:
				return nil, nil, false, &ParseError{
					Message:  fmt.Sprintf("Could not find a subcommand named \"%s\" for \"%s\".", rest[0], r.commandString(path)),
					Commands: path,
					Argument: rest[0],
				}
			default:
				return nil, nil, false, &ParseError{
					Message:  fmt.Sprintf("Missing subcommand for \"%s\".", r.commandString(path)),
					Commands: path,
				}
			}
			break
		}

		results = results.Command()
		next, found := findCommand(commands, grammar, results.Name())
		if !found {
			return nil, nil, false, &ParseError{
				Message:  fmt.Sprintf("Could not find a command named \"%s\".", results.Name()),
				Commands: path,
				Argument: results.Name(),
			}
		}
		command = next
		path = append(path, command.name)
		runnerTracer().Debugf("selected command %q", r.commandString(path))
		if helpRequested(results) {
			return command, results, true, nil
		}
		commands = command.subcommands
		grammar = command.grammar
	}

	if !command.takesArguments && len(results.Rest()) > 0 {
		return nil, nil, false, &ParseError{
			Message:  fmt.Sprintf("Command \"%s\" does not take any arguments.", command.name),
			Commands: path,
			Argument: results.Rest()[0],
		}
	}

	return command, results, false, nil
}

func helpRequested(results *Results) bool {
	on, err := results.Flag(helpFlag)
	return err == nil && on
}

func (r *Runner) commandString(path []string) string {
	return strings.Join(append([]string{r.executable}, path...), " ")
}

// commandAt returns the command at the end of path, or nil for an empty or unknown path.
func (r *Runner) commandAt(path []string) *Command {
	var command *Command
	commands, grammar := r.commands, r.grammar
	for _, name := range path {
		next, found := findCommand(commands, grammar, name)
		if !found {
			return nil
		}
		command = next
		commands, grammar = command.subcommands, command.grammar
	}

	return command
}

func (r *Runner) usageErrorFor(pe *ParseError) *UsageError {
	var ue *UsageError
	if command := r.commandAt(pe.Commands); command != nil {
		ue = command.UsageException(pe.Message)
	} else {
		ue = r.UsageException(pe.Message)
	}
	ue.Commands = append([]string{}, pe.Commands...)
	ue.Argument = pe.Argument

	return ue
}

// writeSection is the default OutputFunc.
func (r *Runner) writeSection(name, usage string) error {
	_, err := fmt.Fprintf(r.stdout, "==> %s <==\n%s\n\n", name, usage)
	return err
}
