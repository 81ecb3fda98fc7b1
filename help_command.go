package goargs

import (
	"context"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

const (
	helpAllFlag   = "all"
	helpSplitFlag = "split"
)

func newHelpCommand(r *Runner) (*Command, error) {
	return NewCommand(helpFlag, fmt.Sprintf("Display help information for %s.", r.executable),
		WithGrammar(
			WithFlag(helpAllFlag,
				WithNegatable(false),
				WithHelp("Print the usage of every command.")),
			WithFlag(helpSplitFlag,
				WithNegatable(false),
				WithHelp("Print the usage of every command as a separate output."))),
		WithAction(r.help))
}

// help prints the usage of the runner or of the command named by the positional arguments.
// With --all or --split the usage of every command below that point is printed.
func (r *Runner) help(ctx context.Context, local, global *View) error {
	rest, err := local.Rest()
	if err != nil {
		return err
	}
	all, err := local.Flag(helpAllFlag)
	if err != nil {
		return err
	}
	split, err := local.Flag(helpSplitFlag)
	if err != nil {
		return err
	}

	var command *Command
	commands, grammar := r.commands, r.grammar
	commandString := r.executable
	for _, name := range rest {
		if commands.Len() == 0 {
			return command.UsageException(fmt.Sprintf("Command \"%s\" does not expect a subcommand.", commandString))
		}
		next, found := findCommand(commands, grammar, name)
		if !found {
			if command == nil {
				return r.UsageException(fmt.Sprintf("Could not find a command named \"%s\".", name))
			}
			return command.UsageException(fmt.Sprintf("Could not find a subcommand named \"%s\" for \"%s\".", name, commandString))
		}
		command = next
		commands, grammar = command.subcommands, command.grammar
		commandString += " " + name
	}

	switch {
	case split:
		return r.dumpUsage(command, true)
	case all:
		return r.dumpUsage(command, false)
	case command == nil:
		return r.printUsage(r.Usage())
	}

	return r.printUsage(command.Usage())
}

type usageSection struct {
	name  string
	usage string
}

// usageSections collects the usage of start and of every visible command below it, depth
// first and sorted by name. A nil start means the whole program.
func (r *Runner) usageSections(start *Command) []usageSection {
	var sections []usageSection
	var roots []*Command
	if start == nil {
		sections = append(sections, usageSection{name: r.executable, usage: r.Usage()})
		roots = sortedCommands(r.Commands())
	} else {
		roots = []*Command{start}
	}

	walkCommands(roots, func(c *Command) bool {
		if c.hidden && c != start {
			return false
		}
		sections = append(sections, usageSection{name: r.commandString(c.Path()), usage: c.Usage()})
		return true
	})

	return sections
}

// dumpUsage writes the collected usage texts either to the runner output as one text or
// through the OutputFunc one by one.
func (r *Runner) dumpUsage(start *Command, split bool) error {
	sections := r.usageSections(start)
	if !split {
		texts := make([]string, len(sections))
		for i, s := range sections {
			texts[i] = s.usage
		}
		return r.printUsage(strings.Join(texts, "\n\n"))
	}

	for _, s := range sections {
		if err := r.output(strcase.ToSnake(s.name), s.usage); err != nil {
			return err
		}
	}

	return nil
}
