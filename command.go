package goargs

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/napalu/goargs/util"
	orderedmap "github.com/wk8/go-ordered-map"
)

const helpFlag = "help"

// Action is the code run when a command is selected. local gives access to the Results of the
// command's own grammar level and global to the top-level Results. Both views are only live
// for the duration of the call.
type Action func(ctx context.Context, local, global *View) error

// Command is a node of the command tree dispatched by a Runner. Each command owns a Grammar
// holding its options; subcommands are registered with AddSubcommand.
type Command struct {
	name           string
	description    string
	aliases        []string
	category       string
	hidden         bool
	takesArguments bool
	footer         string
	action         Action
	grammar        *Grammar
	subcommands    *orderedmap.OrderedMap
	parent         *Command
	runner         *Runner
}

// NewCommand creates a command called name. The command's grammar starts out with a
// --help/-h flag.
func NewCommand(name, description string, configs ...ConfigureCommandFunc) (*Command, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	c := &Command{
		name:           name,
		description:    description,
		takesArguments: true,
		grammar:        NewGrammar(),
		subcommands:    orderedmap.New(),
	}
	if _, err := addHelpFlag(c.grammar); err != nil {
		return nil, err
	}

	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func addHelpFlag(grammar *Grammar) (*Option, error) {
	return grammar.AddFlag(helpFlag,
		WithAbbr("h"),
		WithNegatable(false),
		WithHelp("Print this usage information."))
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) Description() string {
	return c.description
}

// Summary is the first line of the description, used in command listings.
func (c *Command) Summary() string {
	summary, _, _ := strings.Cut(c.description, "\n")
	return summary
}

func (c *Command) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

func (c *Command) Category() string {
	return c.category
}

func (c *Command) Hidden() bool {
	return c.hidden
}

func (c *Command) TakesArguments() bool {
	return c.takesArguments
}

func (c *Command) Grammar() *Grammar {
	return c.grammar
}

func (c *Command) Parent() *Command {
	return c.parent
}

// Runner returns the runner the command tree is attached to, or nil.
func (c *Command) Runner() *Runner {
	root := c
	for root.parent != nil {
		root = root.parent
	}

	return root.runner
}

// Subcommands returns the direct subcommands in registration order.
func (c *Command) Subcommands() []*Command {
	return commandList(c.subcommands)
}

// Subcommand returns the subcommand registered as name or one of its aliases.
func (c *Command) Subcommand(name string) (*Command, bool) {
	return findCommand(c.subcommands, c.grammar, name)
}

// AddSubcommand attaches sub below c. Its name and aliases become command tokens of c's
// grammar.
func (c *Command) AddSubcommand(sub *Command) error {
	if sub.parent != nil || sub.runner != nil {
		return definitionErrorf(sub.name, "Command %q is already attached.", sub.name)
	}
	if err := registerCommand(c.grammar, c.subcommands, sub); err != nil {
		return err
	}
	sub.parent = c

	return nil
}

func registerCommand(grammar *Grammar, commands *orderedmap.OrderedMap, command *Command) error {
	seen := map[string]bool{}
	for _, token := range append([]string{command.name}, command.aliases...) {
		if _, _, found := grammar.resolveCommand(token); found || seen[token] {
			return definitionErrorf(token, "Duplicate command %q.", token)
		}
		seen[token] = true
	}
	if _, err := grammar.AddCommand(command.name, command.grammar); err != nil {
		return err
	}
	for _, alias := range command.aliases {
		if err := grammar.addCommandAlias(alias, command.name); err != nil {
			return err
		}
	}
	commands.Set(command.name, command)

	return nil
}

func findCommand(commands *orderedmap.OrderedMap, grammar *Grammar, name string) (*Command, bool) {
	if canonical, found := grammar.commandAliases[name]; found {
		name = canonical
	}
	if v, found := commands.Get(name); found {
		return v.(*Command), true
	}

	return nil, false
}

func commandList(commands *orderedmap.OrderedMap) []*Command {
	list := make([]*Command, 0, commands.Len())
	for pair := commands.Oldest(); pair != nil; pair = pair.Next() {
		list = append(list, pair.Value.(*Command))
	}

	return list
}

// Path returns the command names from the top level down to c.
func (c *Command) Path() []string {
	var path []string
	for cmd := c; cmd != nil; cmd = cmd.parent {
		path = append([]string{cmd.name}, path...)
	}

	return path
}

func (c *Command) executableName() string {
	if r := c.Runner(); r != nil {
		return r.executable
	}

	return ""
}

// Invocation is the usage line of the command, e.g. "git remote add [arguments]".
func (c *Command) Invocation() string {
	parts := c.Path()
	if exe := c.executableName(); exe != "" {
		parts = append([]string{exe}, parts...)
	}
	invocation := strings.Join(parts, " ")
	if c.subcommands.Len() > 0 {
		return invocation + " <subcommand> [arguments]"
	}

	return invocation + " [arguments]"
}

func (c *Command) wrap(text string, hangingIndent int) string {
	return util.WrapText(text, c.grammar.usageLineLength, hangingIndent)
}

// Usage renders the description, invocation, options and subcommands of c.
func (c *Command) Usage() string {
	return c.wrap(c.description+"\n\n", 0) + c.usageWithoutDescription()
}

func (c *Command) usageWithoutDescription() string {
	const usagePrefix = "Usage: "

	var b strings.Builder
	b.WriteString(usagePrefix + c.wrap(c.Invocation(), len(usagePrefix)) + "\n")
	b.WriteString(c.grammar.Usage() + "\n")
	if c.subcommands.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(commandListing(commandList(c.subcommands), true, c.grammar.usageLineLength) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(c.wrap(fmt.Sprintf("Run \"%s help\" to see global options.", c.executableName()), 0))
	if c.footer != "" {
		b.WriteString("\n")
		b.WriteString(c.wrap(c.footer, 0))
	}

	return b.String()
}

// UsageException returns a UsageError for message carrying the usage of c.
func (c *Command) UsageException(message string) *UsageError {
	return &UsageError{Message: message, Commands: c.Path(), Usage: c.usageWithoutDescription()}
}

// invoke runs the action with views which are detached once it returns.
func (c *Command) invoke(ctx context.Context, local, global *Results) error {
	live := &atomic.Bool{}
	live.Store(true)
	defer live.Store(false)

	runnerTracer().Debugf("running command %q", strings.Join(c.Path(), " "))

	return c.action(ctx, newView(local, live), newView(global, live))
}

// commandListing lists the visible commands sorted by name and grouped by category. Hidden
// commands are only listed when every command is hidden.
func commandListing(commands []*Command, subcommands bool, lineLength int) string {
	visible := make([]*Command, 0, len(commands))
	for _, c := range commands {
		if !c.hidden {
			visible = append(visible, c)
		}
	}
	if len(visible) == 0 {
		visible = commands
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].name < visible[j].name
	})

	var categories []string
	byCategory := map[string][]*Command{}
	length := 0
	for _, c := range visible {
		if _, found := byCategory[c.category]; !found {
			categories = append(categories, c.category)
		}
		byCategory[c.category] = append(byCategory[c.category], c)
		length = util.Max(length, util.DisplayWidth(c.name))
	}
	sort.Strings(categories)

	var b strings.Builder
	if subcommands {
		b.WriteString("Available subcommands:")
	} else {
		b.WriteString("Available commands:")
	}
	columnStart := length + 5
	for _, category := range categories {
		if category != "" {
			b.WriteString("\n\n" + category)
		}
		for _, c := range byCategory[category] {
			lines := util.WrapTextAsLines(c.Summary(), columnStart, lineLength)
			b.WriteString("\n  " + util.PadRight(c.name, length) + "   " + lines[0])
			for _, line := range lines[1:] {
				b.WriteString("\n" + strings.Repeat(" ", columnStart) + line)
			}
		}
	}

	return b.String()
}
