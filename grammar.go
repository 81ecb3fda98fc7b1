package goargs

import (
	"fmt"

	"github.com/napalu/goargs/internal/parse"
	orderedmap "github.com/wk8/go-ordered-map"
)

// entry is either an option or a separator; the ordered entry list drives usage rendering.
type entry struct {
	option    *Option
	separator string
}

// Grammar describes the flags, options and commands recognized at one level of a command
// line. Child grammars (commands) are owned by their parent; a parent is only consulted for
// name lookups while parsing.
type Grammar struct {
	options              *orderedmap.OrderedMap
	commands             *orderedmap.OrderedMap
	commandAliases       map[string]string
	entries              []entry
	allowTrailingOptions bool
	usageLineLength      int
	passThrough          bool
}

// NewGrammar returns an empty grammar which accepts options after positional arguments and
// does not wrap usage text.
func NewGrammar() *Grammar {
	return &Grammar{
		options:              orderedmap.New(),
		commands:             orderedmap.New(),
		commandAliases:       map[string]string{},
		allowTrailingOptions: true,
	}
}

// NewPassThroughGrammar returns a grammar which rejects every registration and treats every
// token as positional. It is useful as a command grammar forwarding its arguments verbatim.
func NewPassThroughGrammar() *Grammar {
	g := NewGrammar()
	g.passThrough = true

	return g
}

// AllowsAnything reports whether g is a pass-through grammar.
func (g *Grammar) AllowsAnything() bool {
	return g.passThrough
}

// AllowTrailingOptions reports whether option-like tokens after the first positional token are
// still parsed as options.
func (g *Grammar) AllowTrailingOptions() bool {
	return g.allowTrailingOptions
}

// UsageLineLength returns the wrapping width of usage text, 0 meaning no wrapping.
func (g *Grammar) UsageLineLength() int {
	return g.usageLineLength
}

// SetUsageLineLength changes the wrapping width of usage text. Values <= 0 disable wrapping.
func (g *Grammar) SetUsageLineLength(length int) {
	if length < 0 {
		length = 0
	}
	g.usageLineLength = length
}

// AddFlag registers a boolean option.
func (g *Grammar) AddFlag(name string, configs ...ConfigureOptionFunc) (*Option, error) {
	option := &Option{name: name, typeOf: Flag, negatable: true}

	return g.addOption(option, configs)
}

// AddOption registers an option taking a single value. Using AllowMultiple turns it into a
// multi-option (legacy form of AddMultiOption).
func (g *Grammar) AddOption(name string, configs ...ConfigureOptionFunc) (*Option, error) {
	probe := &Option{name: name, typeOf: Single}
	for _, config := range configs {
		var ignored error
		config(probe, &ignored)
	}

	option := &Option{name: name, typeOf: Single}
	if probe.allowMultiple {
		option.typeOf = Multi
		option.splitCommas = true
	}

	return g.addOption(option, configs)
}

// AddMultiOption registers an option which accumulates values. Values are split on commas
// unless WithSplitCommas(false) is given.
func (g *Grammar) AddMultiOption(name string, configs ...ConfigureOptionFunc) (*Option, error) {
	option := &Option{name: name, typeOf: Multi, splitCommas: true}

	return g.addOption(option, configs)
}

func (g *Grammar) addOption(option *Option, configs []ConfigureOptionFunc) (*Option, error) {
	if g.passThrough {
		return nil, unsupportedError(option.name)
	}

	var err error
	for _, config := range configs {
		config(option, &err)
		if err != nil {
			return nil, err
		}
	}
	if option.allowedHelp != nil && option.allowed == nil {
		option.allowed = option.sortedAllowedHelpKeys()
	}
	if err = option.validate(); err != nil {
		return nil, err
	}

	for _, name := range option.names() {
		if g.FindByName(name) != nil {
			return nil, definitionErrorf(name, "Duplicate option or alias %q.", name)
		}
	}
	if option.abbr != "" {
		if existing := g.FindByAbbreviation(option.abbr); existing != nil {
			return nil, definitionErrorf(option.name, "Abbreviation %q is already used by %q.", option.abbr, existing.name)
		}
	}

	g.options.Set(option.name, option)
	g.entries = append(g.entries, entry{option: option})

	return option, nil
}

// AddCommand registers a command and returns its grammar so that options can be added to it.
// When child is omitted a fresh grammar is created.
func (g *Grammar) AddCommand(name string, child ...*Grammar) (*Grammar, error) {
	if g.passThrough {
		return nil, unsupportedError(name)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, found := g.commands.Get(name); found {
		return nil, definitionErrorf(name, "Duplicate command %q.", name)
	}
	if _, found := g.commandAliases[name]; found {
		return nil, definitionErrorf(name, "Duplicate command %q.", name)
	}

	var grammar *Grammar
	if len(child) > 0 && child[0] != nil {
		grammar = child[0]
	} else {
		grammar = NewGrammar()
	}
	g.commands.Set(name, grammar)

	return grammar, nil
}

// addCommandAlias makes alias resolve to the already registered command name.
func (g *Grammar) addCommandAlias(alias, name string) error {
	if g.passThrough {
		return unsupportedError(alias)
	}
	if _, found := g.commands.Get(name); !found {
		return definitionErrorf(name, "Cannot alias unknown command %q.", name)
	}
	if _, found := g.commands.Get(alias); found {
		return definitionErrorf(alias, "Duplicate command %q.", alias)
	}
	if _, found := g.commandAliases[alias]; found {
		return definitionErrorf(alias, "Duplicate command %q.", alias)
	}
	g.commandAliases[alias] = name

	return nil
}

// AddSeparator inserts a line of text between the options in usage output.
func (g *Grammar) AddSeparator(text string) error {
	if g.passThrough {
		return unsupportedError(text)
	}
	g.entries = append(g.entries, entry{separator: text})

	return nil
}

// FindByName returns the option registered under name or one of its aliases, or nil.
func (g *Grammar) FindByName(name string) *Option {
	if v, found := g.options.Get(name); found {
		return v.(*Option)
	}
	for pair := g.options.Oldest(); pair != nil; pair = pair.Next() {
		option := pair.Value.(*Option)
		for _, alias := range option.aliases {
			if alias == name {
				return option
			}
		}
	}

	return nil
}

// FindByAbbreviation returns the option whose abbreviation is exactly abbr, or nil.
func (g *Grammar) FindByAbbreviation(abbr string) *Option {
	for pair := g.options.Oldest(); pair != nil; pair = pair.Next() {
		option := pair.Value.(*Option)
		if option.abbr != "" && option.abbr == abbr {
			return option
		}
	}

	return nil
}

// Options returns the registered options in registration order.
func (g *Grammar) Options() []*Option {
	options := make([]*Option, 0, g.options.Len())
	for pair := g.options.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Value.(*Option))
	}

	return options
}

// Commands returns the names of the registered commands in registration order.
func (g *Grammar) Commands() []string {
	names := make([]string, 0, g.commands.Len())
	for pair := g.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}

	return names
}

// Command returns the grammar of the command called name (or aliased as name).
func (g *Grammar) Command(name string) (*Grammar, bool) {
	if canonical, found := g.commandAliases[name]; found {
		name = canonical
	}
	if v, found := g.commands.Get(name); found {
		return v.(*Grammar), true
	}

	return nil, false
}

// resolveCommand maps a token to a canonical command name.
func (g *Grammar) resolveCommand(token string) (string, *Grammar, bool) {
	name := token
	if canonical, found := g.commandAliases[token]; found {
		name = canonical
	}
	if v, found := g.commands.Get(name); found {
		return name, v.(*Grammar), true
	}

	return "", nil, false
}

// DefaultFor returns the registered default of the option called name.
func (g *Grammar) DefaultFor(name string) (any, error) {
	option := g.FindByName(name)
	if option == nil {
		return nil, optionNotFoundError(name)
	}

	return option.Default(), nil
}

// Parse matches args against the grammar. args is never modified.
func (g *Grammar) Parse(args []string) (*Results, error) {
	tokens := append([]string(nil), args...)

	return newParser("", g, parse.NewState(tokens), nil).parse(tokens)
}

// ParseString splits line the way a POSIX shell would and parses the resulting tokens.
func (g *Grammar) ParseString(line string) (*Results, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	return g.Parse(args)
}

// Usage renders the options of the grammar as an aligned table.
func (g *Grammar) Usage() string {
	return newUsageWriter(g.entries, g.usageLineLength).generate()
}

func unsupportedError(name string) *DefinitionError {
	return &DefinitionError{Message: "unsupported", Name: name, Err: ErrUnsupported}
}

func optionNotFoundError(name string) *DefinitionError {
	return &DefinitionError{
		Message: fmt.Sprintf("Could not find an option named \"--%s\".", name),
		Name:    name,
		Err:     ErrOptionNotFound,
	}
}
