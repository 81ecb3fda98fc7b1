package goargs

// ConfigureCommandFunc is used when defining a Command with NewCommand
type ConfigureCommandFunc func(command *Command, err *error)

// WithAction sets the function run when the command is selected.
func WithAction(action Action) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.action = action
	}
}

// WithCommandAliases registers alternative tokens selecting the command.
func WithCommandAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, alias := range aliases {
			if *err = validateName(alias); *err != nil {
				return
			}
		}
		command.aliases = append(command.aliases, aliases...)
	}
}

// WithCategory groups the command under a heading in command listings.
func WithCategory(category string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.category = category
	}
}

// HiddenCommand leaves the command out of listings. It can still be run.
func HiddenCommand() ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.hidden = true
	}
}

// WithoutArguments makes the command reject positional arguments.
func WithoutArguments() ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.takesArguments = false
	}
}

// WithFooter appends text to the command's usage.
func WithFooter(footer string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.footer = footer
	}
}

// WithGrammar configures the command's grammar, e.g.
//
//	NewCommand("build", "Build the project.",
//		WithGrammar(
//			WithFlag("release", WithAbbr("r")),
//			WithOption("target", WithAllowed("linux", "darwin"))))
func WithGrammar(configs ...ConfigureGrammarFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, config := range configs {
			config(command.grammar, err)
			if *err != nil {
				return
			}
		}
	}
}

// WithPassThrough replaces the command's grammar by one which forwards every token as a
// positional argument. It must precede every other grammar configuration and subcommand.
func WithPassThrough() ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if len(command.grammar.entries) > 1 || command.subcommands.Len() > 0 {
			*err = definitionErrorf(command.name, "Command %q must be made pass-through before adding options or subcommands.", command.name)
			return
		}
		command.grammar = NewPassThroughGrammar()
	}
}

// WithSubcommands is a wrapper for AddSubcommand
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, sub := range subcommands {
			if *err = command.AddSubcommand(sub); *err != nil {
				return
			}
		}
	}
}
