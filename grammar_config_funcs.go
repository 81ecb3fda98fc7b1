package goargs

// ConfigureGrammarFunc is used when defining a Grammar with NewGrammarWith
type ConfigureGrammarFunc func(grammar *Grammar, err *error)

// NewGrammarWith allows initialization of Grammar using option functions. The caller should always test for
// error on return because Grammar will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	grammar, err := NewGrammarWith(
//		WithUsageLineLength(80),
//		WithFlag("verbose",
//			WithAbbr("v"),
//			WithHelp("print more output")),
//		WithSeparator("Build:"),
//		WithOption("mode",
//			WithAbbr("m"),
//			WithAllowed("debug", "release"),
//			WithDefault("debug")),
//		WithMultiOption("define",
//			WithAbbr("D"),
//			WithValueHelp("key=value")))
func NewGrammarWith(configs ...ConfigureGrammarFunc) (*Grammar, error) {
	grammar := NewGrammar()

	var err error
	for _, config := range configs {
		config(grammar, &err)
		if err != nil {
			return nil, err
		}
	}

	return grammar, nil
}

// WithTrailingOptions controls whether options following a positional argument are parsed.
// When disabled, the first positional argument ends option parsing.
func WithTrailingOptions(allow bool) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		grammar.allowTrailingOptions = allow
	}
}

// WithUsageLineLength wraps the help column of usage text to length characters.
func WithUsageLineLength(length int) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		grammar.SetUsageLineLength(length)
	}
}

// WithFlag is a wrapper for AddFlag
func WithFlag(name string, configs ...ConfigureOptionFunc) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		_, *err = grammar.AddFlag(name, configs...)
	}
}

// WithOption is a wrapper for AddOption
func WithOption(name string, configs ...ConfigureOptionFunc) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		_, *err = grammar.AddOption(name, configs...)
	}
}

// WithMultiOption is a wrapper for AddMultiOption
func WithMultiOption(name string, configs ...ConfigureOptionFunc) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		_, *err = grammar.AddMultiOption(name, configs...)
	}
}

// WithSeparator is a wrapper for AddSeparator
func WithSeparator(text string) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		*err = grammar.AddSeparator(text)
	}
}

// WithCommand registers a command whose grammar is configured by configs.
func WithCommand(name string, configs ...ConfigureGrammarFunc) ConfigureGrammarFunc {
	return func(grammar *Grammar, err *error) {
		var child *Grammar
		if child, *err = grammar.AddCommand(name); *err != nil {
			return
		}
		for _, config := range configs {
			config(child, err)
			if *err != nil {
				return
			}
		}
	}
}
