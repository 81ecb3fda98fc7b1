package goargs

import "fmt"

// ConfigureOptionFunc is used when registering flags, options and multi-options
type ConfigureOptionFunc func(option *Option, err *error)

// WithAbbr sets the single-character short form of an option (used as "-x").
func WithAbbr(abbr string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.abbr = abbr
	}
}

// WithAliases adds alternative long names. Aliases share the name namespace of the grammar.
func WithAliases(aliases ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.aliases = append(option.aliases, aliases...)
	}
}

// WithHelp sets the text shown in the third usage column.
func WithHelp(help string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.help = help
	}
}

// WithValueHelp names the value in usage, rendered as "--name=<valueHelp>".
func WithValueHelp(valueHelp string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.valueHelp = valueHelp
	}
}

// WithFlagDefault sets the value a flag takes when it does not appear on the command line.
func WithFlagDefault(on bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.typeOf != Flag {
			*err = definitionErrorf(option.name, "Option %q is not a flag and cannot take a boolean default.", option.name)
			return
		}
		option.defaultFlag = on
	}
}

// WithNegatable controls whether a flag accepts the "--no-<name>" form. Flags are negatable unless
// configured otherwise.
func WithNegatable(negatable bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.negatable = negatable
		option.negatableSet = true
	}
}

// WithDefault sets the default of a single-value option. On a multi-option it sets a one
// element default list.
func WithDefault(value string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		switch option.typeOf {
		case Flag:
			*err = definitionErrorf(option.name, "Flag %q takes a boolean default.", option.name)
		case Multi:
			option.defaultValues = []string{value}
		default:
			option.defaultValue = value
			option.hasDefault = true
		}
	}
}

// WithDefaults sets the default list of a multi-option.
func WithDefaults(values ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.typeOf == Flag {
			*err = definitionErrorf(option.name, "Flag %q takes a boolean default.", option.name)
			return
		}
		option.defaultValues = append([]string{}, values...)
		if option.typeOf == Single && !option.allowMultiple {
			*err = definitionErrorf(option.name, "Option %q takes a single default value.", option.name)
		}
	}
}

// WithAllowed restricts the values an option accepts.
func WithAllowed(values ...string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.allowed = append([]string{}, values...)
	}
}

// WithAllowedHelp documents each allowed value. When no allowed set was declared, the keys of
// help become the allowed set.
func WithAllowedHelp(help map[string]string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.allowedHelp = make(map[string]string, len(help))
		for k, v := range help {
			option.allowedHelp[k] = v
		}
	}
}

// WithSplitCommas controls whether a multi-option splits each value on ','.
func WithSplitCommas(split bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.splitCommas = split
		option.splitSet = true
	}
}

// AllowMultiple is the legacy way of declaring a multi-option through AddOption.
func AllowMultiple() ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.allowMultiple = true
	}
}

// Hidden removes the option from usage output. It can still be parsed.
func Hidden() ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.hide = true
	}
}

// Mandatory makes parsing fail when the option does not appear on the command line.
func Mandatory() ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.mandatory = true
	}
}

// WithFlagCallback registers a function called once after each parse with the flag's value.
func WithFlagCallback(callback func(value bool)) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.typeOf != Flag {
			*err = callbackTypeError(option, Flag)
			return
		}
		option.callback = func(value any) {
			callback(value.(bool))
		}
	}
}

// WithCallback registers a function called once after each parse with the option's value.
// ok is false when the option was not given and has no default.
func WithCallback(callback func(value string, ok bool)) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.typeOf != Single || option.allowMultiple {
			*err = callbackTypeError(option, Single)
			return
		}
		option.callback = func(value any) {
			s, ok := value.(string)
			callback(s, ok)
		}
	}
}

// WithMultiCallback registers a function called once after each parse with the
// multi-option's values.
func WithMultiCallback(callback func(values []string)) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if option.typeOf != Multi && !option.allowMultiple {
			*err = callbackTypeError(option, Multi)
			return
		}
		option.callback = func(value any) {
			callback(value.([]string))
		}
	}
}

func callbackTypeError(option *Option, want OptionType) *DefinitionError {
	return &DefinitionError{
		Message: fmt.Sprintf("Callback for %q expects a %s but the option is a %s.", option.name, want, option.typeOf),
		Name:    option.name,
		Err:     ErrWrongType,
	}
}
