package goargs

import (
	"fmt"
	"sort"
	"time"

	"github.com/napalu/goargs/util"
)

// Results holds the values parsed at one grammar level. When a command was selected, Command
// returns the Results of that command's level. Results are immutable.
type Results struct {
	grammar   *Grammar
	parsed    map[string]any
	name      string
	command   *Results
	rest      []string
	arguments []string
}

func newResults(grammar *Grammar, parsed map[string]any, name string, command *Results, rest, arguments []string) *Results {
	snapshot := make(map[string]any, len(parsed))
	for k, v := range parsed {
		if values, ok := v.([]string); ok {
			v = append([]string{}, values...)
		}
		snapshot[k] = v
	}

	var args []string
	if arguments != nil {
		args = append([]string{}, arguments...)
	}

	return &Results{
		grammar:   grammar,
		parsed:    snapshot,
		name:      name,
		command:   command,
		rest:      append([]string{}, rest...),
		arguments: args,
	}
}

// Name returns the name of the command these results belong to, "" at the top level.
func (r *Results) Name() string {
	return r.name
}

// Command returns the results of the selected command or nil when no command was given.
func (r *Results) Command() *Results {
	return r.command
}

// Rest returns the positional tokens which were not consumed as options or commands.
func (r *Results) Rest() []string {
	return append([]string{}, r.rest...)
}

// Arguments returns the original argument list. It is only recorded at the top level.
func (r *Results) Arguments() []string {
	return append([]string(nil), r.arguments...)
}

// Grammar returns the grammar these results were parsed with.
func (r *Results) Grammar() *Grammar {
	return r.grammar
}

// Options returns the names of every option with a value, parsed or default, sorted.
func (r *Results) Options() []string {
	seen := map[string]bool{}
	for name := range r.parsed {
		seen[name] = true
	}
	for _, option := range r.grammar.Options() {
		seen[option.name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Get returns the parsed value of name or its default: a bool for flags, a string for
// single options (nil when absent) and a []string for multi-options.
func (r *Results) Get(name string) (any, error) {
	option, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	return option.valueOrDefault(r.parsed[option.name]), nil
}

// Flag returns the value of the flag called name.
func (r *Results) Flag(name string) (bool, error) {
	option, err := r.lookupType(name, Flag)
	if err != nil {
		return false, err
	}

	return option.valueOrDefault(r.parsed[option.name]).(bool), nil
}

// Option returns the value of the single-value option called name. The empty string is
// returned for an option which was neither given nor has a default.
func (r *Results) Option(name string) (string, error) {
	option, err := r.lookupType(name, Single)
	if err != nil {
		return "", err
	}
	if s, ok := option.valueOrDefault(r.parsed[option.name]).(string); ok {
		return s, nil
	}

	return "", nil
}

// MultiOption returns the values of the multi-option called name.
func (r *Results) MultiOption(name string) ([]string, error) {
	option, err := r.lookupType(name, Multi)
	if err != nil {
		return nil, err
	}

	return option.valueOrDefault(r.parsed[option.name]).([]string), nil
}

// WasParsed reports whether name was given on the command line, as opposed to taking its
// default.
func (r *Results) WasParsed(name string) (bool, error) {
	option := r.grammar.FindByName(name)
	if option == nil {
		return false, optionNotFoundError(name)
	}
	_, found := r.parsed[option.name]

	return found, nil
}

// Int converts the value of the single-value option called name.
func (r *Results) Int(name string) (int, error) {
	var i int
	err := r.convert(name, &i)

	return i, err
}

// Float converts the value of the single-value option called name.
func (r *Results) Float(name string) (float64, error) {
	var f float64
	err := r.convert(name, &f)

	return f, err
}

// Duration converts the value of the single-value option called name, e.g. "1m30s".
func (r *Results) Duration(name string) (time.Duration, error) {
	var d time.Duration
	err := r.convert(name, &d)

	return d, err
}

// Time converts the value of the single-value option called name. Most common date layouts
// are recognized.
func (r *Results) Time(name string) (time.Time, error) {
	var t time.Time
	err := r.convert(name, &t)

	return t, err
}

func (r *Results) convert(name string, data any) error {
	value, err := r.Option(name)
	if err != nil {
		return err
	}
	if err = util.ConvertString(value, data); err != nil {
		return fmt.Errorf("option %q: %w", name, err)
	}

	return nil
}

func (r *Results) lookup(name string) (*Option, error) {
	option := r.grammar.FindByName(name)
	if option == nil {
		return nil, optionNotFoundError(name)
	}
	if option.mandatory {
		if _, found := r.parsed[option.name]; !found {
			return nil, &DefinitionError{
				Message: fmt.Sprintf("Option %s is mandatory.", option.name),
				Name:    option.name,
				Err:     ErrMandatory,
			}
		}
	}

	return option, nil
}

func (r *Results) lookupType(name string, want OptionType) (*Option, error) {
	option, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	if option.typeOf != want {
		return nil, &DefinitionError{
			Message: fmt.Sprintf("%q is a %s, not a %s.", name, option.typeOf, want),
			Name:    name,
			Err:     ErrWrongType,
		}
	}

	return option, nil
}
