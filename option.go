package goargs

import (
	"sort"
	"strings"
)

// OptionType used to define Option types (Flag, Single, Multi)
type OptionType int

const (
	// Flag denotes a boolean option which takes no value
	Flag OptionType = iota
	// Single denotes an option accepting one value - the last occurrence wins
	Single
	// Multi denotes an option accumulating every value it is given
	Multi
)

func (t OptionType) String() string {
	switch t {
	case Flag:
		return "flag"
	case Single:
		return "option"
	case Multi:
		return "multi-option"
	}

	return "unknown"
}

// Option describes a single flag, option or multi-option of a Grammar. Options are created
// through Grammar.AddFlag, Grammar.AddOption and Grammar.AddMultiOption and are read-only
// afterwards.
type Option struct {
	name          string
	abbr          string
	aliases       []string
	help          string
	valueHelp     string
	typeOf        OptionType
	negatable     bool
	mandatory     bool
	hide          bool
	splitCommas   bool
	allowMultiple bool
	splitSet      bool
	negatableSet  bool
	defaultFlag   bool
	defaultValue  string
	hasDefault    bool
	defaultValues []string
	allowed       []string
	allowedHelp   map[string]string
	callback      func(value any)
}

func (o *Option) Name() string {
	return o.name
}

// Abbr returns the single-character abbreviation or "" when none was set.
func (o *Option) Abbr() string {
	return o.abbr
}

func (o *Option) Aliases() []string {
	return append([]string(nil), o.aliases...)
}

func (o *Option) Help() string {
	return o.help
}

func (o *Option) ValueHelp() string {
	return o.valueHelp
}

func (o *Option) Type() OptionType {
	return o.typeOf
}

func (o *Option) IsFlag() bool {
	return o.typeOf == Flag
}

func (o *Option) IsSingle() bool {
	return o.typeOf == Single
}

func (o *Option) IsMultiple() bool {
	return o.typeOf == Multi
}

// Negatable is only ever true for flags.
func (o *Option) Negatable() bool {
	return o.typeOf == Flag && o.negatable
}

func (o *Option) Mandatory() bool {
	return o.mandatory
}

func (o *Option) Hidden() bool {
	return o.hide
}

func (o *Option) SplitCommas() bool {
	return o.typeOf == Multi && o.splitCommas
}

// Allowed returns the accepted values or nil when any value is accepted.
func (o *Option) Allowed() []string {
	if o.allowed == nil {
		return nil
	}

	return append([]string(nil), o.allowed...)
}

// AllowedHelp returns the per-value help texts or nil when none were declared.
func (o *Option) AllowedHelp() map[string]string {
	if o.allowedHelp == nil {
		return nil
	}
	help := make(map[string]string, len(o.allowedHelp))
	for k, v := range o.allowedHelp {
		help[k] = v
	}

	return help
}

// Default returns the registered default: a bool for flags, a string for single options
// (nil when none was registered) and a []string for multi-options.
func (o *Option) Default() any {
	switch o.typeOf {
	case Flag:
		return o.defaultFlag
	case Multi:
		return append([]string{}, o.defaultValues...)
	default:
		if !o.hasDefault {
			return nil
		}
		return o.defaultValue
	}
}

// HasDefault reports whether usage should mention a default value.
func (o *Option) HasDefault() bool {
	switch o.typeOf {
	case Flag:
		return o.defaultFlag
	case Multi:
		return len(o.defaultValues) > 0
	default:
		return o.hasDefault
	}
}

func (o *Option) valueOrDefault(value any) any {
	if value != nil {
		if values, ok := value.([]string); ok {
			return append([]string{}, values...)
		}
		return value
	}

	return o.Default()
}

func (o *Option) isAllowed(value string) bool {
	if o.allowed == nil {
		return true
	}
	for _, a := range o.allowed {
		if a == value {
			return true
		}
	}

	return false
}

func (o *Option) isDefault(value string) bool {
	switch o.typeOf {
	case Multi:
		for _, d := range o.defaultValues {
			if d == value {
				return true
			}
		}
		return false
	case Single:
		return o.hasDefault && o.defaultValue == value
	}

	return false
}

func (o *Option) sortedAllowedHelpKeys() []string {
	keys := make([]string, 0, len(o.allowedHelp))
	for k := range o.allowedHelp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (o *Option) names() []string {
	return append([]string{o.name}, o.aliases...)
}

func (o *Option) validate() error {
	if err := validateName(o.name); err != nil {
		return err
	}
	seen := map[string]bool{o.name: true}
	for _, alias := range o.aliases {
		if err := validateName(alias); err != nil {
			return err
		}
		if seen[alias] {
			return definitionErrorf(alias, "Duplicate option or alias %q.", alias)
		}
		seen[alias] = true
	}
	if o.abbr != "" {
		if len([]rune(o.abbr)) != 1 {
			return definitionErrorf(o.name, "Abbreviation %q of option %q must be a single character.", o.abbr, o.name)
		}
		if o.abbr == "-" {
			return definitionErrorf(o.name, "Abbreviation of option %q cannot be \"-\".", o.name)
		}
		if !isLetterOrDigit(rune(o.abbr[0])) {
			return definitionErrorf(o.name, "Abbreviation %q of option %q is an invalid character.", o.abbr, o.name)
		}
	}
	if o.typeOf != Flag && o.negatableSet && o.negatable {
		return definitionErrorf(o.name, "Option %q is not a flag and cannot be negatable.", o.name)
	}
	if o.typeOf != Multi && o.splitSet {
		return definitionErrorf(o.name, "Option %q sets splitCommas but does not allow multiple values.", o.name)
	}
	if o.mandatory {
		if o.typeOf == Flag {
			return definitionErrorf(o.name, "Flag %q cannot be mandatory.", o.name)
		}
		if o.HasDefault() {
			return definitionErrorf(o.name, "The option %s cannot be mandatory and have a default value.", o.name)
		}
	}
	if o.allowed != nil && o.typeOf == Flag {
		return definitionErrorf(o.name, "Flag %q cannot restrict its allowed values.", o.name)
	}
	for value := range o.allowedHelp {
		if o.allowed != nil && !o.isAllowed(value) {
			return definitionErrorf(o.name, "Help was given for %q which is not an allowed value of option %q.", value, o.name)
		}
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return definitionErrorf(name, "Name cannot be empty.")
	}
	if strings.HasPrefix(name, "-") {
		return definitionErrorf(name, "Name %s cannot start with \"-\".", name)
	}
	for _, r := range name {
		if !isLetterDigitHyphenOrUnderscore(r) {
			return definitionErrorf(name, "Name %q contains invalid characters.", name)
		}
	}

	return nil
}

func isLetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isLetterDigitHyphenOrUnderscore(r rune) bool {
	return isLetterOrDigit(r) || r == '-' || r == '_'
}
