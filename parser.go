package goargs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/goargs/internal/parse"
)

// parser matches one grammar level. One parser exists per level entered during a single
// Grammar.Parse call; all of them share the token state.
type parser struct {
	commandName string
	grammar     *Grammar
	state       parse.State
	parent      *parser
	results     map[string]any
	rest        []string
}

func newParser(commandName string, grammar *Grammar, state parse.State, parent *parser) *parser {
	return &parser{
		commandName: commandName,
		grammar:     grammar,
		state:       state,
		parent:      parent,
		results:     map[string]any{},
		rest:        []string{},
	}
}

// parse consumes tokens until the grammar level is exhausted. arguments is recorded on the
// results of the top level only.
func (p *parser) parse(arguments []string) (*Results, error) {
	if p.grammar.passThrough {
		rest := p.state.Drain()
		return newResults(p.grammar, map[string]any{}, p.commandName, nil, rest, arguments), nil
	}

	var commandResults *Results
	for !p.state.Done() {
		current := p.state.Current()
		if current == "--" {
			p.state.Consume()
			break
		}

		// Commands are checked before options so that commands may have option-like names.
		if name, grammar, found := p.grammar.resolveCommand(current); found {
			if len(p.rest) > 0 {
				return nil, p.fail("Cannot specify arguments before a command.", current)
			}
			p.state.Consume()
			tracer().Debugf("entering command %q", name)
			child := newParser(name, grammar, p.state, p)
			results, err := child.parse(nil)
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					return nil, pe.withCommand(name)
				}
				return nil, err
			}
			commandResults = results
			p.rest = p.rest[:0]
			break
		}

		matched, err := p.parseSoloOption()
		if err != nil {
			return nil, err
		}
		if matched {
			continue
		}
		if matched, err = p.parseAbbreviation(p); err != nil {
			return nil, err
		}
		if matched {
			continue
		}
		if matched, err = p.parseLongOption(); err != nil {
			return nil, err
		}
		if matched {
			continue
		}

		// Neither option nor command: stop here unless options may follow positionals.
		if !p.grammar.allowTrailingOptions {
			break
		}
		p.rest = append(p.rest, p.state.Consume())
	}

	for _, option := range p.grammar.Options() {
		value, parsed := p.results[option.name]
		if option.mandatory && !parsed {
			return nil, p.fail(fmt.Sprintf("Option %s is mandatory.", option.name), option.name)
		}
		if option.callback != nil {
			option.callback(option.valueOrDefault(value))
		}
	}

	p.rest = append(p.rest, p.state.Drain()...)

	return newResults(p.grammar, p.results, p.commandName, commandResults, p.rest, arguments), nil
}

// parseSoloOption handles a lone abbreviation such as "-a".
func (p *parser) parseSoloOption() (bool, error) {
	arg := p.state.Current()
	if len(arg) != 2 || arg[0] != '-' || !isLetterOrDigit(rune(arg[1])) {
		return false, nil
	}

	return p.handleSoloOption(arg[1:])
}

func (p *parser) handleSoloOption(abbr string) (bool, error) {
	option := p.grammar.FindByAbbreviation(abbr)
	if option == nil {
		if p.parent == nil {
			return false, p.fail(fmt.Sprintf("Could not find an option or flag \"-%s\".", abbr), "-"+abbr)
		}
		tracer().Debugf("abbreviation -%s not in %q, trying parent", abbr, p.commandName)
		return p.parent.handleSoloOption(abbr)
	}

	p.state.Consume()
	if option.IsFlag() {
		p.setFlag(option, true)
		return true, nil
	}

	return true, p.readNextArgAsValue(option, "-"+abbr)
}

// parseAbbreviation handles clusters of abbreviations such as "-abc" and abbreviations with an
// attached value such as "-mrelease".
func (p *parser) parseAbbreviation(innermost *parser) (bool, error) {
	arg := p.state.Current()
	if len(arg) < 2 || arg[0] != '-' {
		return false, nil
	}

	index := 1
	for index < len(arg) && isLetterOrDigit(rune(arg[index])) {
		index++
	}
	if index == 1 {
		return false, nil
	}

	lettersAndDigits := arg[1:index]
	rest := arg[index:]
	if strings.ContainsAny(rest, "\n\r") {
		return false, nil
	}

	return p.handleAbbreviation(lettersAndDigits, rest, innermost)
}

func (p *parser) handleAbbreviation(lettersAndDigits, rest string, innermost *parser) (bool, error) {
	c := lettersAndDigits[:1]
	first := p.grammar.FindByAbbreviation(c)
	if first == nil {
		if p.parent == nil {
			return false, p.fail(fmt.Sprintf("Could not find an option with short name \"-%s\".", c), "-"+c)
		}
		return p.parent.handleAbbreviation(lettersAndDigits, rest, innermost)
	}

	if !first.IsFlag() {
		// The first character takes the remainder of the token as its value.
		if err := p.setOption(first, lettersAndDigits[1:]+rest, "-"+c); err != nil {
			return false, err
		}
	} else {
		if rest != "" {
			return false, p.fail(fmt.Sprintf("Option \"-%s\" is a flag and cannot handle value \"%s%s\".", c, lettersAndDigits[1:], rest), "-"+c)
		}
		p.setFlag(first, true)
		// The remaining characters must be flags of the innermost command.
		for i := 1; i < len(lettersAndDigits); i++ {
			if err := innermost.parseShortFlag(lettersAndDigits[i : i+1]); err != nil {
				return false, err
			}
		}
	}
	p.state.Consume()

	return true, nil
}

func (p *parser) parseShortFlag(c string) error {
	option := p.grammar.FindByAbbreviation(c)
	if option == nil {
		return p.fail(fmt.Sprintf("Could not find an option with short name \"-%s\".", c), "-"+c)
	}
	if !option.IsFlag() {
		return p.fail(fmt.Sprintf("Option \"-%s\" must be a flag to be in a collapsed \"-\".", c), "-"+c)
	}
	p.setFlag(option, true)

	return nil
}

// parseLongOption handles "--name", "--name=value" and "--no-name".
func (p *parser) parseLongOption() (bool, error) {
	arg := p.state.Current()
	if !strings.HasPrefix(arg, "--") {
		return false, nil
	}

	name := arg[2:]
	var value *string
	if index := strings.IndexByte(arg, '='); index != -1 {
		name = arg[2:index]
		v := arg[index+1:]
		if strings.ContainsAny(v, "\n\r") {
			return false, nil
		}
		value = &v
	}
	for _, r := range name {
		if !isLetterDigitHyphenOrUnderscore(r) {
			return false, nil
		}
	}

	return p.handleLongOption(name, value)
}

func (p *parser) handleLongOption(name string, value *string) (bool, error) {
	if option := p.grammar.FindByName(name); option != nil {
		p.state.Consume()
		switch {
		case option.IsFlag():
			if value != nil {
				return false, p.fail(fmt.Sprintf("Flag option \"--%s\" should not be given a value.", name), "--"+name)
			}
			p.setFlag(option, true)
		case value != nil:
			if err := p.setOption(option, *value, "--"+name); err != nil {
				return false, err
			}
		default:
			if err := p.readNextArgAsValue(option, "--"+name); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	if strings.HasPrefix(name, "no-") {
		if option := p.grammar.FindByName(strings.TrimPrefix(name, "no-")); option != nil {
			p.state.Consume()
			if !option.IsFlag() {
				return false, p.fail(fmt.Sprintf("Cannot negate non-flag option \"--%s\".", name), "--"+name)
			}
			if !option.Negatable() {
				return false, p.fail(fmt.Sprintf("Cannot negate option \"--%s\".", name), "--"+name)
			}
			if value != nil {
				return false, p.fail(fmt.Sprintf("Flag option \"--%s\" should not be given a value.", name), "--"+name)
			}
			p.setFlag(option, false)
			return true, nil
		}
	}

	if p.parent == nil {
		return false, p.fail(fmt.Sprintf("Could not find an option named \"--%s\".", name), "--"+name)
	}
	tracer().Debugf("option --%s not in %q, trying parent", name, p.commandName)

	return p.parent.handleLongOption(name, value)
}

// readNextArgAsValue takes the next token verbatim, even when it looks like an option.
func (p *parser) readNextArgAsValue(option *Option, arg string) error {
	if p.state.Done() {
		return p.fail(fmt.Sprintf("Missing argument for \"%s\".", arg), arg)
	}

	return p.setOption(option, p.state.Consume(), arg)
}

func (p *parser) setOption(option *Option, value, arg string) error {
	if !option.IsMultiple() {
		if err := p.validateAllowed(option, value, arg); err != nil {
			return err
		}
		p.results[option.name] = value
		return nil
	}

	var list []string
	if existing, found := p.results[option.name]; found {
		list = existing.([]string)
	}
	values := []string{value}
	if option.SplitCommas() {
		values = strings.Split(value, ",")
	}
	for _, v := range values {
		if err := p.validateAllowed(option, v, arg); err != nil {
			return err
		}
		list = append(list, v)
	}
	p.results[option.name] = list

	return nil
}

func (p *parser) setFlag(option *Option, value bool) {
	tracer().Debugf("flag %q set to %t", option.name, value)
	p.results[option.name] = value
}

func (p *parser) validateAllowed(option *Option, value, arg string) error {
	if option.isAllowed(value) {
		return nil
	}

	return p.fail(fmt.Sprintf("\"%s\" is not an allowed value for option \"%s\".", value, arg), arg)
}

// fail builds a ParseError. The command path is completed by the callers up the chain.
func (p *parser) fail(message, arg string) *ParseError {
	tracer().Debugf("parse error in %q: %s", p.commandName, message)

	return &ParseError{Message: message, Commands: []string{}, Argument: arg}
}
