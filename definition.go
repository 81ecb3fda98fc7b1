package goargs

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// GrammarDefinition is the YAML form of a Grammar:
//
//	trailing-options: false
//	line-length: 80
//	entries:
//	  - flag: verbose
//	    abbr: v
//	    help: Print more output.
//	  - separator: "Build:"
//	  - option: mode
//	    allowed: [debug, release]
//	    default: debug
//	  - multi: define
//	    abbr: D
//	commands:
//	  - name: build
//	    entries:
//	      - flag: release
type GrammarDefinition struct {
	TrailingOptions *bool               `yaml:"trailing-options"`
	LineLength      int                 `yaml:"line-length"`
	PassThrough     bool                `yaml:"pass-through"`
	Entries         []EntryDefinition   `yaml:"entries"`
	Commands        []CommandDefinition `yaml:"commands"`
}

// CommandDefinition names the grammar of a command. Description, Category, Hidden,
// NoArguments and Footer only apply when the document is loaded as a program.
type CommandDefinition struct {
	Name              string   `yaml:"name"`
	Aliases           []string `yaml:"aliases"`
	Description       string   `yaml:"description"`
	Category          string   `yaml:"category"`
	Hidden            bool     `yaml:"hidden"`
	NoArguments       bool     `yaml:"no-arguments"`
	Footer            string   `yaml:"footer"`
	GrammarDefinition `yaml:",inline"`
}

// ProgramDefinition is the YAML form of a Runner. Its commands become dispatchable commands
// without actions.
type ProgramDefinition struct {
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	Footer            string `yaml:"footer"`
	GrammarDefinition `yaml:",inline"`
}

// EntryDefinition is one option or separator. Exactly one of Flag, Option, Multi and
// Separator must be set.
type EntryDefinition struct {
	Flag        string            `yaml:"flag"`
	Option      string            `yaml:"option"`
	Multi       string            `yaml:"multi"`
	Separator   string            `yaml:"separator"`
	Abbr        string            `yaml:"abbr"`
	Aliases     []string          `yaml:"aliases"`
	Help        string            `yaml:"help"`
	ValueHelp   string            `yaml:"value-help"`
	Default     any               `yaml:"default"`
	Defaults    []string          `yaml:"defaults"`
	Negatable   *bool             `yaml:"negatable"`
	SplitCommas *bool             `yaml:"split-commas"`
	Allowed     []string          `yaml:"allowed"`
	AllowedHelp map[string]string `yaml:"allowed-help"`
	Hidden      bool              `yaml:"hidden"`
	Mandatory   bool              `yaml:"mandatory"`
}

// LoadProgram builds a Runner from a YAML document.
func LoadProgram(data []byte, configs ...ConfigureRunnerFunc) (*Runner, error) {
	var def ProgramDefinition
	if err := decodeStrict(bytes.NewReader(data), &def); err != nil {
		return nil, err
	}

	return def.Build(configs...)
}

// Build creates the Runner described by def. configs are applied after the footer.
func (def *ProgramDefinition) Build(configs ...ConfigureRunnerFunc) (*Runner, error) {
	if def.PassThrough {
		return nil, definitionErrorf(def.Name, "Program %q cannot pass its arguments through.", def.Name)
	}
	r, err := NewRunner(def.Name, def.Description, append([]ConfigureRunnerFunc{WithUsageFooter(def.Footer)}, configs...)...)
	if err != nil {
		return nil, err
	}
	if err = def.configureEntries(r.grammar); err != nil {
		return nil, err
	}
	for i := range def.Commands {
		command, err := def.Commands[i].command()
		if err != nil {
			return nil, err
		}
		if err = r.AddCommand(command); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (def *CommandDefinition) command() (*Command, error) {
	configs := []ConfigureCommandFunc{
		WithCommandAliases(def.Aliases...),
		WithCategory(def.Category),
		WithFooter(def.Footer),
	}
	if def.Hidden {
		configs = append(configs, HiddenCommand())
	}
	if def.NoArguments {
		configs = append(configs, WithoutArguments())
	}
	if def.PassThrough {
		configs = append(configs, WithPassThrough())
	}
	command, err := NewCommand(def.Name, def.Description, configs...)
	if err != nil {
		return nil, err
	}
	if err = def.configureEntries(command.grammar); err != nil {
		return nil, err
	}
	for i := range def.Commands {
		sub, err := def.Commands[i].command()
		if err != nil {
			return nil, err
		}
		if err = command.AddSubcommand(sub); err != nil {
			return nil, err
		}
	}

	return command, nil
}

// LoadGrammar builds a Grammar from a YAML document.
func LoadGrammar(data []byte) (*Grammar, error) {
	return DecodeGrammar(bytes.NewReader(data))
}

// DecodeGrammar reads a YAML document from r and builds the Grammar it describes. Unknown
// keys are rejected.
func DecodeGrammar(r io.Reader) (*Grammar, error) {
	var def GrammarDefinition
	if err := decodeStrict(r, &def); err != nil {
		return nil, err
	}

	return def.Build()
}

func decodeStrict(r io.Reader, out any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf(FmtErrorWithString, ErrDefinition, err)
	}

	return nil
}

// Build creates the Grammar described by def.
func (def *GrammarDefinition) Build() (*Grammar, error) {
	grammar := NewGrammar()
	if def.PassThrough {
		grammar = NewPassThroughGrammar()
	}
	if err := def.configure(grammar); err != nil {
		return nil, err
	}

	return grammar, nil
}

func (def *GrammarDefinition) configure(grammar *Grammar) error {
	if err := def.configureEntries(grammar); err != nil {
		return err
	}
	for _, command := range def.Commands {
		child, err := command.Build()
		if err != nil {
			return err
		}
		if _, err = grammar.AddCommand(command.Name, child); err != nil {
			return err
		}
		for _, alias := range command.Aliases {
			if err = grammar.addCommandAlias(alias, command.Name); err != nil {
				return err
			}
		}
	}

	return nil
}

func (def *GrammarDefinition) configureEntries(grammar *Grammar) error {
	if def.TrailingOptions != nil {
		grammar.allowTrailingOptions = *def.TrailingOptions
	}
	if def.LineLength > 0 {
		grammar.SetUsageLineLength(def.LineLength)
	}

	for i := range def.Entries {
		if err := def.Entries[i].add(grammar); err != nil {
			return err
		}
	}

	return nil
}

func (e *EntryDefinition) add(grammar *Grammar) error {
	set := 0
	for _, name := range []string{e.Flag, e.Option, e.Multi, e.Separator} {
		if name != "" {
			set++
		}
	}
	if set != 1 {
		return definitionErrorf("", "An entry must declare exactly one of flag, option, multi or separator.")
	}

	var err error
	configs := e.configs()
	switch {
	case e.Separator != "":
		return grammar.AddSeparator(e.Separator)
	case e.Flag != "":
		_, err = grammar.AddFlag(e.Flag, configs...)
	case e.Option != "":
		_, err = grammar.AddOption(e.Option, configs...)
	default:
		_, err = grammar.AddMultiOption(e.Multi, configs...)
	}

	return err
}

func (e *EntryDefinition) configs() []ConfigureOptionFunc {
	var configs []ConfigureOptionFunc
	if e.Abbr != "" {
		configs = append(configs, WithAbbr(e.Abbr))
	}
	if len(e.Aliases) > 0 {
		configs = append(configs, WithAliases(e.Aliases...))
	}
	if e.Help != "" {
		configs = append(configs, WithHelp(e.Help))
	}
	if e.ValueHelp != "" {
		configs = append(configs, WithValueHelp(e.ValueHelp))
	}
	if e.Negatable != nil {
		configs = append(configs, WithNegatable(*e.Negatable))
	}
	if e.SplitCommas != nil {
		configs = append(configs, WithSplitCommas(*e.SplitCommas))
	}
	if e.Allowed != nil {
		configs = append(configs, WithAllowed(e.Allowed...))
	}
	if e.AllowedHelp != nil {
		configs = append(configs, WithAllowedHelp(e.AllowedHelp))
	}
	if len(e.Defaults) > 0 {
		configs = append(configs, WithDefaults(e.Defaults...))
	}
	if e.Hidden {
		configs = append(configs, Hidden())
	}
	if e.Mandatory {
		configs = append(configs, Mandatory())
	}

	switch v := e.Default.(type) {
	case nil:
	case bool:
		configs = append(configs, WithFlagDefault(v))
	case string:
		configs = append(configs, WithDefault(v))
	default:
		configs = append(configs, WithDefault(fmt.Sprint(v)))
	}

	return configs
}
