package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/napalu/goargs"
	"github.com/napalu/goargs/completion"
	"gopkg.in/yaml.v3"
)

type report struct {
	Command    string         `yaml:"command,omitempty"`
	Options    map[string]any `yaml:"options,omitempty"`
	Rest       []string       `yaml:"rest,omitempty"`
	Subcommand *report        `yaml:"subcommand,omitempty"`
}

func newCommands(stdout io.Writer) ([]*goargs.Command, error) {
	var usage, check, complete *goargs.Command
	var err error

	usage, err = goargs.NewCommand("usage", "Print the usage of a program definition or one of its commands.",
		goargs.WithGrammar(
			goargs.WithFlag("all", goargs.WithAbbr("a"), goargs.WithNegatable(false),
				goargs.WithHelp("Print the usage of every command.")),
			goargs.WithOption("line-length", goargs.WithAbbr("l"), goargs.WithValueHelp("N"),
				goargs.WithHelp("Wrap usage text at N columns."))),
		goargs.WithAction(func(ctx context.Context, local, global *goargs.View) error {
			return printUsage(ctx, stdout, usage, local)
		}))
	if err != nil {
		return nil, err
	}

	check, err = goargs.NewCommand("check", "Parse arguments against a program definition and print the results.\n"+
		"The first argument names the definition file.",
		goargs.WithPassThrough(),
		goargs.WithAction(func(ctx context.Context, local, global *goargs.View) error {
			return checkArguments(stdout, check, local)
		}))
	if err != nil {
		return nil, err
	}

	complete, err = goargs.NewCommand("completion", "Generate a shell completion script for a program definition.",
		goargs.WithCommandAliases("complete"),
		goargs.WithGrammar(
			goargs.WithOption("shell", goargs.WithAbbr("s"), goargs.WithDefault("bash"),
				goargs.WithAllowed("bash", "zsh", "fish", "powershell"),
				goargs.WithHelp("The shell to generate the script for."))),
		goargs.WithAction(func(ctx context.Context, local, global *goargs.View) error {
			return generateCompletion(stdout, complete, local)
		}))
	if err != nil {
		return nil, err
	}

	return []*goargs.Command{usage, check, complete}, nil
}

func loadProgram(command *goargs.Command, local *goargs.View, configs ...goargs.ConfigureRunnerFunc) (*goargs.Runner, []string, error) {
	rest, err := local.Rest()
	if err != nil {
		return nil, nil, err
	}
	if len(rest) == 0 {
		return nil, nil, command.UsageException("Missing the definition file.")
	}

	data, err := os.ReadFile(rest[0])
	if err != nil {
		return nil, nil, err
	}
	program, err := goargs.LoadProgram(data, configs...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", rest[0], err)
	}

	return program, rest[1:], nil
}

func printUsage(ctx context.Context, stdout io.Writer, command *goargs.Command, local *goargs.View) error {
	configs := []goargs.ConfigureRunnerFunc{goargs.WithStdout(stdout)}
	parsed, err := local.WasParsed("line-length")
	if err != nil {
		return err
	}
	if parsed {
		length, err := local.Int("line-length")
		if err != nil {
			return err
		}
		configs = append(configs, goargs.WithLineLength(length))
	}

	program, path, err := loadProgram(command, local, configs...)
	if err != nil {
		return err
	}
	args := append([]string{"help"}, path...)
	all, err := local.Flag("all")
	if err != nil {
		return err
	}
	if all {
		args = append(args, "--all")
	}

	return program.Run(ctx, args)
}

func checkArguments(stdout io.Writer, command *goargs.Command, local *goargs.View) error {
	program, args, err := loadProgram(command, local, goargs.WithStdout(io.Discard))
	if err != nil {
		return err
	}
	results, err := program.Parse(args)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(stdout)
	encoder.SetIndent(2)
	if err = encoder.Encode(newReport(results)); err != nil {
		return err
	}

	return encoder.Close()
}

func newReport(results *goargs.Results) *report {
	if results == nil {
		return nil
	}
	r := &report{
		Command:    results.Name(),
		Rest:       results.Rest(),
		Subcommand: newReport(results.Command()),
	}
	for _, name := range results.Options() {
		if parsed, _ := results.WasParsed(name); !parsed {
			continue
		}
		if r.Options == nil {
			r.Options = map[string]any{}
		}
		r.Options[name], _ = results.Get(name)
	}

	return r
}

func generateCompletion(stdout io.Writer, command *goargs.Command, local *goargs.View) error {
	shell, err := local.Option("shell")
	if err != nil {
		return err
	}
	generator, err := completion.NewGenerator(shell)
	if err != nil {
		return err
	}
	program, extra, err := loadProgram(command, local)
	if err != nil {
		return err
	}
	if len(extra) > 0 {
		return command.UsageException(fmt.Sprintf("Unexpected arguments: %s.", strings.Join(extra, " ")))
	}

	_, err = io.WriteString(stdout, generator.Generate(program.Executable(), program.CompletionData()))
	return err
}
