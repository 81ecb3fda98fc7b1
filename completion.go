package goargs

import (
	"github.com/napalu/goargs/completion"
)

// CompletionData describes the command tree for shell completion generators: the top level
// followed by every command, depth first.
func (r *Runner) CompletionData() completion.Data {
	data := completion.Data{Commands: []completion.Command{{
		Flags:       completionFlags(r.grammar),
		Subcommands: visibleNames(r.Commands()),
	}}}

	walkCommands(sortedCommands(r.Commands()), func(c *Command) bool {
		data.Commands = append(data.Commands, completion.Command{
			Path:        c.Path(),
			Aliases:     c.Aliases(),
			Description: c.Summary(),
			Hidden:      c.hidden,
			Flags:       completionFlags(c.grammar),
			Subcommands: visibleNames(c.Subcommands()),
		})
		return true
	})

	return data
}

func completionFlags(grammar *Grammar) []completion.Flag {
	var flags []completion.Flag
	for _, option := range grammar.Options() {
		if option.hide {
			continue
		}
		flag := completion.Flag{
			Long:        option.name,
			Short:       option.abbr,
			Description: option.help,
			Negatable:   option.Negatable(),
			TakesValue:  !option.IsFlag(),
		}
		for _, value := range option.allowed {
			flag.Values = append(flag.Values, completion.Value{Value: value, Description: option.allowedHelp[value]})
		}
		flags = append(flags, flag)
	}

	return flags
}

func visibleNames(commands []*Command) []string {
	var names []string
	for _, c := range sortedCommands(commands) {
		if !c.hidden {
			names = append(names, c.name)
		}
	}

	return names
}
