package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, "complete -c %s -f\n", programName)

	for _, c := range data.Commands {
		condition := fishCondition(c)
		for _, name := range c.Subcommands {
			sub, _ := data.Find(strings.TrimSpace(c.Key() + " " + name))
			fmt.Fprintf(&script, "complete -c %s -n '%s' -a '%s' -d '%s'\n",
				programName, condition, name, escapeFish(sub.Description))
		}
		for _, f := range c.Flags {
			script.WriteString(fishFlag(programName, c, f))
		}
	}

	return script.String()
}

// fishCondition selects the command line positions where the commands below c are offered.
func fishCondition(c Command) string {
	if len(c.Path) == 0 {
		return "__fish_use_subcommand"
	}

	return "__fish_seen_subcommand_from " + strings.Join(append([]string{c.Name()}, c.Aliases...), " ")
}

func fishFlag(programName string, c Command, f Flag) string {
	line := fmt.Sprintf("complete -c %s", programName)
	if len(c.Path) > 0 {
		line += fmt.Sprintf(" -n '%s'", fishCondition(c))
	}
	line += " -l " + f.Long
	if f.Short != "" {
		line += " -s " + f.Short
	}
	switch {
	case f.TakesValue && len(f.Values) > 0:
		line += fmt.Sprintf(" -x -a '%s'", strings.Join(valueWords(f), " "))
	case f.TakesValue:
		line += " -r"
	}
	line += fmt.Sprintf(" -d '%s'\n", escapeFish(f.Description))

	if f.Negatable {
		negated := fmt.Sprintf("complete -c %s", programName)
		if len(c.Path) > 0 {
			negated += fmt.Sprintf(" -n '%s'", fishCondition(c))
		}
		line += fmt.Sprintf("%s -l no-%s -d '%s'\n", negated, f.Long, escapeFish(f.Description))
	}

	return line
}
