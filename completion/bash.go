package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `# bash completion for %[1]s

%[2]s() {
    local cur prev word path i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    path=""

    for ((i=1; i < COMP_CWORD; i++)); do
        word="${COMP_WORDS[i]}"
        case "${path}:${word}" in`, programName, functionName(programName))

	for _, t := range transitions(data) {
		fmt.Fprintf(&script, `
            "%s") path="%s" ;;`, escapeBash(t[0]), escapeBash(t[1]))
	}

	script.WriteString(`
        esac
    done

    case "${path}:${prev}" in`)

	// Flags of an ancestor are accepted below it, so their values are matched on any path
	// starting with the ancestor's.
	for _, c := range data.Commands {
		prefix := c.Key()
		for _, f := range c.Flags {
			if !f.TakesValue || len(f.Values) == 0 {
				continue
			}
			patterns := make([]string, 0, 2)
			for _, w := range []string{"--" + f.Long, "-" + f.Short} {
				if w == "-" {
					continue
				}
				patterns = append(patterns, fmt.Sprintf(`"%s"*":%s"`, escapeBash(prefix), w))
			}
			fmt.Fprintf(&script, `
        %s)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            return
            ;;`, strings.Join(patterns, "|"), escapeBash(strings.Join(valueWords(f), " ")))
		}
	}

	script.WriteString(`
    esac

    case "${path}" in`)

	for _, c := range data.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintf(&script, `
        "%s")
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            ;;`, escapeBash(c.Key()), escapeBash(strings.Join(candidates(c), " ")))
	}

	fmt.Fprintf(&script, `
    esac
}

complete -F %s %s
`, functionName(programName), programName)

	return script.String()
}
