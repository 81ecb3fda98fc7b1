package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	// $path is bound to $PATH in zsh, hence cmdpath.
	fmt.Fprintf(&script, `#compdef %[1]s

%[2]s() {
    local cmdpath="" word i state
    local -a subcommands

    for ((i = 2; i < CURRENT; i++)); do
        word="${words[i]}"
        case "${cmdpath}:${word}" in`, programName, functionName(programName))

	for _, t := range transitions(data) {
		fmt.Fprintf(&script, `
            '%s') cmdpath='%s' ;;`, escapeSingleQuoted(t[0]), escapeSingleQuoted(t[1]))
	}

	script.WriteString(`
        esac
    done

    case "${cmdpath}" in`)

	for _, c := range data.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintf(&script, `
        '%s')
            subcommands=(`, escapeSingleQuoted(c.Key()))
		for _, name := range c.Subcommands {
			sub, _ := data.Find(strings.TrimSpace(c.Key() + " " + name))
			fmt.Fprintf(&script, `
                '%s:%s'`, escapeSingleQuoted(name), escapeSingleQuoted(sub.Description))
		}
		script.WriteString(`
            )
            _arguments -s`)
		for _, f := range c.Flags {
			fmt.Fprintf(&script, ` \
                %s`, zshFlagSpec(f))
		}
		script.WriteString(` \
                '*:: :->args'
            [[ $state == args ]] && (( ${#subcommands} )) && _describe 'command' subcommands
            ;;`)
	}

	fmt.Fprintf(&script, `
    esac
}

%s "$@"
`, functionName(programName))

	return script.String()
}

func zshFlagSpec(f Flag) string {
	action := ""
	if f.TakesValue {
		name := f.Long
		if len(f.Values) > 0 {
			action = fmt.Sprintf(":%s:(%s)", name, strings.Join(valueWords(f), " "))
		} else {
			action = fmt.Sprintf(":%s: ", name)
		}
	}
	description := escapeZsh(f.Description)

	var specs []string
	if f.Short != "" {
		specs = append(specs, fmt.Sprintf(`'(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'[%[3]s]%[4]s'`, f.Short, f.Long, description, escapeSingleQuoted(action)))
	} else {
		specs = append(specs, fmt.Sprintf(`'--%s[%s]%s'`, f.Long, description, escapeSingleQuoted(action)))
	}
	if f.Negatable {
		specs = append(specs, fmt.Sprintf(`'--no-%s[%s]'`, f.Long, description))
	}

	return strings.Join(specs, " \\\n                ")
}
