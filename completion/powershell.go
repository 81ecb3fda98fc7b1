package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fmt.Fprintf(&script, `Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $transitions = @{`, escapePowerShell(programName))
	for _, t := range transitions(data) {
		fmt.Fprintf(&script, `
        '%s' = '%s'`, escapePowerShell(t[0]), escapePowerShell(t[1]))
	}

	script.WriteString(`
    }
    $candidates = @{`)
	for _, c := range data.Commands {
		if c.Hidden {
			continue
		}
		quoted := make([]string, 0)
		for _, w := range candidates(c) {
			quoted = append(quoted, "'"+escapePowerShell(w)+"'")
		}
		fmt.Fprintf(&script, `
        '%s' = @(%s)`, escapePowerShell(c.Key()), strings.Join(quoted, ", "))
	}

	script.WriteString(`
    }

    $path = ''
    foreach ($element in ($commandAst.CommandElements | Select-Object -Skip 1)) {
        $word = $element.ToString()
        if ($element.Extent.StartOffset -ge $cursorPosition) { break }
        $key = "${path}:${word}"
        if ($transitions.ContainsKey($key)) { $path = $transitions[$key] }
    }

    $candidates[$path] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`)

	return script.String()
}
