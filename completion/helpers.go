package completion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

var ErrUnsupportedShell = errors.New("unsupported shell")

// Generator renders a completion script for a program.
type Generator interface {
	Generate(programName string, data Data) string
}

// NewGenerator returns the generator for shell: bash, zsh, fish or powershell.
func NewGenerator(shell string) (Generator, error) {
	switch strings.ToLower(shell) {
	case "bash":
		return &BashGenerator{}, nil
	case "zsh":
		return &ZshGenerator{}, nil
	case "fish":
		return &FishGenerator{}, nil
	case "powershell", "pwsh":
		return &PowerShellGenerator{}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
}

// functionName derives a shell identifier from the program name, e.g. "my-tool" becomes
// "_my_tool_complete".
func functionName(programName string) string {
	return "_" + strcase.ToSnake(programName) + "_complete"
}

// transitions maps "<parent key>:<token>" to the key of the command the token selects.
// Aliases and hidden commands select commands too.
func transitions(data Data) [][2]string {
	var result [][2]string
	for _, c := range data.Commands {
		if len(c.Path) == 0 {
			continue
		}
		for _, token := range append([]string{c.Name()}, c.Aliases...) {
			result = append(result, [2]string{c.Parent() + ":" + token, c.Key()})
		}
	}

	return result
}

func escapeBash(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func escapeFish(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func escapeZsh(s string) string {
	s = strings.ReplaceAll(s, "[", `\[`)
	s = strings.ReplaceAll(s, "]", `\]`)
	return escapeSingleQuoted(s)
}
