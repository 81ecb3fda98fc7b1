package goargs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDefinition     = errors.New("invalid definition")
	ErrUnsupported    = errors.New("unsupported")
	ErrOptionNotFound = errors.New("option not found")
	ErrWrongType      = errors.New("option type mismatch")
	ErrMandatory      = errors.New("mandatory option missing")
	ErrInactiveView   = errors.New("results view accessed outside of its command invocation")
	ErrParse          = errors.New("parse error")
	ErrUsage          = errors.New("usage error")
)

const (
	FmtErrorWithString = "%w: %s"
)

// DefinitionError reports an invalid grammar registration or a lookup of a name the
// grammar does not define. Err is one of the package sentinels and defaults to ErrDefinition.
type DefinitionError struct {
	Message string
	Name    string
	Err     error
}

func (e *DefinitionError) Error() string {
	return e.Message
}

func (e *DefinitionError) Unwrap() error {
	if e.Err == nil {
		return ErrDefinition
	}

	return e.Err
}

// Is makes every DefinitionError match ErrDefinition, whatever its more specific cause.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

func definitionErrorf(name string, format string, args ...any) *DefinitionError {
	return &DefinitionError{Message: fmt.Sprintf(format, args...), Name: name}
}

// ParseError is returned when an argument list does not match a grammar.
type ParseError struct {
	Message string
	// Commands lists the commands entered before the failure, outermost first.
	Commands []string
	// Argument is the offending token or option, when known.
	Argument string
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// CommandPath joins Commands with spaces.
func (e *ParseError) CommandPath() string {
	return strings.Join(e.Commands, " ")
}

func (e *ParseError) withCommand(name string) *ParseError {
	commands := make([]string, 0, len(e.Commands)+1)
	commands = append(commands, name)
	commands = append(commands, e.Commands...)

	return &ParseError{Message: e.Message, Commands: commands, Argument: e.Argument}
}

// UsageError carries the same payload as ParseError but is raised by dispatch logic, for
// instance by a command action that detected a usage problem itself. Usage holds the usage
// text of the command the error relates to.
type UsageError struct {
	Message  string
	Commands []string
	Argument string
	Usage    string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s\n\n%s", e.Message, e.Usage)
}

func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}
