package goargs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Configs(t *testing.T) {
	action := func(context.Context, *View, *View) error { return nil }
	command, err := NewCommand("deploy", "Deploy the thing.\nTo production.",
		WithAction(action),
		WithCommandAliases("d", "ship"),
		WithCategory("Release"),
		HiddenCommand(),
		WithoutArguments(),
		WithFooter("Use with care."),
		WithGrammar(WithOption("env", WithAllowed("staging", "prod"))))
	require.NoError(t, err)

	assert.Equal(t, "deploy", command.Name())
	assert.Equal(t, "Deploy the thing.", command.Summary())
	assert.Equal(t, []string{"d", "ship"}, command.Aliases())
	assert.Equal(t, "Release", command.Category())
	assert.True(t, command.Hidden())
	assert.False(t, command.TakesArguments())
	assert.NotNil(t, command.Grammar().FindByName("env"))
	assert.NotNil(t, command.Grammar().FindByAbbreviation("h"))
	assert.Nil(t, command.Runner())
	assert.Equal(t, "deploy [arguments]", command.Invocation())
	assert.Contains(t, command.Usage(), "\nUse with care.")
}

func TestNewCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		command string
		configs []ConfigureCommandFunc
	}{
		{"invalid name", "two words", nil},
		{"invalid alias", "ok", []ConfigureCommandFunc{WithCommandAliases("-x")}},
		{"invalid grammar", "ok", []ConfigureCommandFunc{WithGrammar(WithFlag("help"))}},
		{"late pass-through", "ok", []ConfigureCommandFunc{WithGrammar(WithFlag("x")), WithPassThrough()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, err := NewCommand(tt.command, "", tt.configs...)
			assert.Nil(t, command)
			assert.ErrorIs(t, err, ErrDefinition)
		})
	}
}

func TestCommand_Subcommands(t *testing.T) {
	add, err := NewCommand("add", "Add.", WithCommandAliases("a"))
	require.NoError(t, err)
	remove, err := NewCommand("remove", "Remove.", WithCommandAliases("rm"))
	require.NoError(t, err)
	remote, err := NewCommand("remote", "Remotes.", WithSubcommands(remove, add))
	require.NoError(t, err)

	assert.Equal(t, []*Command{remove, add}, remote.Subcommands())
	found, ok := remote.Subcommand("rm")
	require.True(t, ok)
	assert.Same(t, remove, found)
	_, ok = remote.Subcommand("nope")
	assert.False(t, ok)

	assert.Same(t, remote, add.Parent())
	assert.Equal(t, []string{"remote", "add"}, add.Path())
	assert.Equal(t, "remote <subcommand> [arguments]", remote.Invocation())

	other, err := NewCommand("other", "")
	require.NoError(t, err)
	assert.ErrorIs(t, other.AddSubcommand(add), ErrDefinition)

	clash, err := NewCommand("a", "")
	require.NoError(t, err)
	assert.ErrorIs(t, remote.AddSubcommand(clash), ErrDefinition)
	assert.Len(t, remote.Subcommands(), 2)

	exec, err := NewCommand("exec", "", WithPassThrough())
	require.NoError(t, err)
	assert.ErrorIs(t, exec.AddSubcommand(clash), ErrUnsupported)
}
