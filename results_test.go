package goargs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults_Accessors(t *testing.T) {
	g, err := NewGrammarWith(
		WithFlag("verbose"),
		WithOption("count"),
		WithOption("ratio"),
		WithOption("timeout"),
		WithOption("since"),
		WithMultiOption("tags", WithDefaults("a")),
	)
	require.NoError(t, err)

	results, err := g.Parse([]string{
		"--count", "42", "--ratio", "0.5", "--timeout", "1m30s", "--since", "2024-03-01", "x",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"count", "ratio", "since", "tags", "timeout", "verbose"}, results.Options())

	i, err := results.Int("count")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	f, err := results.Float("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, f)

	d, err := results.Duration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	since, err := results.Time("since")
	require.NoError(t, err)
	assert.Equal(t, 2024, since.Year())
	assert.Equal(t, time.March, since.Month())

	_, err = results.Int("ratio")
	assert.Error(t, err)

	tags, err := results.MultiOption("tags")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tags)
	parsed, err := results.WasParsed("tags")
	require.NoError(t, err)
	assert.False(t, parsed)
	parsed, err = results.WasParsed("count")
	require.NoError(t, err)
	assert.True(t, parsed)
}

func TestResults_LookupErrors(t *testing.T) {
	g, err := NewGrammarWith(WithFlag("verbose"), WithOption("mode"))
	require.NoError(t, err)
	results, err := g.Parse(nil)
	require.NoError(t, err)

	_, err = results.Get("missing")
	assert.ErrorIs(t, err, ErrOptionNotFound)
	_, err = results.WasParsed("missing")
	assert.ErrorIs(t, err, ErrOptionNotFound)
	_, err = results.Option("verbose")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = results.Flag("mode")
	assert.ErrorIs(t, err, ErrWrongType)
	_, err = results.MultiOption("mode")
	assert.ErrorIs(t, err, ErrWrongType)
	assert.ErrorIs(t, err, ErrDefinition)
}

func TestResults_Immutable(t *testing.T) {
	g, err := NewGrammarWith(WithMultiOption("tags"))
	require.NoError(t, err)
	results, err := g.Parse([]string{"--tags", "a,b", "rest"})
	require.NoError(t, err)

	tags, _ := results.MultiOption("tags")
	tags[0] = "changed"
	rest := results.Rest()
	rest[0] = "changed"
	args := results.Arguments()
	args[0] = "changed"

	tags, _ = results.MultiOption("tags")
	assert.Equal(t, []string{"a", "b"}, tags)
	assert.Equal(t, []string{"rest"}, results.Rest())
	assert.Equal(t, []string{"--tags", "a,b", "rest"}, results.Arguments())
	assert.Same(t, g, results.Grammar())
}

func TestResults_AliasLookup(t *testing.T) {
	g, err := NewGrammarWith(WithOption("output", WithAliases("out")))
	require.NoError(t, err)

	results, err := g.Parse([]string{"--out", "file"})
	require.NoError(t, err)
	value, err := results.Option("output")
	require.NoError(t, err)
	assert.Equal(t, "file", value)
	value, err = results.Option("out")
	require.NoError(t, err)
	assert.Equal(t, "file", value)
}
