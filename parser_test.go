package goargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammarWith(
		WithFlag("verbose", WithAbbr("v")),
		WithFlag("all", WithAbbr("a")),
		WithFlag("quiet", WithAbbr("q"), WithNegatable(false)),
		WithOption("mode", WithAbbr("m"), WithAllowed("debug", "release"), WithDefault("debug")),
		WithOption("out", WithAbbr("o")),
		WithMultiOption("define", WithAbbr("D")),
		WithMultiOption("exact", WithSplitCommas(false)),
		WithMultiOption("level", WithAllowed("a", "b")),
	)
	require.NoError(t, err)

	return g
}

func TestParse_Values(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goargs.parse")
	defer teardown()

	tests := []struct {
		name     string
		args     []string
		option   string
		expected any
	}{
		{"long flag", []string{"--verbose"}, "verbose", true},
		{"solo abbreviation flag", []string{"-v"}, "verbose", true},
		{"negated flag", []string{"-v", "--no-verbose"}, "verbose", false},
		{"flag default", []string{}, "verbose", false},
		{"separate value", []string{"--out", "file"}, "out", "file"},
		{"attached value", []string{"--out=file"}, "out", "file"},
		{"empty attached value", []string{"--out="}, "out", ""},
		{"abbreviation value", []string{"-m", "release"}, "mode", "release"},
		{"attached abbreviation value", []string{"-mrelease"}, "mode", "release"},
		{"abbreviation with equals", []string{"-o=x"}, "out", "=x"},
		{"value looking like option", []string{"--out", "--verbose"}, "out", "--verbose"},
		{"last single wins", []string{"--out", "a", "--out", "b"}, "out", "b"},
		{"single default", []string{}, "mode", "debug"},
		{"single absent", []string{}, "out", nil},
		{"multi splits commas", []string{"--define=a,b", "--define=c"}, "define", []string{"a", "b", "c"}},
		{"multi abbreviation", []string{"-D", "x", "-Dy"}, "define", []string{"x", "y"}},
		{"multi without splitting", []string{"--exact=a,b"}, "exact", []string{"a,b"}},
		{"multi keeps empty pieces", []string{"--define=,a,,b,"}, "define", []string{"", "a", "", "b", ""}},
		{"multi allowed pieces", []string{"--level=b,a", "--level", "a"}, "level", []string{"b", "a", "a"}},
		{"multi default", []string{}, "define", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := newTestGrammar(t).Parse(tt.args)
			require.NoError(t, err)
			value, err := results.Get(tt.option)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, value); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.option, diff)
			}
		})
	}
}

func TestParse_Cluster(t *testing.T) {
	results, err := newTestGrammar(t).Parse([]string{"-vaq"})
	require.NoError(t, err)

	for _, name := range []string{"verbose", "all", "quiet"} {
		on, err := results.Flag(name)
		require.NoError(t, err)
		assert.True(t, on, name)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		message  string
		argument string
	}{
		{"unknown long", []string{"--nope"}, `Could not find an option named "--nope".`, "--nope"},
		{"unknown solo abbreviation", []string{"-x"}, `Could not find an option or flag "-x".`, "-x"},
		{"unknown cluster", []string{"-xv"}, `Could not find an option with short name "-x".`, "-x"},
		{"option inside cluster", []string{"-vm"}, `Option "-m" must be a flag to be in a collapsed "-".`, "-m"},
		{"unknown inside cluster", []string{"-vz"}, `Could not find an option with short name "-z".`, "-z"},
		{"flag with attached value", []string{"-v=1"}, `Option "-v" is a flag and cannot handle value "=1".`, "-v"},
		{"flag with long value", []string{"--verbose=true"}, `Flag option "--verbose" should not be given a value.`, "--verbose"},
		{"missing value", []string{"--out"}, `Missing argument for "--out".`, "--out"},
		{"missing abbreviation value", []string{"-m"}, `Missing argument for "-m".`, "-m"},
		{"disallowed value", []string{"--mode", "fast"}, `"fast" is not an allowed value for option "--mode".`, "--mode"},
		{"disallowed empty piece", []string{"--level=a,,b"}, `"" is not an allowed value for option "--level".`, "--level"},
		{"disallowed multi piece", []string{"-v", "--level", "a,c"}, `"c" is not an allowed value for option "--level".`, "--level"},
		{"negate non-negatable", []string{"--no-quiet"}, `Cannot negate option "--no-quiet".`, "--no-quiet"},
		{"negate option", []string{"--no-out"}, `Cannot negate non-flag option "--no-out".`, "--no-out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := newTestGrammar(t).Parse(tt.args)
			assert.Nil(t, results)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			pe, ok := err.(*ParseError)
			require.True(t, ok)
			assert.Equal(t, tt.message, pe.Message)
			assert.Equal(t, tt.argument, pe.Argument)
			assert.Empty(t, pe.Commands)
		})
	}
}

func TestParse_RestAndTerminator(t *testing.T) {
	g := newTestGrammar(t)

	input := []string{"a", "b", "c"}
	results, err := g.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, input, results.Rest())
	assert.Equal(t, input, results.Arguments())

	results, err = g.Parse([]string{"a", "-v", "b", "--", "-a", "--out"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "-a", "--out"}, results.Rest())
	on, _ := results.Flag("verbose")
	assert.True(t, on)
	on, _ = results.Flag("all")
	assert.False(t, on)
}

func TestParse_NoTrailingOptions(t *testing.T) {
	g := newTestGrammar(t)
	g.allowTrailingOptions = false

	results, err := g.Parse([]string{"-v", "file", "-a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"file", "-a"}, results.Rest())
	on, _ := results.Flag("all")
	assert.False(t, on)
}

func TestParse_DoesNotMutateInput(t *testing.T) {
	args := []string{"--define=a,b", "-vm", "release", "rest"}
	snapshot := append([]string(nil), args...)

	_, _ = newTestGrammar(t).Parse(args)
	assert.Equal(t, snapshot, args)
}

func TestParse_LineBreakInValue(t *testing.T) {
	results, err := newTestGrammar(t).Parse([]string{"--out=a\nb"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--out=a\nb"}, results.Rest())
}

func TestParse_Callbacks(t *testing.T) {
	var calls []string
	g, err := NewGrammarWith(
		WithMultiOption("list", WithMultiCallback(func(values []string) {
			calls = append(calls, "list")
			assert.Equal(t, []string{"x"}, values)
		})),
		WithFlag("flag", WithFlagCallback(func(value bool) {
			calls = append(calls, "flag")
			assert.False(t, value)
		})),
		WithOption("opt", WithCallback(func(value string, ok bool) {
			calls = append(calls, "opt")
			assert.False(t, ok)
		})),
	)
	require.NoError(t, err)

	_, err = g.Parse([]string{"--list", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"list", "flag", "opt"}, calls)
}

func TestParse_Mandatory(t *testing.T) {
	g, err := NewGrammarWith(WithOption("name", Mandatory()))
	require.NoError(t, err)

	_, err = g.Parse([]string{})
	require.Error(t, err)
	assert.Equal(t, "Option name is mandatory.", err.Error())

	results, err := g.Parse([]string{"--name", "x"})
	require.NoError(t, err)
	name, err := results.Option("name")
	require.NoError(t, err)
	assert.Equal(t, "x", name)
}

func newCommandGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := NewGrammarWith(
		WithFlag("verbose", WithAbbr("v")),
		WithOption("config", WithAbbr("c")),
		WithCommand("remote",
			WithFlag("force", WithAbbr("f")),
			WithCommand("add",
				WithFlag("track", WithAbbr("t")),
				WithOption("name", WithAbbr("n")))),
	)
	require.NoError(t, err)

	return g
}

func TestParse_Commands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "goargs.parse")
	defer teardown()

	results, err := newCommandGrammar(t).Parse([]string{"-v", "remote", "-f", "add", "-t", "origin", "url"})
	require.NoError(t, err)

	assert.Equal(t, "", results.Name())
	assert.Empty(t, results.Rest())
	assert.Equal(t, []string{"-v", "remote", "-f", "add", "-t", "origin", "url"}, results.Arguments())

	remote := results.Command()
	require.NotNil(t, remote)
	assert.Equal(t, "remote", remote.Name())
	assert.Nil(t, remote.Arguments())
	force, _ := remote.Flag("force")
	assert.True(t, force)

	add := remote.Command()
	require.NotNil(t, add)
	assert.Equal(t, "add", add.Name())
	assert.Equal(t, []string{"origin", "url"}, add.Rest())
	assert.Nil(t, add.Command())
	track, _ := add.Flag("track")
	assert.True(t, track)
}

func TestParse_ParentFallback(t *testing.T) {
	results, err := newCommandGrammar(t).Parse([]string{"remote", "add", "--verbose", "-c", "file", "-f"})
	require.NoError(t, err)

	verbose, _ := results.Flag("verbose")
	assert.True(t, verbose)
	config, _ := results.Option("config")
	assert.Equal(t, "file", config)
	force, _ := results.Command().Flag("force")
	assert.True(t, force)
	parsed, _ := results.Command().Command().WasParsed("track")
	assert.False(t, parsed)
}

func TestParse_NegationFallback(t *testing.T) {
	g, err := NewGrammarWith(
		WithFlag("verbose", WithFlagDefault(true)),
		WithFlag("quiet", WithNegatable(false)),
		WithCommand("remote",
			WithCommand("add",
				WithFlag("track"))))
	require.NoError(t, err)

	results, err := g.Parse([]string{"remote", "add", "--no-verbose", "--no-track"})
	require.NoError(t, err)
	verbose, err := results.Flag("verbose")
	require.NoError(t, err)
	assert.False(t, verbose)
	parsed, err := results.WasParsed("verbose")
	require.NoError(t, err)
	assert.True(t, parsed)
	track, _ := results.Command().Command().Flag("track")
	assert.False(t, track)

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown everywhere", []string{"remote", "add", "--no-nothing"}, `Could not find an option named "--no-nothing".`},
		{"ancestor not negatable", []string{"remote", "add", "--no-quiet"}, `Cannot negate option "--no-quiet".`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Parse(tt.args)
			require.Error(t, err)
			pe, ok := err.(*ParseError)
			require.True(t, ok)
			assert.Equal(t, tt.message, pe.Message)
			if diff := cmp.Diff([]string{"remote", "add"}, pe.Commands); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ClusterFallback(t *testing.T) {
	g := newCommandGrammar(t)

	// The first character may come from an ancestor, the rest must be local.
	results, err := g.Parse([]string{"remote", "add", "-vt"})
	require.NoError(t, err)
	verbose, _ := results.Flag("verbose")
	assert.True(t, verbose)
	track, _ := results.Command().Command().Flag("track")
	assert.True(t, track)

	_, err = g.Parse([]string{"remote", "add", "-tv"})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, `Could not find an option with short name "-v".`, pe.Message)
	assert.Equal(t, []string{"remote", "add"}, pe.Commands)
	assert.Equal(t, "remote add", pe.CommandPath())

	// An ancestor option takes the rest of the cluster as its value.
	results, err = g.Parse([]string{"remote", "add", "-cfile"})
	require.NoError(t, err)
	config, _ := results.Option("config")
	assert.Equal(t, "file", config)
}

func TestParse_CommandErrors(t *testing.T) {
	g := newCommandGrammar(t)

	_, err := g.Parse([]string{"stray", "remote"})
	require.Error(t, err)
	assert.Equal(t, "Cannot specify arguments before a command.", err.Error())
	assert.Equal(t, "remote", err.(*ParseError).Argument)

	_, err = g.Parse([]string{"remote", "add", "--bogus"})
	require.Error(t, err)
	pe := err.(*ParseError)
	assert.Equal(t, `Could not find an option named "--bogus".`, pe.Message)
	assert.Equal(t, []string{"remote", "add"}, pe.Commands)
}

func TestParse_CommandAfterTerminator(t *testing.T) {
	results, err := newCommandGrammar(t).Parse([]string{"--", "remote"})
	require.NoError(t, err)
	assert.Nil(t, results.Command())
	assert.Equal(t, []string{"remote"}, results.Rest())
}

func TestParseString(t *testing.T) {
	results, err := newTestGrammar(t).ParseString(`--out "my file" -D 'a b' rest`)
	require.NoError(t, err)

	out, _ := results.Option("out")
	assert.Equal(t, "my file", out)
	defines, _ := results.MultiOption("define")
	assert.Equal(t, []string{"a b"}, defines)
	assert.Equal(t, []string{"rest"}, results.Rest())

	_, err = newTestGrammar(t).ParseString(`--out "unterminated`)
	assert.ErrorIs(t, err, ErrParse)
}
