package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/goargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `
name: tool
description: Does things.
entries:
  - flag: verbose
    abbr: v
commands:
  - name: build
    description: Build things.
    entries:
      - option: target
        allowed: [linux, darwin]
`

func writeProgram(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(program), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r, err := newRunner(&out)
	require.NoError(t, err)

	err = r.Run(context.Background(), args)
	return out.String(), err
}

func TestUsage(t *testing.T) {
	path := writeProgram(t)

	out, err := run(t, "usage", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: tool <command> [arguments]")

	out, err = run(t, "usage", path, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: tool build [arguments]")
	assert.Contains(t, out, "[linux, darwin]")

	out, err = run(t, "usage", "--all", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Does things.")
	assert.Contains(t, out, "Build things.")
}

func TestUsage_MissingFile(t *testing.T) {
	_, err := run(t, "usage")
	assert.ErrorIs(t, err, goargs.ErrUsage)

	_, err = run(t, "usage", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	path := writeProgram(t)

	out, err := run(t, "check", path, "-v", "build", "--target", "linux", "out")
	require.NoError(t, err)
	assert.Equal(t, "options:\n"+
		"  verbose: true\n"+
		"subcommand:\n"+
		"  command: build\n"+
		"  options:\n"+
		"    target: linux\n"+
		"  rest:\n"+
		"    - out\n", out)

	_, err = run(t, "check", path, "build", "--target", "windows")
	assert.ErrorIs(t, err, goargs.ErrParse)
}

func TestCompletion(t *testing.T) {
	path := writeProgram(t)

	out, err := run(t, "completion", "--shell", "fish", path)
	require.NoError(t, err)
	assert.Contains(t, out, "complete -c tool")

	out, err = run(t, "complete", path)
	require.NoError(t, err)
	assert.Contains(t, out, "_tool_complete")

	_, err = run(t, "completion", path, "extra")
	assert.ErrorIs(t, err, goargs.ErrUsage)
}
