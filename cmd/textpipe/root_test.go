package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The commands share activeCfg and the global logger: these tests do not run in parallel.

func executeRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewRootCmdHasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := []string{}
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"run", "ops"})
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}

func TestOpsCmd(t *testing.T) {
	got, err := executeRoot(t, "", "ops")
	require.NoError(t, err)

	for _, name := range []string{"remove_punctuation", "trim_spaces", "lowercase", "ngrams:N[:SEP]"} {
		assert.Contains(t, got, name)
	}
}

func TestRunCmdStdin(t *testing.T) {
	got, err := executeRoot(t, "Dog, can ! bark.;", "run", "--op", "punct", "--op", "trim", "--op", "lower")
	require.NoError(t, err)
	assert.Equal(t, "dog can bark\n", got)
}

func TestRunCmdFiles(t *testing.T) {
	first := writeFile(t, "first.txt", "a dog can bark")
	second := writeFile(t, "second.txt", "one word")

	got, err := executeRoot(t, "", "run", "--op", "ngrams:2:; ", first, second)
	require.NoError(t, err)
	assert.Equal(t, "a dog; dog can; can bark\none word\n", got)
}

func TestRunCmdLines(t *testing.T) {
	path := writeFile(t, "lines.txt", "First LINE!\r\n\n  Third   line.\n")

	got, err := executeRoot(t, "", "run", "--op", "punct", "--op", "trim", "--op", "lower", "--lines", "--concurrency", "2", path)
	require.NoError(t, err)
	assert.Equal(t, "first line\n\nthird line\n", got)
}

func TestRunCmdPipelineFile(t *testing.T) {
	definitionFile := writeFile(t, "pipeline.hjson", `
operations: [
  { kind: "punct" }
  { kind: "lower" }
  {
    kind: ngrams
    n: 3
    separator: " | "
  }
]
`)
	graph := filepath.Join(t.TempDir(), "pipeline.dot")

	got, err := executeRoot(t, "The quick, brown fox.", "run", "--pipeline-file", definitionFile, "--graph", graph, "--measure")
	require.NoError(t, err)
	assert.Equal(t, "the quick brown | quick brown fox\n", got)

	content, err := os.ReadFile(graph)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"0: remove_punctuation" -> "1: lowercase"`)
}

func TestRunCmdConfigOperations(t *testing.T) {
	cfg := writeFile(t, "textpipe.yaml", `
pipeline:
  operations:
    - trim
    - lower
`)

	got, err := executeRoot(t, "  MIXED   Case  ", "run", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "mixed case\n", got)
}

func TestRunCmdErrors(t *testing.T) {
	_, err := executeRoot(t, "text", "run")
	assert.ErrorIs(t, err, ErrNoOperation)

	_, err = executeRoot(t, "text", "run", "--op", "uppercase")
	assert.Error(t, err)

	_, err = executeRoot(t, "text", "run", "--op", "lower", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, err = executeRoot(t, "text", "run", "--op", "trim", "--concurrency", "0")
	assert.Error(t, err)
}
