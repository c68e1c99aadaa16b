package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns what it printed on stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)

	oldStdout := os.Stdout
	os.Stdout = tmpfile
	runErr := newApp().Run(context.Background(), append([]string{"lookupsep"}, args...))
	os.Stdout = oldStdout

	require.NoError(t, tmpfile.Close())
	content, err := os.ReadFile(tmpfile.Name())
	require.NoError(t, err)
	return string(content), runErr
}

func TestApp_Commands(t *testing.T) {
	app := newApp()
	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"edit", "suggest", "split", "join", "show", "validate", "schema", "init"}, names)
}

func TestApp_Join(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "join", "Ajax", "Inc")
	require.NoError(t, err)
	assert.Equal(t, "Ajax,Inc\n", out)
}

func TestApp_JoinNeedsTwoHalves(t *testing.T) {
	_, err := run(t, "join", "Ajax")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "left and right halves required")
}

func TestApp_SplitWithSeparatorFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "split", "--separator", "|", "--side", "right", "a|b")
	require.NoError(t, err)
	assert.Equal(t, "b\n", out)
}

func TestApp_SplitNeedsValue(t *testing.T) {
	_, err := run(t, "split")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value required")
}

func TestApp_GlobalConfigFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \";\"\n"), 0644))

	out, err := run(t, "--config", path, "join", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a;b\n", out)
}

func TestApp_ConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"/\"\n"), 0644))
	t.Setenv("LOOKUPSEP_CONFIG", path)

	out, err := run(t, "join", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a/b\n", out)
}

func TestApp_SuggestWithoutBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOOKUPSEP_API_URL", "")

	_, err := run(t, "suggest", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API base URL configured")
}
