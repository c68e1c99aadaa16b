package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/lookupsep/internal/derrors"
	"github.com/NikitaCOEUR/lookupsep/internal/field"
)

func TestWriteOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutputs(path, field.Outputs{Value: "Ajax,Inc"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": "Ajax,Inc"}`, string(content))
}

func TestWriteOutputs_EmptyValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutputs(path, field.Outputs{}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": ""}`, string(content))
}

func TestWriteOutputs_NoPath(t *testing.T) {
	require.NoError(t, writeOutputs("", field.Outputs{Value: "a,b"}))
}

func TestWriteOutputs_InvalidPath(t *testing.T) {
	err := writeOutputs("/nonexistent/dir/out.json", field.Outputs{Value: "a,b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write outputs")
	assert.ErrorIs(t, err, os.ErrNotExist)
	var cfgErr *derrors.ConfigurationError
	assert.False(t, errors.As(err, &cfgErr))
}

func TestEdit_InvalidLogFile(t *testing.T) {
	err := Edit(EditParams{LogPath: "/nonexistent/dir/lookupsep.log"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestEdit_InvalidConfig(t *testing.T) {
	err := Edit(EditParams{
		Common:  Common{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")},
		LogPath: filepath.Join(t.TempDir(), "lookupsep.log"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestEdit_RequiresTerminal(t *testing.T) {
	inEmptyDir(t)

	err := edit(EditParams{LogPath: filepath.Join(t.TempDir(), "lookupsep.log")}, func() bool { return false })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
