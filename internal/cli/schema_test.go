package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_PrintToStdout(t *testing.T) {
	out, err := captureOutput(t, func() error { return Schema("") })
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "lookupsep Configuration", doc["title"])
}

func TestSchema_WriteToFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "lookupsep.schema.json")

	out, err := captureOutput(t, func() error { return Schema(outputFile) })
	require.NoError(t, err)
	assert.Contains(t, out, "JSON Schema written to: "+outputFile)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	schemaStr := string(content)
	assert.Contains(t, schemaStr, `"$schema": "http://json-schema.org/draft-07/schema#"`)
	assert.Contains(t, schemaStr, `"separator"`)
	assert.Contains(t, schemaStr, `"min_query_length"`)
	assert.Contains(t, schemaStr, `"base_url"`)
}

func TestSchema_WriteToFile_InvalidPath(t *testing.T) {
	err := Schema("/nonexistent/directory/schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write schema")
}
