package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
}

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	content := []byte(`
separator: ","
side: right
editable: false
min_query_length: 2
label_text: "Company, Suffix"
show_label: true
value: "Acme, Corp"
api:
  base_url: https://example.crm.dynamics.com
  token: secret
  timeout: 1m30s
`)

	result, err := ValidateWithSchema("test.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_InvalidSide(t *testing.T) {
	result, err := ValidateWithSchema("test.yml", []byte("side: up\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "side", result.Errors[0].Field)
}

func TestValidateWithSchema_Violations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative min length", "min_query_length: -1\n"},
		{"min length not a number", "min_query_length: two\n"},
		{"unknown key", "separtor: ','\n"},
		{"unknown api key", "api:\n  url: https://x\n"},
		{"bad timeout", "api:\n  timeout: soon\n"},
		{"bad base url", "api:\n  base_url: example.com\n"},
		{"editable not bool", "editable: maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema("test.yaml", []byte(tt.content))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Errors)
		})
	}
}

func TestValidateWithSchema_EmptyDocument(t *testing.T) {
	result, err := ValidateWithSchema("test.yml", []byte(""))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_InvalidYAMLSyntax(t *testing.T) {
	result, err := ValidateWithSchema("test.yml", []byte("side: [unclosed\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_JSON(t *testing.T) {
	result, err := ValidateWithSchema("test.json", []byte(`{"side": "left", "separator": "|"}`))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = ValidateWithSchema("test.json", []byte(`{"side": `))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_TOML(t *testing.T) {
	content := []byte(`side = "right"
min_query_length = 1

[api]
base_url = "https://example.com"
`)
	result, err := ValidateWithSchema("test.toml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)

	result, err = ValidateWithSchema("test.toml", []byte(`side = "sideways"`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("test.ini", []byte("side=left"))
	assert.Error(t, err)
}

func TestValidateWithSchema_SampleConfig(t *testing.T) {
	result, err := ValidateWithSchema(".lookupsep.yml", []byte(SampleConfig()))
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)

	rules, err := Validate(writeConfig(t, ".lookupsep.yml", SampleConfig()))
	require.NoError(t, err)
	assert.True(t, rules.Valid, "%v", rules.Errors)
}
