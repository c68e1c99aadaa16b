package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_Defaults(t *testing.T) {
	inEmptyDir(t)

	out, err := captureOutput(t, func() error {
		return Show(context.Background(), ShowParams{})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "(defaults)")
	assert.Contains(t, out, "No value")
	assert.Contains(t, out, "No base URL configured")
	assert.NotContains(t, out, "Suggestions for")
}

func TestShow_WithValue(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, ".lookupsep.yml", `side: right
label_text: "Company, Suffix"
show_label: true
`)

	out, err := captureOutput(t, func() error {
		return Show(context.Background(), ShowParams{Value: "Ajax,Inc"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, ".lookupsep.yml")
	assert.Contains(t, out, "Ajax,Inc")
	assert.Contains(t, out, "(Suffix)")
	assert.Contains(t, out, "right")
}

func TestShow_WithQuery(t *testing.T) {
	inEmptyDir(t)
	srv, calls := recordsServer(t, 200, companiesBody)

	out, err := captureOutput(t, func() error {
		return Show(context.Background(), ShowParams{
			Common: Common{LogLevel: "error", BaseURL: srv.URL},
			Query:  "Aj",
		})
	})
	require.NoError(t, err)
	assert.Contains(t, out, `Suggestions for "Aj"`)
	assert.Contains(t, out, "1. ")
	assert.Contains(t, out, "Ajax")
	assert.NotContains(t, out, "Acme")
	assert.Equal(t, 1, *calls)
}

func TestShow_QueryFailure(t *testing.T) {
	inEmptyDir(t)
	srv, _ := recordsServer(t, 503, "")

	out, err := captureOutput(t, func() error {
		return Show(context.Background(), ShowParams{
			Common: Common{LogLevel: "error", BaseURL: srv.URL},
			Query:  "Aj",
		})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "No suggestions")
}

func TestShow_QueryWithoutBaseURL(t *testing.T) {
	inEmptyDir(t)

	err := Show(context.Background(), ShowParams{Query: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API base URL configured")
}
