package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companiesBody = `{"records": [
	{"name": "Acme, Corp"},
	{"name": "Ajax, Inc"},
	{"name": "Bolt, Ltd"},
	{"name": "broken"}
]}`

// captureOutput runs fn with stdout redirected and returns what it printed
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "output")
	require.NoError(t, err)

	oldStdout := os.Stdout
	os.Stdout = tmpfile
	fnErr := fn()
	os.Stdout = oldStdout

	require.NoError(t, tmpfile.Close())
	content, err := os.ReadFile(tmpfile.Name())
	require.NoError(t, err)

	return string(content), fnErr
}

// inEmptyDir moves the test into a fresh directory without config files
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// recordsServer serves body on the records endpoint and counts requests
func recordsServer(t *testing.T, status int, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/data/v9.1/records", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestLoadConfig_CurrentDirectory(t *testing.T) {
	dir := inEmptyDir(t)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, ",", cfg.Separator)

	writeConfig(t, dir, ".lookupsep.yml", "separator: \" | \"\n")
	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, " | ", cfg.Separator)
	assert.Contains(t, cfg.Path, ".lookupsep.yml")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestInitializeComponents_WithoutBaseURL(t *testing.T) {
	inEmptyDir(t)

	comps, err := initializeComponents(Common{LogLevel: "error"}, os.Stderr)
	require.NoError(t, err)
	assert.Nil(t, comps.provider)
	assert.Nil(t, comps.searcher())

	_, err = comps.requireProvider()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API base URL configured in (defaults)")
}

func TestInitializeComponents_FlagOverrides(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, ".lookupsep.yml", `api:
  base_url: https://from-config.example.com
`)

	comps, err := initializeComponents(Common{
		LogLevel: "error",
		BaseURL:  "https://from-flag.example.com",
		Token:    "secret",
	}, os.Stderr)
	require.NoError(t, err)
	require.NotNil(t, comps.provider)
	assert.NotNil(t, comps.searcher())
	assert.Equal(t, "https://from-flag.example.com", comps.config.API.BaseURL)
	assert.Equal(t, "secret", comps.config.API.Token)
	assert.Equal(t, "https://from-flag.example.com/api/data/v9.1/records?search=a", comps.provider.SearchURL("a"))
}

func TestInitializeComponents_InvalidConfig(t *testing.T) {
	dir := inEmptyDir(t)
	writeConfig(t, dir, ".lookupsep.yml", "side: middle\n")

	_, err := initializeComponents(Common{}, os.Stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid side")
}

func TestSeparatorFor(t *testing.T) {
	dir := inEmptyDir(t)

	sep, err := separatorFor(";", "")
	require.NoError(t, err)
	assert.Equal(t, ";", sep)

	sep, err = separatorFor("", "")
	require.NoError(t, err)
	assert.Equal(t, ",", sep)

	path := writeConfig(t, dir, "other.yml", "separator: \"/\"\n")
	sep, err = separatorFor("", path)
	require.NoError(t, err)
	assert.Equal(t, "/", sep)
}
