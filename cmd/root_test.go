// file: cmd/root_test.go
// version: 2.0.0
// guid: 8b2f4d61-7c3e-4a95-b0d8-2e6f1a9c5b47

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears viper so no real config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	orig := config.AppConfig
	t.Cleanup(func() {
		viper.Reset()
		config.AppConfig = orig
	})
	return home
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"init", "add", "show", "stats", "serve", "config"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "db", "providers", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestNewRootCmd_FreshFlags(t *testing.T) {
	a := NewRootCmd()
	require.NoError(t, a.PersistentFlags().Set("db", "/tmp/a.db"))

	b := NewRootCmd()
	assert.Equal(t, "", b.PersistentFlags().Lookup("db").Value.String())
}

func TestInitConfig_Defaults(t *testing.T) {
	home := isolate(t)

	_, _, err := run(t, "", "config", "show")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".isbn-catalog", "catalog.db"), config.AppConfig.DatabasePath)
	assert.Equal(t, []string{config.ProviderGoogleBooks}, config.AppConfig.Providers)
	assert.Equal(t, "info", config.AppConfig.LogLevel)
}

func TestInitConfig_ConfigFileInHome(t *testing.T) {
	home := isolate(t)
	dbPath := filepath.Join(home, "from-file.db")
	body := "database_path: " + dbPath + "\nproviders: [open_library, google_books]\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".isbn-catalog.yaml"), []byte(body), 0o644))

	_, _, err := run(t, "", "config", "show")
	require.NoError(t, err)

	assert.Equal(t, dbPath, config.AppConfig.DatabasePath)
	assert.Equal(t, []string{config.ProviderOpenLibrary, config.ProviderGoogleBooks}, config.AppConfig.Providers)
	assert.Equal(t, "warn", config.AppConfig.LogLevel)
}

func TestInitConfig_ExplicitFileMissing(t *testing.T) {
	home := isolate(t)

	_, _, err := run(t, "", "--config", filepath.Join(home, "nope.yaml"), "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestInitConfig_FlagsOverrideFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".isbn-catalog.yaml"),
		[]byte("database_path: /from/file.db\n"), 0o644))

	flagPath := filepath.Join(home, "flag.db")
	_, _, err := run(t, "", "--db", flagPath, "--providers", "open_library", "config", "show")
	require.NoError(t, err)

	assert.Equal(t, flagPath, config.AppConfig.DatabasePath)
	assert.Equal(t, []string{config.ProviderOpenLibrary}, config.AppConfig.Providers)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	home := isolate(t)
	envPath := filepath.Join(home, "env.db")
	t.Setenv("ISBN_CATALOG_DATABASE_PATH", envPath)

	_, _, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Equal(t, envPath, config.AppConfig.DatabasePath)
}

func TestInitConfig_RejectsInvalid(t *testing.T) {
	isolate(t)

	_, _, err := run(t, "", "--providers", "goodreads", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")

	viper.Reset()
	_, _, err = run(t, "", "--log-level", "chatty", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestConfigShow_MasksSecrets(t *testing.T) {
	isolate(t)
	t.Setenv("ISBN_CATALOG_GOOGLE_BOOKS_API_KEY", "AIzaSyExampleKey1234")

	out, _, err := run(t, "", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "google_books_api_key: AIz****1234")
	assert.NotContains(t, out, "AIzaSyExampleKey1234")
	assert.Contains(t, out, "provider_timeout: 15s")
	assert.Contains(t, out, "serve_rate_limit: 30")
}
