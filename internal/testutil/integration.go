// file: internal/testutil/integration.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/jdfalk/isbn-catalog/internal/database"
	"github.com/stretchr/testify/require"
)

// IntegrationEnv holds all resources for an integration test.
type IntegrationEnv struct {
	Store   *database.SQLiteStore
	DBPath  string
	TempDir string
	T       *testing.T
}

// SetupIntegration creates an initialized SQLite catalog in a temp dir and
// points config.AppConfig at it. The previous AppConfig is restored on cleanup.
func SetupIntegration(t *testing.T) *IntegrationEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tmpBase := t.TempDir()
	dbPath := filepath.Join(tmpBase, "catalog.db")

	store, err := database.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Initialize(context.Background()))

	previous := config.AppConfig
	config.AppConfig = config.Config{
		DatabasePath:      dbPath,
		Providers:         []string{config.ProviderGoogleBooks},
		ProviderTimeout:   5 * time.Second,
		ProviderRateLimit: 0,
		LogLevel:          "info",
		ServeHost:         "127.0.0.1",
		ServePort:         "0",
	}

	t.Cleanup(func() {
		_ = store.Close()
		config.AppConfig = previous
	})

	return &IntegrationEnv{
		Store:   store,
		DBPath:  dbPath,
		TempDir: tmpBase,
		T:       t,
	}
}

// BookCount returns the number of catalogued books, failing the test on error.
func (env *IntegrationEnv) BookCount() int {
	env.T.Helper()
	n, err := env.Store.CountBooks(context.Background())
	require.NoError(env.T, err)
	return n
}

// AuthorCount returns the number of author rows, failing the test on error.
func (env *IntegrationEnv) AuthorCount() int {
	env.T.Helper()
	n, err := env.Store.CountAuthors(context.Background())
	require.NoError(env.T, err)
	return n
}
