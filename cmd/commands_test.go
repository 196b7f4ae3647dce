// file: cmd/commands_test.go
// version: 2.0.0
// guid: 6f5b7d78-11d8-4c1a-a150-96d2c4a1a885

package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/jdfalk/isbn-catalog/internal/database"
	"github.com/jdfalk/isbn-catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withGoogleBooks isolates config and points the Google Books provider at a mock.
func withGoogleBooks(t *testing.T, responses map[string]string) (*testutil.ProviderServer, string) {
	t.Helper()
	home := isolate(t)
	srv := testutil.MockGoogleBooksServer(t, responses)
	t.Setenv("ISBN_CATALOG_GOOGLE_BOOKS_BASE_URL", srv.URL)
	t.Setenv("ISBN_CATALOG_PROVIDER_RATE_LIMIT", "0")
	return srv, filepath.Join(home, "catalog.db")
}

func countBooks(t *testing.T, dbPath string) int {
	t.Helper()
	store, err := database.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Initialize(context.Background()))
	n, err := store.CountBooks(context.Background())
	require.NoError(t, err)
	return n
}

func TestInitCommand(t *testing.T) {
	home := isolate(t)
	dbPath := filepath.Join(home, "nested", "catalog.db")

	out, _, err := run(t, "", "--db", dbPath, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog ready: "+dbPath)

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	// Running it again leaves the catalog intact.
	_, _, err = run(t, "", "--db", dbPath, "init")
	require.NoError(t, err)
}

func TestInitCommand_FailsOnUnusablePath(t *testing.T) {
	home := isolate(t)
	blocker := filepath.Join(home, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, _, err := run(t, "", "--db", filepath.Join(blocker, "catalog.db"), "init")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrReported))
}

func TestAddCommand_AddsThenReportsDuplicate(t *testing.T) {
	srv, dbPath := withGoogleBooks(t, map[string]string{
		testutil.SapiensISBN: testutil.GoogleBooksSapiensResponse,
	})

	out, _, err := run(t, "", "--db", dbPath, "add", "978-0-14-312774-1")
	require.NoError(t, err)
	assert.Equal(t, "[SUCCESS] The book 'Sapiens' was added to the catalog.\n", out)
	assert.Equal(t, 1, srv.Hits())

	out, _, err = run(t, "", "--db", dbPath, "add", testutil.SapiensISBN)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] The book with ISBN "+testutil.SapiensISBN+" is already in the catalog.\n", out)
	assert.Equal(t, 1, srv.Hits(), "duplicate must not reach the provider")

	assert.Equal(t, 1, countBooks(t, dbPath))
}

func TestAddCommand_NotFound(t *testing.T) {
	_, dbPath := withGoogleBooks(t, nil)

	out, _, err := run(t, "", "--db", dbPath, "add", "0000000000")
	require.NoError(t, err)
	assert.Equal(t, "[ERROR] No book found for ISBN 0000000000.\n", out)
	assert.Equal(t, 0, countBooks(t, dbPath))
}

func TestAddCommand_ReadsISBNFromStdin(t *testing.T) {
	_, dbPath := withGoogleBooks(t, map[string]string{
		testutil.SapiensISBN: testutil.GoogleBooksSapiensResponse,
	})

	out, _, err := run(t, "  "+testutil.SapiensISBN+"  \n", "--db", dbPath, "add")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ISBN: "))
	assert.Contains(t, out, "[SUCCESS] The book 'Sapiens' was added to the catalog.")
}

func TestAddCommand_EmptyInput(t *testing.T) {
	srv, dbPath := withGoogleBooks(t, nil)

	out, _, err := run(t, "\n", "--db", dbPath, "add")
	require.NoError(t, err)
	assert.Contains(t, out, "[WARNING] Enter an ISBN.")
	assert.Equal(t, 0, srv.Hits())
}

func TestAddCommand_ProviderDownIsNotFound(t *testing.T) {
	home := isolate(t)
	srv := testutil.StatusServer(t, 503, "unavailable")
	t.Setenv("ISBN_CATALOG_GOOGLE_BOOKS_BASE_URL", srv.URL)

	out, _, err := run(t, "", "--db", filepath.Join(home, "catalog.db"), "add", testutil.SapiensISBN)
	require.NoError(t, err)
	assert.Contains(t, out, "[ERROR] No book found")
}

func TestAddCommand_FallsBackToOpenLibrary(t *testing.T) {
	_, dbPath := withGoogleBooks(t, nil)
	ol := testutil.MockOpenLibraryServer(t, map[string]string{
		"/isbn/" + testutil.SapiensISBN: testutil.OpenLibrarySapiensEdition,
		"/authors/OL7131303A":          testutil.OpenLibraryHarariAuthor,
	})
	t.Setenv("ISBN_CATALOG_OPEN_LIBRARY_BASE_URL", ol.URL)

	out, _, err := run(t, "", "--db", dbPath, "--providers", "google_books,open_library", "add", testutil.SapiensISBN)
	require.NoError(t, err)
	assert.Contains(t, out, "[SUCCESS] The book 'Sapiens: A Brief History of Humankind' was added")

	out, _, err = run(t, "", "--db", dbPath, "show", testutil.SapiensISBN)
	require.NoError(t, err)
	assert.Contains(t, out, "Harper Perennial")
	assert.Contains(t, out, "464")
}

func TestShowCommand(t *testing.T) {
	_, dbPath := withGoogleBooks(t, map[string]string{
		"9780060853983": testutil.GoogleBooksCoauthoredResponse,
	})

	_, _, err := run(t, "", "--db", dbPath, "add", "9780060853983")
	require.NoError(t, err)

	out, _, err := run(t, "", "--db", dbPath, "show", "978-0060853983")
	require.NoError(t, err)
	assert.Contains(t, out, "Good Omens")
	assert.Contains(t, out, "Terry Pratchett, Neil Gaiman")
	assert.Contains(t, out, "William Morrow")
	assert.Regexp(t, `Pages:\s+N/A`, out)
	assert.Regexp(t, `Description:\s+N/A`, out)
}

func TestShowCommand_Missing(t *testing.T) {
	_, dbPath := withGoogleBooks(t, nil)

	out, _, err := run(t, "", "--db", dbPath, "show", "0000000000")
	require.NoError(t, err)
	assert.Equal(t, "[INFO] The book with ISBN 0000000000 is not in the catalog.\n", out)
}

func TestStatsCommand(t *testing.T) {
	_, dbPath := withGoogleBooks(t, map[string]string{
		testutil.SapiensISBN: testutil.GoogleBooksSapiensResponse,
		"9780060853983":      testutil.GoogleBooksCoauthoredResponse,
	})

	for _, isbn := range []string{testutil.SapiensISBN, "9780060853983"} {
		_, _, err := run(t, "", "--db", dbPath, "add", isbn)
		require.NoError(t, err)
	}

	out, _, err := run(t, "", "--db", dbPath, "stats")
	require.NoError(t, err)
	assert.Regexp(t, `Books:\s+2`, out)
	assert.Regexp(t, `Authors:\s+2`, out)
}

func TestPrintOutcome(t *testing.T) {
	var b strings.Builder
	printOutcome(&b, catalog.Outcome{State: catalog.StateNotFound, ISBN: "123"})
	assert.Equal(t, "[ERROR] No book found for ISBN 123.\n", b.String())
}

func TestBuildProvider(t *testing.T) {
	cfg := config.Config{Providers: []string{config.ProviderGoogleBooks}}
	p, err := buildProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Google Books", p.Name())

	cfg.Providers = []string{config.ProviderOpenLibrary, config.ProviderGoogleBooks}
	p, err = buildProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Open Library > Google Books", p.Name())

	cfg.Providers = nil
	_, err = buildProvider(cfg)
	assert.Error(t, err)

	cfg.Providers = []string{"goodreads"}
	_, err = buildProvider(cfg)
	assert.Error(t, err)
}

func TestSpinner_NoopWithoutTerminal(t *testing.T) {
	var b strings.Builder
	stop := spinner(&b, "working")
	stop()
	assert.Empty(t, b.String())
}

func TestPageCount(t *testing.T) {
	n := 320
	assert.Equal(t, "320", pageCount(&n))
	assert.Equal(t, "N/A", pageCount(nil))
}

func TestServerConfig(t *testing.T) {
	isolate(t)
	config.AppConfig = config.Config{ServeHost: "0.0.0.0", ServePort: "9000", ServeRateLimit: 5}

	cmd := newServeCmd()
	cfg := serverConfig(cmd)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5, cfg.RateLimit)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)

	require.NoError(t, cmd.Flags().Set("port", "9100"))
	require.NoError(t, cmd.Flags().Set("write-timeout", "2m"))
	cfg = serverConfig(cmd)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.WriteTimeout)
}

func TestServeCommand_StopsOnCancel(t *testing.T) {
	home := isolate(t)
	root := NewRootCmd()
	root.SetArgs([]string{"--db", filepath.Join(home, "catalog.db"), "serve", "--host", "127.0.0.1", "--port", "0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}
