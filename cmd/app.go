// file: cmd/app.go
// version: 1.0.0
// guid: 3b9e5c27-d1a4-4f86-8e03-c7a2f6b1d958

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/config"
	"github.com/jdfalk/isbn-catalog/internal/database"
	"github.com/jdfalk/isbn-catalog/internal/metadata"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// buildProvider chains the configured providers in order.
func buildProvider(cfg config.Config) (metadata.Provider, error) {
	providers := make([]metadata.Provider, 0, len(cfg.Providers))
	for _, name := range cfg.Providers {
		switch name {
		case config.ProviderGoogleBooks:
			providers = append(providers, metadata.NewGoogleBooksClient(metadata.ClientOptions{
				BaseURL:   cfg.GoogleBooksBaseURL,
				APIKey:    cfg.GoogleBooksAPIKey,
				Timeout:   cfg.ProviderTimeout,
				RateLimit: cfg.ProviderRateLimit,
			}))
		case config.ProviderOpenLibrary:
			providers = append(providers, metadata.NewOpenLibraryClient(metadata.ClientOptions{
				BaseURL:   cfg.OpenLibraryBaseURL,
				Timeout:   cfg.ProviderTimeout,
				RateLimit: cfg.ProviderRateLimit,
			}))
		default:
			return nil, fmt.Errorf("unknown metadata provider %q", name)
		}
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("no metadata providers configured")
	}
	return metadata.Chain(providers...), nil
}

// openStore opens and initializes the configured catalog. Initialization
// failure aborts the command.
func openStore(ctx context.Context) (*database.SQLiteStore, error) {
	store, err := database.NewSQLiteStore(config.AppConfig.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := store.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	return store, nil
}

// openCatalog opens the store and wires the reconciliation service to it.
func openCatalog(ctx context.Context) (*database.SQLiteStore, *catalog.Service, error) {
	provider, err := buildProvider(config.AppConfig)
	if err != nil {
		return nil, nil, err
	}
	store, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return store, catalog.NewService(store, provider), nil
}

// spinner shows an indeterminate progress indicator on w while work runs.
// Nothing is drawn unless w is a terminal.
func spinner(w io.Writer, description string) (stop func()) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				_ = bar.Finish()
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()
	return func() {
		close(done)
		<-finished
	}
}

// pageCount renders an optional page count.
func pageCount(n *int) string {
	if n == nil {
		return metadata.NotAvailable
	}
	return fmt.Sprintf("%d", *n)
}
