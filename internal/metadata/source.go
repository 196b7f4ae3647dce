// file: internal/metadata/source.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-e1f2a3b4c5d6

package metadata

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/jdfalk/isbn-catalog/internal/metrics"
)

// NotAvailable is stored for any text field the provider did not supply.
const NotAvailable = "N/A"

var (
	// ErrTransport covers network failures, non-2xx responses and bodies
	// that are not valid JSON.
	ErrTransport = errors.New("provider transport error")
	// ErrNoMatch means the provider answered but knows no book for the ISBN.
	ErrNoMatch = errors.New("no matching book")
)

// Provider is a pluggable metadata source keyed by ISBN.
type Provider interface {
	Name() string
	// Fetch returns the normalized record for isbn, or false when the
	// provider has no match or could not be reached.
	Fetch(ctx context.Context, isbn string) (*BookMetadata, bool)
}

// BookMetadata is a provider record normalized for the catalog.
type BookMetadata struct {
	Title         string
	Authors       []string
	AuthorDisplay string
	Publisher     string
	PublishedDate string
	Description   string
	PageCount     *int
	ISBN          string
	Source        string
}

// PrimaryAuthor is the name used for author identity: the first listed
// author, or NotAvailable when the provider gave none.
func (m *BookMetadata) PrimaryAuthor() string {
	for _, a := range m.Authors {
		if a = strings.TrimSpace(a); a != "" {
			return a
		}
	}
	return NotAvailable
}

// normalize fills missing text fields with NotAvailable and echoes the
// requested ISBN.
func normalize(meta *BookMetadata, isbn, source string) *BookMetadata {
	authors := make([]string, 0, len(meta.Authors))
	for _, a := range meta.Authors {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	meta.Authors = authors
	meta.AuthorDisplay = orNotAvailable(strings.Join(authors, ", "))
	meta.Title = orNotAvailable(meta.Title)
	meta.Publisher = orNotAvailable(meta.Publisher)
	meta.PublishedDate = orNotAvailable(meta.PublishedDate)
	meta.Description = orNotAvailable(meta.Description)
	meta.ISBN = isbn
	meta.Source = source
	return meta
}

func orNotAvailable(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return NotAvailable
	}
	return s
}

// lookupFunc is the error-returning half of a provider.
type lookupFunc func(ctx context.Context, isbn string) (*BookMetadata, error)

// absorb runs lookup and turns every failure into an absent result,
// recording the call in logs and metrics.
func absorb(ctx context.Context, provider, isbn string, lookup lookupFunc) (*BookMetadata, bool) {
	start := time.Now()
	meta, err := lookup(ctx, isbn)
	elapsed := time.Since(start)
	metrics.ObserveProviderDuration(provider, elapsed)

	switch {
	case err == nil:
		metrics.IncProviderRequest(provider, "hit")
		logging.LogProviderCall(provider, isbn, elapsed, nil)
		return meta, true
	case errors.Is(err, ErrNoMatch):
		metrics.IncProviderRequest(provider, "miss")
		logging.LogProviderCall(provider, isbn, elapsed, nil)
	default:
		metrics.IncProviderRequest(provider, "error")
		logging.LogProviderCall(provider, isbn, elapsed, err)
	}
	return nil, false
}

type chain struct {
	providers []Provider
}

// Chain asks each provider in order and returns the first hit.
func Chain(providers ...Provider) Provider {
	if len(providers) == 1 {
		return providers[0]
	}
	return &chain{providers: providers}
}

func (c *chain) Name() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return strings.Join(names, " > ")
}

func (c *chain) Fetch(ctx context.Context, isbn string) (*BookMetadata, bool) {
	for _, p := range c.providers {
		if ctx.Err() != nil {
			return nil, false
		}
		if meta, ok := p.Fetch(ctx, isbn); ok {
			return meta, true
		}
	}
	return nil, false
}
