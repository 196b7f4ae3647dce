// file: internal/catalog/service.go
// version: 1.0.0
// guid: 8c5a2e17-f4d9-4b36-b0e8-7a1c6d3f9e52

package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/database"
	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/jdfalk/isbn-catalog/internal/metadata"
	"github.com/jdfalk/isbn-catalog/internal/metrics"
	ulid "github.com/oklog/ulid/v2"
)

// Service runs the add-a-book workflow against a store and a metadata provider.
type Service struct {
	store    database.Store
	provider metadata.Provider
	now      func() time.Time
	newID    func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRequestIDs replaces the ULID generator used to tag reconciliations.
func WithRequestIDs(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// NewService creates a catalog service.
func NewService(store database.Store, provider metadata.Provider, opts ...Option) *Service {
	s := &Service{
		store:    store,
		provider: provider,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeISBN trims the identifier and strips hyphens and spaces. No other
// format validation is applied.
func NormalizeISBN(raw string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(raw))
}

// Reconcile checks the catalog for raw, fetches metadata when it is new,
// resolves the author and stores the book. It never returns an error; the
// outcome carries it.
func (s *Service) Reconcile(ctx context.Context, raw string) Outcome {
	start := s.now()
	log := logging.NewServiceLogger("catalog", s.newID())

	out := s.reconcile(ctx, log, raw)

	elapsed := s.now().Sub(start)
	metrics.IncReconciliation(out.State.String())
	metrics.ObserveReconciliationDuration(elapsed)
	log.LogOperation("Reconcile", map[string]any{
		"isbn":    out.ISBN,
		"state":   out.State.String(),
		"elapsed": elapsed.Round(time.Millisecond).String(),
	})
	return out
}

func (s *Service) reconcile(ctx context.Context, log *logging.ServiceLogger, raw string) Outcome {
	isbn := NormalizeISBN(raw)
	if isbn == "" {
		return Outcome{State: StateMissingInput, Err: wrap(ErrMissingInput, "validate", "", nil)}
	}

	present, err := s.store.IsPresent(ctx, isbn)
	if err != nil {
		log.LogError("IsPresent", err)
		return storageFailure(isbn, "check existence", err)
	}
	if present {
		return Outcome{State: StateDuplicate, ISBN: isbn, Err: wrap(ErrDuplicate, "check existence", isbn, nil)}
	}

	meta, ok := s.provider.Fetch(ctx, isbn)
	if !ok || meta == nil {
		log.LogWarning("Fetch", "no metadata from "+s.provider.Name()+" for "+isbn)
		return Outcome{State: StateNotFound, ISBN: isbn, Err: wrap(ErrNotFound, "fetch", isbn, nil)}
	}

	authorID, err := s.store.ResolveAuthor(ctx, meta.PrimaryAuthor())
	if err != nil {
		log.LogError("ResolveAuthor", err)
		return storageFailure(isbn, "resolve author", err)
	}

	book := &database.Book{
		ISBN:          isbn,
		Title:         meta.Title,
		AuthorDisplay: meta.AuthorDisplay,
		Publisher:     meta.Publisher,
		PublishedDate: meta.PublishedDate,
		Description:   meta.Description,
		PageCount:     meta.PageCount,
		AuthorID:      authorID,
	}
	if err := s.store.InsertBook(ctx, book); err != nil {
		if errors.Is(err, database.ErrDuplicateISBN) {
			log.LogWarning("InsertBook", "lost insert race for "+isbn)
			return Outcome{State: StateDuplicate, ISBN: isbn, Err: wrap(ErrDuplicate, "persist", isbn, err)}
		}
		log.LogError("InsertBook", err)
		return storageFailure(isbn, "persist", err)
	}

	if stored, err := s.store.GetBookByISBN(ctx, isbn); err == nil && stored != nil {
		book = stored
	}
	s.RefreshGauges(ctx)

	return Outcome{State: StateAdded, ISBN: isbn, Title: book.Title, Book: book}
}

func storageFailure(isbn, step string, err error) Outcome {
	return Outcome{State: StateStorageError, ISBN: isbn, Err: wrap(ErrStorage, step, isbn, err), cause: err}
}

// Lookup returns the catalogued book for raw, or nil when it is not stored.
func (s *Service) Lookup(ctx context.Context, raw string) (*database.Book, error) {
	isbn := NormalizeISBN(raw)
	if isbn == "" {
		return nil, wrap(ErrMissingInput, "lookup", "", nil)
	}
	book, err := s.store.GetBookByISBN(ctx, isbn)
	if err != nil {
		return nil, wrap(ErrStorage, "lookup", isbn, err)
	}
	return book, nil
}

// RefreshGauges publishes the current book and author counts.
func (s *Service) RefreshGauges(ctx context.Context) {
	if n, err := s.store.CountBooks(ctx); err == nil {
		metrics.SetBooks(n)
	} else {
		logging.Warnf("count books: %v", err)
	}
	if n, err := s.store.CountAuthors(ctx); err == nil {
		metrics.SetAuthors(n)
	} else {
		logging.Warnf("count authors: %v", err)
	}
}

// ProviderName reports which metadata source the service queries.
func (s *Service) ProviderName() string {
	return s.provider.Name()
}
