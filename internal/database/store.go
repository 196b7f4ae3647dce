// file: internal/database/store.go
// version: 3.0.0
// guid: 6c3a9f1e-2b84-4d07-91e5-a8d0c7b4f326

package database

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrStorage marks every failure raised by the persistence layer.
	ErrStorage = errors.New("storage error")
	// ErrDuplicateISBN marks an insert rejected because the ISBN is already catalogued.
	ErrDuplicateISBN = errors.New("isbn already catalogued")
)

// Store defines the catalog persistence operations.
type Store interface {
	// Lifecycle
	Initialize(ctx context.Context) error
	Close() error

	// Authors
	ResolveAuthor(ctx context.Context, name string) (int64, error)
	GetAuthorByID(ctx context.Context, id int64) (*Author, error)
	GetAuthorByName(ctx context.Context, name string) (*Author, error)
	CountAuthors(ctx context.Context) (int, error)

	// Books
	IsPresent(ctx context.Context, isbn string) (bool, error)
	InsertBook(ctx context.Context, book *Book) error
	GetBookByISBN(ctx context.Context, isbn string) (*Book, error)
	CountBooks(ctx context.Context) (int, error)
}

// Author is a distinct author name referenced by one or more books.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Book is one catalogued edition, keyed by ISBN.
type Book struct {
	ISBN          string    `json:"isbn"`
	Title         string    `json:"title"`
	AuthorDisplay string    `json:"author_display"`
	Publisher     string    `json:"publisher"`
	PublishedDate string    `json:"published_date"`
	Description   string    `json:"description"`
	PageCount     *int      `json:"page_count,omitempty"` // nil when the provider had none
	AuthorID      int64     `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
}
