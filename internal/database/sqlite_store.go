// file: internal/database/sqlite_store.go
// version: 3.0.0
// guid: 8b9c0d1e-4a27-4e6f-b3d5-1f0e9c8a7d42

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdfalk/isbn-catalog/internal/logging"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/unicode/norm"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const bookSelectColumns = `
	isbn, title, author_display, publisher, pub_date,
	description, page_count, author_id, created_at
`

func scanBook(scanner rowScanner, book *Book) error {
	var pages sql.NullInt64
	if err := scanner.Scan(
		&book.ISBN, &book.Title, &book.AuthorDisplay, &book.Publisher,
		&book.PublishedDate, &book.Description, &pages, &book.AuthorID,
		&book.CreatedAt,
	); err != nil {
		return err
	}
	if pages.Valid {
		n := int(pages.Int64)
		book.PageCount = &n
	}
	return nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS authors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS books (
		isbn TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author_display TEXT NOT NULL,
		publisher TEXT NOT NULL,
		pub_date TEXT NOT NULL,
		description TEXT NOT NULL,
		page_count INTEGER,
		author_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (author_id) REFERENCES authors(id)
	);

	CREATE INDEX IF NOT EXISTS idx_books_author ON books(author_id);
`

// SQLiteStore implements the Store interface using SQLite3
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path. Tables are
// not created until Initialize is called.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: ensure data dir: %v", ErrStorage, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open SQLite database: %v", ErrStorage, err)
	}
	// One long-lived connection shared by every operation in the session.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: pragma foreign_keys: %v", ErrStorage, err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping SQLite database: %v", ErrStorage, err)
	}

	return &SQLiteStore{db: db}, nil
}

// Initialize creates the authors and books tables. Safe to call on an
// already-initialized database; any other failure is returned.
func (s *SQLiteStore) Initialize(ctx context.Context) error {
	start := time.Now()
	_, err := s.db.ExecContext(ctx, schema)
	logging.LogDatabaseOperation("create tables", "authors,books", time.Since(start), 0, err)
	if err != nil {
		return fmt.Errorf("%w: create tables: %v", ErrStorage, err)
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// normalizeName puts author names in NFC so canonically-equivalent spellings
// share one row. Matching is otherwise exact.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Author operations

// ResolveAuthor returns the id of the author with exactly this name,
// inserting the author first if needed.
func (s *SQLiteStore) ResolveAuthor(ctx context.Context, name string) (int64, error) {
	name = normalizeName(name)
	if name == "" {
		return 0, fmt.Errorf("%w: author name is required", ErrStorage)
	}

	existing, err := s.GetAuthorByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	start := time.Now()
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO authors (name) VALUES (?) ON CONFLICT(name) DO NOTHING", name)
	if err != nil {
		logging.LogDatabaseOperation("insert", "authors", time.Since(start), 0, err)
		return 0, fmt.Errorf("%w: insert author %q: %v", ErrStorage, name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: insert author %q: %v", ErrStorage, name, err)
	}
	logging.LogDatabaseOperation("insert", "authors", time.Since(start), affected, nil)

	if affected == 0 {
		// Lost a race with another writer; the row exists now.
		existing, err = s.GetAuthorByName(ctx, name)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			return 0, fmt.Errorf("%w: author %q vanished after conflict", ErrStorage, name)
		}
		return existing.ID, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: author id for %q: %v", ErrStorage, name, err)
	}
	return id, nil
}

func (s *SQLiteStore) GetAuthorByID(ctx context.Context, id int64) (*Author, error) {
	var author Author
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM authors WHERE id = ?", id).
		Scan(&author.ID, &author.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get author %d: %v", ErrStorage, id, err)
	}
	return &author, nil
}

func (s *SQLiteStore) GetAuthorByName(ctx context.Context, name string) (*Author, error) {
	var author Author
	err := s.db.QueryRowContext(ctx, "SELECT id, name FROM authors WHERE name = ?", normalizeName(name)).
		Scan(&author.ID, &author.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get author %q: %v", ErrStorage, name, err)
	}
	return &author, nil
}

func (s *SQLiteStore) CountAuthors(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM authors").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count authors: %v", ErrStorage, err)
	}
	return count, nil
}

// Book operations

// IsPresent reports whether a book with this ISBN is already catalogued.
func (s *SQLiteStore) IsPresent(ctx context.Context, isbn string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM books WHERE isbn = ?", isbn).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lookup isbn %s: %v", ErrStorage, isbn, err)
	}
	return true, nil
}

// InsertBook stores one book. The author must already exist.
func (s *SQLiteStore) InsertBook(ctx context.Context, book *Book) error {
	if book == nil || strings.TrimSpace(book.ISBN) == "" {
		return fmt.Errorf("%w: book with an ISBN is required", ErrStorage)
	}

	var pages any
	if book.PageCount != nil {
		pages = *book.PageCount
	}

	query := `INSERT INTO books (
		isbn, title, author_display, publisher, pub_date,
		description, page_count, author_id
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	start := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		book.ISBN, book.Title, book.AuthorDisplay, book.Publisher, book.PublishedDate,
		book.Description, pages, book.AuthorID,
	)
	if err != nil {
		logging.LogDatabaseOperation("insert", "books", time.Since(start), 0, err)
		if isPrimaryKeyViolation(err) {
			return fmt.Errorf("%w: %w: %s", ErrStorage, ErrDuplicateISBN, book.ISBN)
		}
		return fmt.Errorf("%w: insert book %s: %v", ErrStorage, book.ISBN, err)
	}
	affected, _ := result.RowsAffected()
	logging.LogDatabaseOperation("insert", "books", time.Since(start), affected, nil)
	return nil
}

func (s *SQLiteStore) GetBookByISBN(ctx context.Context, isbn string) (*Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE isbn = ?", bookSelectColumns)
	var book Book
	err := scanBook(s.db.QueryRowContext(ctx, query, isbn), &book)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get book %s: %v", ErrStorage, isbn, err)
	}
	return &book, nil
}

func (s *SQLiteStore) CountBooks(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count books: %v", ErrStorage, err)
	}
	return count, nil
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

var _ Store = (*SQLiteStore)(nil)
