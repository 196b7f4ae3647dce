// file: internal/catalog/outcome.go
// version: 1.0.0
// guid: 1b7e4c93-5a2d-4f08-96c1-e8d3a0f6b725

package catalog

import (
	"fmt"

	"github.com/jdfalk/isbn-catalog/internal/database"
)

// State is the terminal state of one reconciliation.
type State int

const (
	StateMissingInput State = iota
	StateDuplicate
	StateNotFound
	StateAdded
	StateStorageError
)

func (s State) String() string {
	switch s {
	case StateMissingInput:
		return "missing_input"
	case StateDuplicate:
		return "duplicate"
	case StateNotFound:
		return "not_found"
	case StateAdded:
		return "added"
	case StateStorageError:
		return "storage_error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Category is the user-facing message class of a State.
type Category string

const (
	CategoryWarning Category = "warning"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
)

// Category maps each state to exactly one message category.
func (s State) Category() Category {
	switch s {
	case StateMissingInput:
		return CategoryWarning
	case StateDuplicate:
		return CategoryInfo
	case StateAdded:
		return CategorySuccess
	default:
		return CategoryError
	}
}

// Outcome reports how a reconciliation ended.
type Outcome struct {
	State State
	ISBN  string
	Title string
	// Book is the stored record; set only for StateAdded.
	Book *database.Book
	// Err carries the sentinel for every state except StateAdded.
	Err error

	cause error
}

// Category returns the message class for the outcome.
func (o Outcome) Category() Category {
	return o.State.Category()
}

// Message renders the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch o.State {
	case StateMissingInput:
		return "Enter an ISBN."
	case StateDuplicate:
		return fmt.Sprintf("The book with ISBN %s is already in the catalog.", o.ISBN)
	case StateNotFound:
		return fmt.Sprintf("No book found for ISBN %s.", o.ISBN)
	case StateAdded:
		return fmt.Sprintf("The book '%s' was added to the catalog.", o.Title)
	default:
		cause := o.cause
		if cause == nil {
			cause = o.Err
		}
		if cause == nil {
			return "Could not save the book."
		}
		return fmt.Sprintf("Could not save the book: %v", cause)
	}
}
