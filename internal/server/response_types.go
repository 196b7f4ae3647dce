// file: internal/server/response_types.go
// version: 2.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"net/http"

	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/database"
)

// AddBookRequest is the body of POST /api/v1/books.
type AddBookRequest struct {
	ISBN string `json:"isbn"`
}

// ReconcileResponse reports the terminal state of one add request.
type ReconcileResponse struct {
	State    string         `json:"state"`
	Category string         `json:"category"`
	Message  string         `json:"message"`
	Book     *database.Book `json:"book,omitempty"`
}

// StatusResponse provides a consistent format for status check responses
type StatusResponse struct {
	Status string `json:"status"` // "ok", "degraded"
	Code   string `json:"code,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// NewReconcileResponse converts a catalog outcome into its response body and
// HTTP status.
func NewReconcileResponse(out catalog.Outcome) (int, ReconcileResponse) {
	return statusForState(out.State), ReconcileResponse{
		State:    out.State.String(),
		Category: string(out.Category()),
		Message:  out.Message(),
		Book:     out.Book,
	}
}

func statusForState(state catalog.State) int {
	switch state {
	case catalog.StateAdded:
		return http.StatusCreated
	case catalog.StateDuplicate:
		return http.StatusOK
	case catalog.StateMissingInput:
		return http.StatusBadRequest
	case catalog.StateNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
