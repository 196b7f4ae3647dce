// file: internal/server/response_types_test.go
// version: 2.0.0
// guid: 8a9b0c1d-2e3f-4a5b-6c7d-8e9f0a1b2c3d

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jdfalk/isbn-catalog/internal/catalog"
	"github.com/jdfalk/isbn-catalog/internal/database"
)

func TestStatusForState(t *testing.T) {
	tests := []struct {
		state catalog.State
		want  int
	}{
		{catalog.StateAdded, http.StatusCreated},
		{catalog.StateDuplicate, http.StatusOK},
		{catalog.StateMissingInput, http.StatusBadRequest},
		{catalog.StateNotFound, http.StatusNotFound},
		{catalog.StateStorageError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusForState(tt.state); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.state, tt.want, got)
		}
	}
}

func TestNewReconcileResponse(t *testing.T) {
	status, resp := NewReconcileResponse(catalog.Outcome{
		State: catalog.StateAdded,
		ISBN:  "9780143127741",
		Title: "Sapiens",
		Book:  &database.Book{ISBN: "9780143127741", Title: "Sapiens"},
	})

	if status != http.StatusCreated {
		t.Errorf("expected 201, got %d", status)
	}
	if resp.State != "added" || resp.Category != "success" {
		t.Errorf("unexpected state/category: %+v", resp)
	}
	if resp.Message != "The book 'Sapiens' was added to the catalog." {
		t.Errorf("unexpected message %q", resp.Message)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"state", "category", "message", "book"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in %s", key, data)
		}
	}
}

func TestNewReconcileResponse_OmitsBookWhenAbsent(t *testing.T) {
	_, resp := NewReconcileResponse(catalog.Outcome{
		State: catalog.StateStorageError,
		ISBN:  "9780143127741",
		Err:   errors.New("disk full"),
	})

	data, _ := json.Marshal(resp)
	var decoded map[string]any
	_ = json.Unmarshal(data, &decoded)
	if _, ok := decoded["book"]; ok {
		t.Errorf("expected no book key, got %s", data)
	}
	if resp.Category != "error" {
		t.Errorf("expected error category, got %q", resp.Category)
	}
}
