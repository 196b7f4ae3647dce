// file: internal/testutil/mock_providers.go
// version: 2.0.0
// guid: c3d4e5f6-a7b8-9012-cdef-345678901abc

package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// SapiensISBN is the ISBN used by the canned provider responses.
const SapiensISBN = "9780143127741"

// ProviderServer wraps an httptest.Server and counts the requests it served.
type ProviderServer struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests received so far.
func (s *ProviderServer) Hits() int {
	return int(s.hits.Load())
}

// MockGoogleBooksServer creates an httptest.Server that mimics the Google
// Books volumes endpoint. The responses map is keyed by ISBN; unknown ISBNs
// get an empty result set.
func MockGoogleBooksServer(t *testing.T, responses map[string]string) *ProviderServer {
	t.Helper()
	srv := &ProviderServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		if r.URL.Path != "/volumes" {
			http.NotFound(w, r)
			return
		}
		isbn := strings.TrimPrefix(r.URL.Query().Get("q"), "isbn:")
		w.Header().Set("Content-Type", "application/json")
		if body, ok := responses[isbn]; ok {
			_, _ = w.Write([]byte(body))
			return
		}
		_, _ = w.Write([]byte(GoogleBooksEmptyResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// MockOpenLibraryServer creates an httptest.Server that mimics OpenLibrary API.
// The responses map keys are matched against the request URL using Contains.
func MockOpenLibraryServer(t *testing.T, responses map[string]string) *ProviderServer {
	t.Helper()
	srv := &ProviderServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		for pattern, body := range responses {
			if strings.Contains(r.URL.String(), pattern) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// StatusServer answers every request with the given status code and body.
func StatusServer(t *testing.T, status int, body string) *ProviderServer {
	t.Helper()
	srv := &ProviderServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// GoogleBooksSapiensResponse is a single-volume response for SapiensISBN.
const GoogleBooksSapiensResponse = `{
	"kind": "books#volumes",
	"totalItems": 1,
	"items": [{
		"volumeInfo": {
			"title": "Sapiens",
			"authors": ["Yuval Noah Harari"],
			"publisher": "Harper",
			"publishedDate": "2015",
			"description": "A brief history of humankind.",
			"pageCount": 443,
			"industryIdentifiers": [
				{"type": "ISBN_13", "identifier": "9780143127741"}
			]
		}
	}]
}`

// GoogleBooksCoauthoredResponse lists two authors and omits the page count.
const GoogleBooksCoauthoredResponse = `{
	"totalItems": 1,
	"items": [{
		"volumeInfo": {
			"title": "Good Omens",
			"authors": ["Terry Pratchett", "Neil Gaiman"],
			"publisher": "William Morrow",
			"publishedDate": "2006-11-28"
		}
	}]
}`

// GoogleBooksEmptyResponse returns no results.
const GoogleBooksEmptyResponse = `{"kind": "books#volumes", "totalItems": 0}`

// OpenLibrarySapiensEdition is an /isbn/{isbn}.json edition record.
const OpenLibrarySapiensEdition = `{
	"title": "Sapiens",
	"subtitle": "A Brief History of Humankind",
	"authors": [{"key": "/authors/OL7131303A"}],
	"publishers": ["Harper Perennial"],
	"publish_date": "2018",
	"number_of_pages": 464,
	"description": {"type": "/type/text", "value": "From a renowned historian."},
	"isbn_13": ["9780143127741"]
}`

// OpenLibraryHarariAuthor is the author record referenced by OpenLibrarySapiensEdition.
const OpenLibraryHarariAuthor = `{"key": "/authors/OL7131303A", "name": "Yuval Noah Harari"}`
