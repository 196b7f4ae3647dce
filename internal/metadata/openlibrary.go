// file: internal/metadata/openlibrary.go
// version: 2.0.0
// guid: 1a2b3c4d-5e6f-7a8b-9c0d-1e2f3a4b5c6d

package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/jdfalk/isbn-catalog/internal/logging"
)

// DefaultOpenLibraryBaseURL is the public Open Library root.
const DefaultOpenLibraryBaseURL = "https://openlibrary.org"

// OpenLibraryClient handles ISBN lookups against the Open Library books API.
type OpenLibraryClient struct {
	http *httpGetter
}

// NewOpenLibraryClient creates a new Open Library API client
func NewOpenLibraryClient(opts ClientOptions) *OpenLibraryClient {
	return &OpenLibraryClient{http: newHTTPGetter(opts, DefaultOpenLibraryBaseURL)}
}

// NewOpenLibraryClientWithBaseURL creates an unthrottled client with a custom base URL.
func NewOpenLibraryClientWithBaseURL(baseURL string) *OpenLibraryClient {
	return NewOpenLibraryClient(ClientOptions{BaseURL: baseURL})
}

// Name returns the display name for this metadata source.
func (c *OpenLibraryClient) Name() string {
	return "Open Library"
}

// olEdition is the subset of /isbn/{isbn}.json the catalog uses.
type olEdition struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Authors       []olKey  `json:"authors"`
	Publishers    []string `json:"publishers"`
	PublishDate   string   `json:"publish_date"`
	Description   olText   `json:"description"`
	NumberOfPages *int     `json:"number_of_pages"`
	ByStatement   string   `json:"by_statement"`
}

type olKey struct {
	Key string `json:"key"`
}

type olAuthor struct {
	Name string `json:"name"`
}

// olText accepts both a bare string and the {"type","value"} text object.
type olText string

func (t *olText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = olText(s)
		return nil
	}
	var typed struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}
	*t = olText(typed.Value)
	return nil
}

// Lookup fetches the edition for isbn and resolves its author names.
func (c *OpenLibraryClient) Lookup(ctx context.Context, isbn string) (*BookMetadata, error) {
	var ed olEdition
	status, err := c.http.getJSON(ctx, c.http.baseURL+"/isbn/"+url.PathEscape(isbn)+".json", &ed)
	if status == http.StatusNotFound {
		return nil, ErrNoMatch
	}
	if err != nil {
		return nil, err
	}

	meta := &BookMetadata{
		Title:         ed.Title,
		PublishedDate: ed.PublishDate,
		Description:   string(ed.Description),
		PageCount:     ed.NumberOfPages,
	}
	if ed.Subtitle != "" {
		meta.Title = ed.Title + ": " + ed.Subtitle
	}
	if len(ed.Publishers) > 0 {
		meta.Publisher = ed.Publishers[0]
	}
	for _, a := range ed.Authors {
		name, err := c.authorName(ctx, a.Key)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			logging.Warnf("Open Library author %s for ISBN %s: %v", a.Key, isbn, err)
			continue
		}
		meta.Authors = append(meta.Authors, name)
	}
	if len(meta.Authors) == 0 && ed.ByStatement != "" {
		meta.Authors = []string{strings.TrimSuffix(strings.TrimSpace(ed.ByStatement), ".")}
	}
	return normalize(meta, isbn, c.Name()), nil
}

func (c *OpenLibraryClient) authorName(ctx context.Context, key string) (string, error) {
	if !strings.HasPrefix(key, "/authors/") {
		return "", errors.New("unexpected author key " + key)
	}
	var author olAuthor
	if _, err := c.http.getJSON(ctx, c.http.baseURL+key+".json", &author); err != nil {
		return "", err
	}
	return author.Name, nil
}

// Fetch implements Provider. Transport failures are logged and reported as absent.
func (c *OpenLibraryClient) Fetch(ctx context.Context, isbn string) (*BookMetadata, bool) {
	return absorb(ctx, c.Name(), isbn, c.Lookup)
}

var _ Provider = (*OpenLibraryClient)(nil)
